package debrief

import (
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/debrief/pkg/config"
	"github.com/arthur-debert/debrief/pkg/stacktrace"
	"github.com/arthur-debert/debrief/pkg/theme"
)

// Runtime is the process-wide configuration consumed by capture and
// rendering: the theme, the frame filters, the extra section appended to
// panic reports, and the settings scalars. It is assembled by pkg/hooks and
// treated as read-only once installed.
type Runtime struct {
	Theme        theme.Theme
	Filters      []stacktrace.FilterFunc
	PanicSection *Section
	Settings     config.Settings
}

var installedRuntime atomic.Pointer[Runtime]

var fallbackRuntime struct {
	once sync.Once
	rt   *Runtime
}

// SetRuntime installs r process-wide. The first successful install wins;
// it reports false when a runtime was already installed.
func SetRuntime(r *Runtime) bool {
	return installedRuntime.CompareAndSwap(nil, r)
}

// CurrentRuntime returns the installed runtime. Before any install it
// returns a lazily-built default (detected theme, default filters, default
// settings) without claiming the install slot, so a later explicit install
// still takes effect.
func CurrentRuntime() *Runtime {
	if r := installedRuntime.Load(); r != nil {
		return r
	}
	fallbackRuntime.once.Do(func() {
		fallbackRuntime.rt = &Runtime{
			Theme:    theme.Detect(),
			Filters:  stacktrace.DefaultFilters(),
			Settings: config.Default(),
		}
	})
	return fallbackRuntime.rt
}

// verbosity picks the policy branch for this report: the panic policy when
// the report came out of a panic, the library policy otherwise.
func (rt *Runtime) verbosity(panicking bool) config.Verbosity {
	if panicking {
		return rt.Settings.PanicVerbosity()
	}
	return rt.Settings.LibVerbosity()
}
