package main

import (
	"github.com/arthur-debert/debrief/internal/cli"
	"github.com/arthur-debert/debrief/pkg/supervise"
)

func main() {
	// The supervisor renders any failure (or panic) coming out of the
	// command tree and exits non-zero.
	supervise.Main(func() error {
		return cli.NewRootCmd().Execute()
	})
}
