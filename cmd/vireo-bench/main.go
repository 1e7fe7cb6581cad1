package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vireo-bench",
		Short: "Benchmark and exercise vireo containers",
		Long: `vireo-bench measures container and view performance and can serve a
live demo feed.

Commands:
  mutate   Measure mutation throughput under subscriber load
  view     Measure view rebuild latency
  serve    Run a demo WebSocket feed with Prometheus metrics
  version  Print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		mutateCmd(),
		viewCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
