package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vireo-dev/vireo/pkg/collections"
	"github.com/vireo-dev/vireo/pkg/view"
)

type viewResult struct {
	SourceSize int           `json:"sourceSize"`
	Rebuilds   int           `json:"rebuilds"`
	P50        time.Duration `json:"p50Ns"`
	P95        time.Duration `json:"p95Ns"`
	Max        time.Duration `json:"maxNs"`
}

func viewCmd() *cobra.Command {
	var (
		size       int
		rebuilds   int
		jsonOutput string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Measure view rebuild latency",
		Long: `Build a filtered, sorted, projected view over a source list and measure
how long each rebuild takes as the source mutates.

Examples:
  vireo-bench view --size=10000
  vireo-bench view --size=100000 --rebuilds=500 --json=out.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(size, rebuilds, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 10000, "Source list size")
	cmd.Flags().IntVarP(&rebuilds, "rebuilds", "n", 200, "Number of mutations to time")
	cmd.Flags().StringVar(&jsonOutput, "json", "", "Write results as JSON to a file")

	return cmd
}

func runView(size, rebuilds int, jsonOutput string) error {
	items := make([]int, size)
	for i := range items {
		items[i] = i
	}
	source := collections.NewListOf(items)

	v, err := view.NewProjected[int](source, func(n int) string {
		return fmt.Sprintf("item-%06d", n)
	})
	if err != nil {
		return err
	}
	if err := v.AttachFilter(func(n int) bool { return n%2 == 0 }); err != nil {
		return err
	}
	if err := v.AttachSortFunc(func(a, b string) int { return strings.Compare(b, a) }); err != nil {
		return err
	}
	defer v.Dispose()

	// Each source mutation triggers a synchronous full rebuild; the append
	// returns only after the view has settled, so wall time is rebuild time.
	samples := make([]time.Duration, 0, rebuilds)
	for i := 0; i < rebuilds; i++ {
		start := time.Now()
		source.Append(size + i)
		samples = append(samples, time.Since(start))
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	res := viewResult{
		SourceSize: size,
		Rebuilds:   rebuilds,
		P50:        samples[len(samples)/2],
		P95:        samples[len(samples)*95/100],
		Max:        samples[len(samples)-1],
	}

	fmt.Printf("source=%d rebuilds=%d  p50=%s  p95=%s  max=%s  (view len %d)\n",
		res.SourceSize, res.Rebuilds, res.P50, res.P95, res.Max, v.Len())

	if jsonOutput != "" {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(jsonOutput, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", jsonOutput, err)
		}
		fmt.Printf("results written to %s\n", jsonOutput)
	}
	return nil
}
