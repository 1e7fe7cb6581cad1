package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vireo-dev/vireo/pkg/change"
	"github.com/vireo-dev/vireo/pkg/collections"
)

type mutateResult struct {
	Container   string        `json:"container"`
	Ops         int           `json:"ops"`
	Subscribers int           `json:"subscribers"`
	Elapsed     time.Duration `json:"elapsedNs"`
	OpsPerSec   float64       `json:"opsPerSec"`
	Events      int           `json:"events"`
}

func mutateCmd() *cobra.Command {
	var (
		ops         int
		subscribers int
		containers  []string
		jsonOutput  string
	)

	cmd := &cobra.Command{
		Use:   "mutate",
		Short: "Measure mutation throughput under subscriber load",
		Long: `Run a fixed number of mutations against each container type while the
given number of subscribers listen for change events, and report
throughput.

Examples:
  vireo-bench mutate
  vireo-bench mutate --ops=100000 --subscribers=16
  vireo-bench mutate --container=list --container=map --json=out.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutate(ops, subscribers, containers, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&ops, "ops", "n", 50000, "Mutations per container")
	cmd.Flags().IntVarP(&subscribers, "subscribers", "c", 8, "Change subscribers per container")
	cmd.Flags().StringArrayVar(&containers, "container", nil, "Container types to bench (default all)")
	cmd.Flags().StringVar(&jsonOutput, "json", "", "Write results as JSON to a file")

	return cmd
}

func runMutate(ops, subscribers int, containers []string, jsonOutput string) error {
	benches := map[string]func(ops, subs int) mutateResult{
		"list":  benchList,
		"map":   benchMap,
		"set":   benchSet,
		"queue": benchQueue,
		"stack": benchStack,
	}

	if len(containers) == 0 {
		for name := range benches {
			containers = append(containers, name)
		}
		sort.Strings(containers)
	}

	var results []mutateResult
	for _, name := range containers {
		bench, ok := benches[name]
		if !ok {
			return fmt.Errorf("unknown container type %q", name)
		}
		res := bench(ops, subscribers)
		results = append(results, res)
		fmt.Printf("%-6s %10d ops  %3d subs  %12.0f ops/s  %d events\n",
			res.Container, res.Ops, res.Subscribers, res.OpsPerSec, res.Events)
	}

	if jsonOutput != "" {
		data, err := json.MarshalIndent(results, "", "  ")
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

// attach wires count subscribers to src and returns a closure that reports
// how many events they saw in total.
func attach[T any](src interface {
	OnCollectionChanged(fn func(change.Change[T])) *change.Subscription
}, count int) func() int {
	seen := make([]int, count)
	for i := 0; i < count; i++ {
		i := i
		src.OnCollectionChanged(func(change.Change[T]) { seen[i]++ })
	}
	return func() int {
		total := 0
		for _, n := range seen {
			total += n
		}
		return total
	}
}

func benchList(ops, subs int) mutateResult {
	list := collections.NewList[int]()
	events := attach[int](list, subs)

	start := time.Now()
	for i := 0; i < ops; i++ {
		switch i % 4 {
		case 0, 1:
			list.Append(i)
		case 2:
			list.Set(list.Len()/2, i)
		case 3:
			list.RemoveAt(list.Len() - 1)
		}
	}
	return result("list", ops, subs, time.Since(start), events())
}

func benchMap(ops, subs int) mutateResult {
	m := collections.NewMap[int, int]()
	events := attach[collections.KeyValue[int, int]](m, subs)

	start := time.Now()
	for i := 0; i < ops; i++ {
		switch i % 3 {
		case 0, 1:
			m.Set(i%1024, i)
		case 2:
			m.Remove(i % 1024)
		}
	}
	return result("map", ops, subs, time.Since(start), events())
}

func benchSet(ops, subs int) mutateResult {
	s := collections.NewSet[int]()
	events := attach[int](s, subs)

	start := time.Now()
	for i := 0; i < ops; i++ {
		if i%3 == 2 {
			s.Remove(i % 1024)
		} else {
			s.Add(i % 1024)
		}
	}
	return result("set", ops, subs, time.Since(start), events())
}

func benchQueue(ops, subs int) mutateResult {
	q := collections.NewQueue[int]()
	events := attach[int](q, subs)

	start := time.Now()
	for i := 0; i < ops; i++ {
		if i%2 == 0 {
			q.Enqueue(i)
		} else {
			q.Dequeue()
		}
	}
	return result("queue", ops, subs, time.Since(start), events())
}

func benchStack(ops, subs int) mutateResult {
	s := collections.NewStack[int]()
	events := attach[int](s, subs)

	start := time.Now()
	for i := 0; i < ops; i++ {
		if i%2 == 0 {
			s.Push(i)
		} else {
			s.Pop()
		}
	}
	return result("stack", ops, subs, time.Since(start), events())
}

func result(name string, ops, subs int, elapsed time.Duration, events int) mutateResult {
	return mutateResult{
		Container:   name,
		Ops:         ops,
		Subscribers: subs,
		Elapsed:     elapsed,
		OpsPerSec:   float64(ops) / elapsed.Seconds(),
		Events:      events,
	}
}
