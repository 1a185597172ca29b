package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/riposte/internal/bench"
	"github.com/wesleyorama2/riposte/pkg/fetch"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Fire repeated GET requests through the pipeline and report latency percentiles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requests, _ := cmd.Flags().GetInt("requests")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		if requests <= 0 || concurrency <= 0 {
			fmt.Fprintln(os.Stderr, "Error: --requests and --concurrency must be positive")
			os.Exit(1)
		}
		if concurrency > requests {
			concurrency = requests
		}

		call, err := buildCallSpec(cmd, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		recorder := bench.NewRecorder()
		jobs := make(chan struct{}, requests)
		for i := 0; i < requests; i++ {
			jobs <- struct{}{}
		}
		close(jobs)

		var wg sync.WaitGroup
		for i := 0; i < concurrency; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range jobs {
					start := time.Now()
					res := fetch.Get[json.RawMessage](cmd.Context(), call.client, call.options)
					recorder.Record(time.Since(start), res.OK())
				}
			}()
		}
		wg.Wait()

		printSummary(recorder.Snapshot(), requests, concurrency)
	},
}

func printSummary(s bench.Snapshot, requests, concurrency int) {
	fmt.Printf("Requests:    %d (concurrency %d)\n", requests, concurrency)
	fmt.Printf("Elapsed:     %v\n", s.Elapsed.Round(time.Millisecond))
	fmt.Printf("Throughput:  %.1f req/s\n", s.Throughput())
	fmt.Printf("Failures:    %d (%.1f%%)\n", s.Failures, s.ErrorRate()*100)
	fmt.Println("Latency:")
	fmt.Printf("  min   %v\n", s.Min)
	fmt.Printf("  mean  %v\n", s.Mean)
	fmt.Printf("  p50   %v\n", s.P50)
	fmt.Printf("  p90   %v\n", s.P90)
	fmt.Printf("  p99   %v\n", s.P99)
	fmt.Printf("  max   %v\n", s.Max)
}

func init() {
	addRequestFlags(benchCmd)
	benchCmd.Flags().IntP("requests", "n", 100, "Total number of requests to send")
	benchCmd.Flags().IntP("concurrency", "c", 10, "Number of concurrent workers")
}
