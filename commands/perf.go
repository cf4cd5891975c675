package commands

import (
	"context"

	"MyTube/store"
)

// togglePerf flips operation timing on or off.
func togglePerf(ctx context.Context, st *store.Store, c *Console) *commandError {
	if st.Perf.Toggle() {
		c.Printf("Performance logging ENABLED\n")
	} else {
		c.Printf("Performance logging DISABLED\n")
	}
	return nil
}

// runBenchmark times a few representative operations against the current
// state: table lookups, comment additions, and a title scan.
func runBenchmark(ctx context.Context, st *store.Store, c *Console) *commandError {
	c.Printf("\n=== PERFORMANCE BENCHMARK ===\n")

	// Timing stays on for the duration of the benchmark regardless of the
	// configured state.
	forced := !st.Perf.Enabled()
	if forced {
		st.Perf.Toggle()
		defer st.Perf.Toggle()
	}

	lookups := st.Perf.Start("benchmark.1000-video-lookups")
	for i := 0; i < 1000; i++ {
		st.Video(1)
	}
	lookups.Stop()

	if all := st.AllVideos(); len(all) > 0 {
		target := all[0]
		additions := st.Perf.Start("benchmark.100-comment-additions")
		for i := 0; i < 100; i++ {
			target.AddComment("benchuser", "test comment")
		}
		additions.Stop()
	}

	search := st.Perf.Start("benchmark.title-search")
	st.Search("deep")
	search.Stop()

	c.Printf("=== BENCHMARK COMPLETE ===\n\n")
	return nil
}
