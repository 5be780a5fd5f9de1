package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/wayfinder/pkg/solve"
)

func TestSpinnerStopWithSuccess(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinner(context.Background(), &buf, "Solving exercise with astar")
	time.Sleep(100 * time.Millisecond)
	s.StopWithSuccess("exercise solved")

	out := buf.String()
	if !strings.Contains(out, "Solving exercise with astar") {
		t.Errorf("spinner never drew its message:\n%q", out)
	}
	if !strings.HasSuffix(out, iconSuccess+" exercise solved\n") {
		t.Errorf("output should end with the success line:\n%q", out)
	}
}

func TestSpinnerStopWithError(t *testing.T) {
	tests := []struct {
		name   string
		cancel bool
		want   string
	}{
		{"search failed", false, "failed: Solving 8-puzzle with bfs"},
		{"context cancelled", true, "interrupted: Solving 8-puzzle with bfs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var buf bytes.Buffer
			s := startSpinner(ctx, &buf, "Solving 8-puzzle with bfs")
			if tt.cancel {
				cancel()
				if !s.Interrupted() {
					t.Error("Interrupted() = false after the parent context was cancelled")
				}
			}
			s.StopWithError(stderrors.New("boom"))

			if out := buf.String(); !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestSpinnerCanceledErrorIsInterruption(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinner(context.Background(), &buf, "Solving hp-fold with dfs")
	s.StopWithError(fmt.Errorf("search cancelled: %w", context.Canceled))
	if out := buf.String(); !strings.Contains(out, "interrupted: Solving hp-fold with dfs") {
		t.Errorf("output = %q, want an interrupted line", out)
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := startSpinner(context.Background(), io.Discard, "Comparing strategies on exercise")
	s.Stop()
	s.Stop()
	if s.Interrupted() {
		t.Error("Interrupted() = true after a normal Stop")
	}
}

func TestCompareSummary(t *testing.T) {
	tests := []struct {
		name    string
		reports []*solve.Report
		want    string
	}{
		{
			name: "cheapest wins, first on ties",
			reports: []*solve.Report{
				{Problem: "exercise", Strategy: "bfs", Found: true, Cost: 15},
				{Problem: "exercise", Strategy: "ucs", Found: true, Cost: 14},
				{Problem: "exercise", Strategy: "astar", Found: true, Cost: 14},
			},
			want: "3/3 strategies solved exercise, cheapest ucs with cost 14",
		},
		{
			name: "unsolved strategies are skipped",
			reports: []*solve.Report{
				{Problem: "maze", Strategy: "dfs", Truncated: true},
				{Problem: "maze", Strategy: "greedy", Found: true, Cost: 2.5},
			},
			want: "1/2 strategies solved maze, cheapest greedy with cost 2.5",
		},
		{
			name:    "nothing found",
			reports: []*solve.Report{{Problem: "maze", Strategy: "bfs"}},
			want:    "no strategy found a plan",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareSummary(tt.reports); got != tt.want {
				t.Errorf("compareSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompareReportsThroughSpinner(t *testing.T) {
	isolate(t)
	var status lockedBuffer
	root := New(&status, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"compare", "exercise", "--no-cache"})
	if err := root.Execute(); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if want := "5/5 strategies solved exercise, cheapest ucs with cost 14"; !strings.Contains(status.String(), want) {
		t.Errorf("status output missing %q:\n%s", want, status.String())
	}
}

// lockedBuffer is shared by the logger and the spinner goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
