package solve

import (
	"fmt"
	"strings"
	"time"
)

// Report is the serializable outcome of one solve. Plans and states are
// rendered to strings so reports from every problem kind share one shape.
type Report struct {
	Problem  string `json:"problem" bson:"problem"`
	Kind     string `json:"kind" bson:"kind"`
	Strategy string `json:"strategy" bson:"strategy"`
	Mode     string `json:"mode" bson:"mode"`

	Found  bool     `json:"found" bson:"found"`
	Plan   []string `json:"plan" bson:"plan"`
	States []string `json:"states,omitempty" bson:"states,omitempty"` // initial state first
	Final  string   `json:"final,omitempty" bson:"final,omitempty"`   // multi-line drawing of the goal state
	Cost   float64  `json:"cost" bson:"cost"`

	Iterations  int           `json:"iterations" bson:"iterations"`
	MaxFrontier int           `json:"max_frontier" bson:"max_frontier"`
	Generated   int           `json:"generated" bson:"generated"`
	DepthLimit  int           `json:"depth_limit" bson:"depth_limit"`
	Truncated   bool          `json:"truncated,omitempty" bson:"truncated,omitempty"`
	Elapsed     time.Duration `json:"elapsed_ns" bson:"elapsed_ns"`

	// Cached is set when the report was served from the cache.
	Cached bool `json:"cached,omitempty" bson:"-"`
}

// String renders the report the way the search package renders a result.
func (r *Report) String() string {
	var b strings.Builder
	switch {
	case r.Found:
		if n := len(r.States); n > 0 {
			fmt.Fprintf(&b, "state: %s\n", r.States[n-1])
		}
		fmt.Fprintf(&b, "actions: [%s]\n", strings.Join(r.Plan, " "))
		fmt.Fprintf(&b, "cost: %v\n", r.Cost)
	case r.Truncated:
		b.WriteString("search truncated before a solution was found\n")
	default:
		b.WriteString("no solution found\n")
	}
	fmt.Fprintf(&b, "time: %v\n", r.Elapsed)
	fmt.Fprintf(&b, "iterations: %d\n", r.Iterations)
	fmt.Fprintf(&b, "max frontier size: %d", r.MaxFrontier)
	return b.String()
}
