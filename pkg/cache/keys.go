package cache

// Keyer generates cache keys. Implementations must produce different keys for
// any pair of inputs that could yield different reports.
type Keyer interface {
	// ReportKey returns the key for a solved report.
	ReportKey(defHash string, opts ReportKeyOpts) string

	// RenderKey returns the key for a rendered artifact.
	RenderKey(defHash string, opts RenderKeyOpts) string
}

// ReportKeyOpts lists the search options that affect a report.
type ReportKeyOpts struct {
	Strategy      string `json:"strategy"`
	Mode          string `json:"mode,omitempty"`
	MaxDepth      int    `json:"max_depth,omitempty"`
	Iterative     bool   `json:"iterative,omitempty"`
	Ceiling       int    `json:"ceiling,omitempty"`
	MaxIterations int    `json:"max_iterations,omitempty"`
}

// RenderKeyOpts lists the options that affect a rendered graph.
type RenderKeyOpts struct {
	Strategy string `json:"strategy"`
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// DefaultKeyer hashes every option into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ReportKey implements Keyer.
func (DefaultKeyer) ReportKey(defHash string, opts ReportKeyOpts) string {
	return hashKey("report", defHash, opts)
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(defHash string, opts RenderKeyOpts) string {
	return hashKey("render", defHash, opts)
}
