package generator

// Option configures Generate via functional arguments.
type Option func(*config)

const (
	defaultBranches          = 5
	defaultIterationsPerCell = 10
)

type config struct {
	branches   int
	iterations int // 0 means "use width*height*defaultIterationsPerCell"
}

func newConfig() config {
	return config{branches: defaultBranches}
}

// WithBranches overrides the number of candidate steps tried per
// iteration (the "k" in best-of-k branching). The default is 5, matching
// the original generator.
func WithBranches(k int) Option {
	return func(c *config) { c.branches = k }
}

// WithIterations overrides the total number of best-of-k iterations
// Generate performs. The default is width*height*10. Tests that need a
// small, fast universe can use this to bound the work done without
// shrinking the grid itself.
func WithIterations(n int) Option {
	return func(c *config) { c.iterations = n }
}
