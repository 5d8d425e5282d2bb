package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	W, H, D  int
	Rate     uint
	Threads  int
	Scale    int
	SPS      int
	Seed     int64
	BudgetUS int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		W: 128, H: 128, D: 64,
		Rate:     3,
		Threads:  1,
		Scale:    4,
		SPS:      20,
		Seed:     42,
		BudgetUS: 4000,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.W, "w", c.W, "field width")
	fs.IntVar(&c.H, "h", c.H, "field height")
	fs.IntVar(&c.D, "d", c.D, "field depth")
	fs.UintVar(&c.Rate, "rate", c.Rate, "diffusion rate shift (divisor = 1<<rate)")
	fs.IntVar(&c.Threads, "threads", c.Threads, "tile worker threads per tick")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.SPS, "sps", c.SPS, "generation starts per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial noise state")
	fs.IntVar(&c.BudgetUS, "budget", c.BudgetUS, "tick budget per frame in microseconds")
}
