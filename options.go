package d20hist

// Option configures a State during creation.
// Use functional options to customize the simulation.
//
// Example:
//
//	// Default: 10,000 rolls per tick from the global random source
//	s := d20hist.New(800, 600)
//
//	// Reproducible run
//	s := d20hist.New(800, 600, d20hist.WithSeed(42))
type Option func(*options)

// options holds optional configuration for State creation.
type options struct {
	roller       Roller
	rollsPerTick int
	theme        Theme
}

// defaultOptions returns the default state options.
func defaultOptions() options {
	return options{
		roller:       globalRoller{},
		rollsPerTick: DefaultRollsPerTick,
		theme:        DefaultTheme(),
	}
}

// WithRoller sets the random source used by Update.
// A nil roller keeps the default.
func WithRoller(r Roller) Option {
	return func(o *options) {
		if r != nil {
			o.roller = r
		}
	}
}

// WithSeed makes Update deterministic by rolling from a PCG generator
// seeded with seed. It replaces any roller set earlier.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.roller = NewSeededRoller(seed)
	}
}

// WithRollsPerTick sets how many dice Update rolls per call.
// Non-positive values keep the default.
func WithRollsPerTick(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.rollsPerTick = n
		}
	}
}

// WithTheme overrides the background, winner and loser colors.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}
