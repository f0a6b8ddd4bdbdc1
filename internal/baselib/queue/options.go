package queue

// config holds the tunables for a Ring, set via Option functions passed to
// New. Modeled on the functional-options pattern used for lfq's bounded
// queues (NewMPMC(capacity, opts...)), adapted here to a single knob since
// Ring is unbounded and only its floor capacity is configurable.
type config struct {
	initialCapacity int
}

func defaultConfig() config {
	return config{initialCapacity: DefaultInitialCapacity}
}

// Option configures a Ring at construction time.
type Option func(*config)

// WithInitialCapacity sets the starting (and minimum) backing-array
// capacity. Values less than 1 are ignored and the default is kept.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.initialCapacity = n
		}
	}
}
