// SPDX-License-Identifier: MIT

package floodfill

// ---------- Defaults ----------

const (
	// DefaultConnectivity expands into the full 3×3 ring.
	DefaultConnectivity = Conn8

	// DefaultMaxSteps of 0 means no step limit.
	DefaultMaxSteps = 0
)

const (
	panicConnectivityInvalid = "floodfill: WithConnectivity: unknown connectivity"
	panicMaxStepsInvalid     = "floodfill: WithMaxSteps: n must be non-negative"
)

// Option mutates fill options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of one fill.
type Options struct {
	conn     Connectivity
	maxSteps int
}

// WithConnectivity selects Conn8 (default) or Conn4 expansion.
func WithConnectivity(c Connectivity) Option {
	if c != Conn8 && c != Conn4 {
		panic(panicConnectivityInvalid)
	}
	return func(o *Options) { o.conn = c }
}

// WithMaxSteps stops the fill with ErrStepLimit after n frontier pops.
// n == 0 disables the limit.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(panicMaxStepsInvalid)
	}
	return func(o *Options) { o.maxSteps = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{conn: DefaultConnectivity, maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
