package runner

import "github.com/hashicorp/go-hclog"

// getOpts iterates the inbound Options and returns a struct.
func getOpts(opt ...Option) options {
	opts := getDefaultOptions()
	for _, o := range opt {
		o(&opts)
	}
	return opts
}

// Option - how Options are passed as arguments.
type Option func(*options)

// options - how Options are represented.
type options struct {
	withWorkers    int
	withIterations int
	withLogger     hclog.Logger
}

func getDefaultOptions() options {
	return options{
		withWorkers:    DefaultWorkers,
		withIterations: DefaultIterations,
		withLogger:     hclog.NewNullLogger(),
	}
}

// WithWorkers sets how many workers a run spawns.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.withWorkers = n
	}
}

// WithIterations sets how many increment rounds each worker performs.
func WithIterations(n int) Option {
	return func(o *options) {
		o.withIterations = n
	}
}

// WithLogger sets the logger used for worker lifecycle events. The
// default discards everything.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.withLogger = l
		}
	}
}
