package sweeper

import "context"

// Sweeper is a long-running periodic maintenance job
type Sweeper interface {
	// Name returns the sweeper's name
	Name() string
	// Start runs the sweep loop until the context is cancelled or Stop is called
	Start(ctx context.Context) error
	// Stop gracefully stops the sweeper, respecting the context deadline
	Stop(ctx context.Context) error
}
