// Package delivery defines the entry points that expose mart to the outside world.
package delivery

import (
	"context"
)

// Delivery is a long-running server started by the application once all
// dependencies are wired.
type Delivery interface {
	Serve(ctx context.Context) error
}
