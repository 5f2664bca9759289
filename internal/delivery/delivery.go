// Package delivery holds the servers exposed by the commands.
package delivery

import "context"

// Delivery is a long-running server started by fx.
type Delivery interface {
	Serve(ctx context.Context) error
}
