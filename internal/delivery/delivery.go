// Package delivery defines the inbound transport boundary of the application.
package delivery

import "context"

// Delivery is a transport that accepts requests until its context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
