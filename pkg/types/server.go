package types

import "context"

// Server defines a transport that serves calculator sessions until ctx is done
type Server interface {
	Serve(ctx context.Context) error
}
