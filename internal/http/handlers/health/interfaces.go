package health

import "context"

const pkg = "healthHandler/"

type Pinger interface {
	PingContext(ctx context.Context) error
}
