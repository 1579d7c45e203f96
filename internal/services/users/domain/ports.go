package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Get(ctx context.Context, id string) (Profile, error)
	MustExist(ctx context.Context, id string) error
	IDs(ctx context.Context) ([]string, error)
}
