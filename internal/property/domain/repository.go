package domain

import "context"

type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	FindByID(ctx context.Context, id string) (*Property, error)
	// FindAll returns every property, newest first.
	FindAll(ctx context.Context) ([]*Property, error)
}

// PropertyCache is a read-through cache in front of PropertyRepository.
// A miss is reported as (nil, nil).
type PropertyCache interface {
	GetProperty(ctx context.Context, id string) (*Property, error)
	SetProperty(ctx context.Context, property *Property) error
	// GetAll also returns the list generation, which InvalidateAll bumps.
	GetAll(ctx context.Context) ([]*Property, uint64, error)
	// SetAll is a no-op when the generation has moved past gen.
	SetAll(ctx context.Context, gen uint64, properties []*Property) error
	InvalidateAll(ctx context.Context) error
}

type EventPublisher interface {
	PublishPropertyCreated(ctx context.Context, property *Property) error
}
