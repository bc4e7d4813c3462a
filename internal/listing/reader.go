// Package listing is the read side: listing pages and the detail view.
package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/transport"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("listing not found")

// Fetcher is the part of the transport the read path needs.
type Fetcher interface {
	ListProperties(ctx context.Context) (*contract.ListResponse, error)
	GetProperty(ctx context.Context, id string) (*contract.GetResponse, error)
}

type Reader struct {
	fetcher Fetcher
	logger  *zap.Logger
}

func NewReader(f Fetcher, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{fetcher: f, logger: log.Named("listing")}
}

// ListAll returns every listing in server order, newest first.
func (r *Reader) ListAll(ctx context.Context) ([]*domain.Property, error) {
	resp, err := r.fetcher.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("list properties: %s", resp.Message)
	}
	if resp.Properties == nil {
		return []*domain.Property{}, nil
	}
	return resp.Properties, nil
}

// GetByID returns one listing, ErrNotFound when the server has none.
func (r *Reader) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	resp, err := r.fetcher.GetProperty(ctx, id)
	if errors.Is(err, transport.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get property %s: %w", id, err)
	}
	if !resp.Success || resp.Property == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return resp.Property, nil
}

// Page is ListAll for rendering: failures are logged and give an empty page.
func (r *Reader) Page(ctx context.Context) []*domain.Property {
	props, err := r.ListAll(ctx)
	if err != nil {
		r.logger.Error("Failed to load listings", zap.Error(err))
		return []*domain.Property{}
	}
	return props
}
