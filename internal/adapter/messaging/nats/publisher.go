package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const PropertyCreatedSubject = "property.created"

// PropertyCreatedEvent is published after a property is stored. Images are
// left out; subscribers fetch the record if they need them.
type PropertyCreatedEvent struct {
	ID          string    `json:"id"`
	AdTitle     string    `json:"adTitle"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	State       string    `json:"state"`
	Price       float64   `json:"price"`
	ImageCount  int       `json:"imageCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Publisher struct {
	nc     *nats.Conn
	logger *logger.Logger
}

func NewPublisher(url string, connectTimeout time.Duration, log *logger.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("property-service"),
		nats.Timeout(connectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	log.Info("Successfully connected to NATS", zap.String("url", nc.ConnectedUrl()))
	return &Publisher{nc: nc, logger: log.Named("NATSPublisher")}, nil
}

func (p *Publisher) PublishPropertyCreated(ctx context.Context, property *domain.Property) error {
	event := PropertyCreatedEvent{
		ID:          property.ID,
		AdTitle:     property.AdTitle,
		Category:    property.Category,
		Subcategory: property.Subcategory,
		State:       property.State,
		Price:       property.Price,
		ImageCount:  len(property.Images),
		CreatedAt:   property.CreatedAt,
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", PropertyCreatedSubject, err)
	}
	if err := p.nc.Publish(PropertyCreatedSubject, data); err != nil {
		p.logger.Error("Failed to publish NATS message", zap.String("subject", PropertyCreatedSubject), zap.Error(err))
		return fmt.Errorf("failed to publish NATS message for %s: %w", PropertyCreatedSubject, err)
	}
	p.logger.Info("Published NATS message", zap.String("subject", PropertyCreatedSubject), zap.String("property_id", property.ID))
	return nil
}

func (p *Publisher) Close() {
	if err := p.nc.Drain(); err != nil {
		p.logger.Warn("NATS drain failed", zap.Error(err))
	}
}
