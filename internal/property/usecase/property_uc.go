package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.uber.org/zap"
)

// InvalidPayloadError lists the required fields a submission is missing.
type InvalidPayloadError struct {
	Missing []string
}

func (e *InvalidPayloadError) Error() string {
	return strings.Join(e.Missing, ", ")
}

func (e *InvalidPayloadError) Unwrap() error {
	return domain.ErrInvalidPropertyData
}

type PropertyUsecase struct {
	repo      domain.PropertyRepository
	cache     domain.PropertyCache
	publisher domain.EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

// NewPropertyUsecase wires the use case. cache and publisher may be nil.
func NewPropertyUsecase(repo domain.PropertyRepository, cache domain.PropertyCache, publisher domain.EventPublisher, log *logger.Logger) *PropertyUsecase {
	return &PropertyUsecase{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    log.Named("PropertyUsecase"),
		now:       time.Now,
	}
}

func (uc *PropertyUsecase) CreateProperty(ctx context.Context, payload *contract.PropertyPayload) (*domain.Property, error) {
	if missing := payload.Missing(); len(missing) > 0 {
		uc.logger.Warn("Rejecting property with missing fields", zap.Strings("missing", missing))
		return nil, &InvalidPayloadError{Missing: missing}
	}

	property := payload.ToProperty()
	now := uc.now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	if err := uc.repo.Create(ctx, property); err != nil {
		uc.logger.Error("Failed to create property in repository", zap.Error(err), zap.String("ad_title", property.AdTitle))
		return nil, fmt.Errorf("PropertyUsecase.CreateProperty: %w", err)
	}
	uc.logger.Info("Property created",
		zap.String("property_id", property.ID),
		zap.String("category", property.Category),
		zap.String("subcategory", property.Subcategory),
		zap.Int("images", len(property.Images)),
	)

	if uc.cache != nil {
		if err := uc.cache.InvalidateAll(ctx); err != nil {
			uc.logger.Warn("Failed to invalidate property list cache", zap.Error(err))
		}
		if err := uc.cache.SetProperty(ctx, property); err != nil {
			uc.logger.Warn("Failed to cache created property", zap.Error(err), zap.String("property_id", property.ID))
		}
	}
	if uc.publisher != nil {
		if err := uc.publisher.PublishPropertyCreated(ctx, property); err != nil {
			uc.logger.Warn("Failed to publish property created event", zap.Error(err), zap.String("property_id", property.ID))
		}
	}
	return property, nil
}

// ListProperties returns all properties, newest first.
func (uc *PropertyUsecase) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	var gen uint64
	cacheable := false
	if uc.cache != nil {
		cached, g, err := uc.cache.GetAll(ctx)
		if err != nil {
			uc.logger.Warn("Property list cache read failed", zap.Error(err))
		} else if cached != nil {
			uc.logger.Debug("Property list served from cache", zap.Int("count", len(cached)))
			return cached, nil
		} else {
			gen, cacheable = g, true
		}
	}

	properties, err := uc.repo.FindAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list properties", zap.Error(err))
		return nil, fmt.Errorf("PropertyUsecase.ListProperties: %w", err)
	}
	if properties == nil {
		properties = []*domain.Property{}
	}

	if cacheable {
		if err := uc.cache.SetAll(ctx, gen, properties); err != nil {
			uc.logger.Warn("Failed to cache property list", zap.Error(err))
		}
	}
	return properties, nil
}

func (uc *PropertyUsecase) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetProperty(ctx, id)
		if err != nil {
			uc.logger.Warn("Property cache read failed", zap.Error(err), zap.String("property_id", id))
		} else if cached != nil {
			return cached, nil
		}
	}

	property, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) || errors.Is(err, domain.ErrInvalidID) {
			uc.logger.Warn("Property not found", zap.String("property_id", id))
			return nil, domain.ErrPropertyNotFound
		}
		uc.logger.Error("Failed to get property", zap.Error(err), zap.String("property_id", id))
		return nil, fmt.Errorf("PropertyUsecase.GetProperty: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetProperty(ctx, property); err != nil {
			uc.logger.Warn("Failed to cache property", zap.Error(err), zap.String("property_id", id))
		}
	}
	return property, nil
}
