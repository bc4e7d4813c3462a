package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/usecase"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("property-service/http-handler")

type PropertyService interface {
	CreateProperty(ctx context.Context, payload *contract.PropertyPayload) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]*domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
}

type CategoryService interface {
	Categories() []domain.Category
}

// Handler serves the property API.
type Handler struct {
	properties PropertyService
	categories CategoryService
	metrics    *metrics.MetricsManager
	logger     *logger.Logger
}

func NewHandler(properties PropertyService, categories CategoryService, m *metrics.MetricsManager, log *logger.Logger) *Handler {
	return &Handler{
		properties: properties,
		categories: categories,
		metrics:    m,
		logger:     log.Named("HTTPHandler"),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) countError(route, kind string) {
	if h.metrics != nil {
		h.metrics.APIErrorsTotal.WithLabelValues(route, kind).Inc()
	}
}

// HandleRoot is the liveness endpoint.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Property Listing API is running"})
}

func (h *Handler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.categories.Categories()
	if h.metrics != nil {
		h.metrics.CategoryRequestsTotal.Inc()
	}
	h.writeJSON(w, http.StatusOK, contract.CategoriesResponse{Categories: &categories})
}

func (h *Handler) HandleCreateProperty(w http.ResponseWriter, r *http.Request) {
	var payload contract.PropertyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Warn("Invalid request body for CreateProperty", zap.Error(err))
		h.countError("create_property", "bad_request")
		h.writeJSON(w, http.StatusBadRequest, contract.SubmitResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	ctx, span := tracer.Start(r.Context(), "Handler.CreateProperty", oteltrace.WithAttributes(
		attribute.String("category", payload.Category),
		attribute.String("subcategory", payload.Subcategory),
		attribute.Int("images", len(payload.Images)),
	))
	defer span.End()

	property, err := h.properties.CreateProperty(ctx, &payload)
	if err != nil {
		span.RecordError(err)
		var invalid *usecase.InvalidPayloadError
		if errors.As(err, &invalid) {
			h.countError("create_property", "validation")
			h.writeJSON(w, http.StatusBadRequest, contract.SubmitResponse{
				Success: false,
				Message: "Error submitting property",
				Error:   invalid.Error(),
			})
			return
		}
		h.logger.Error("Error submitting property", zap.Error(err))
		h.countError("create_property", "internal")
		h.writeJSON(w, http.StatusInternalServerError, contract.SubmitResponse{
			Success: false,
			Message: "Error submitting property",
			Error:   err.Error(),
		})
		return
	}

	span.SetAttributes(attribute.String("property_id", property.ID))
	if h.metrics != nil {
		h.metrics.PropertiesCreatedTotal.Inc()
	}
	h.writeJSON(w, http.StatusCreated, contract.SubmitResponse{
		Success:  true,
		Message:  "Property listed successfully!",
		Property: property,
	})
}

func (h *Handler) HandleListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.properties.ListProperties(r.Context())
	if err != nil {
		h.logger.Error("Error fetching properties", zap.Error(err))
		h.countError("list_properties", "internal")
		h.writeJSON(w, http.StatusInternalServerError, contract.ListResponse{
			Success: false,
			Message: "Error fetching properties",
		})
		return
	}
	h.writeJSON(w, http.StatusOK, contract.ListResponse{Success: true, Properties: properties})
}

func (h *Handler) HandleGetProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	property, err := h.properties.GetProperty(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			h.countError("get_property", "not_found")
			h.writeJSON(w, http.StatusNotFound, contract.GetResponse{Success: false, Message: "Property not found"})
			return
		}
		h.logger.Error("Error fetching property", zap.String("id", id), zap.Error(err))
		h.countError("get_property", "internal")
		h.writeJSON(w, http.StatusInternalServerError, contract.GetResponse{Success: false, Message: "Error fetching property"})
		return
	}
	h.writeJSON(w, http.StatusOK, contract.GetResponse{Success: true, Property: property})
}
