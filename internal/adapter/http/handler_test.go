package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPropertyService struct{ mock.Mock }

func (m *MockPropertyService) CreateProperty(ctx context.Context, payload *contract.PropertyPayload) (*domain.Property, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyService) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Property), args.Error(1)
}

func (m *MockPropertyService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func newTestRouter(svc PropertyService, cfg RouterConfig) http.Handler {
	log := logger.NewNop()
	m := metrics.NewMetricsManager("test")
	categories := usecase.NewCategoryUsecase(usecase.DefaultCategories(), log)
	return NewRouter(NewHandler(svc, categories, m, log), cfg, m, log)
}

func TestHandleGetCategories(t *testing.T) {
	router := newTestRouter(new(MockPropertyService), RouterConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body contract.CategoriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Categories)
	assert.Len(t, *body.Categories, 11)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestHandleCreateProperty_Created(t *testing.T) {
	svc := new(MockPropertyService)
	router := newTestRouter(svc, RouterConfig{MaxBodyBytes: 1 << 20})

	svc.On("CreateProperty", mock.Anything, mock.MatchedBy(func(p *contract.PropertyPayload) bool {
		return p.AdTitle == "Nice flat" && p.Price != nil && *p.Price == 1500000
	})).Return(&domain.Property{ID: "abc", AdTitle: "Nice flat"}, nil)

	body := `{"adTitle":"Nice flat","price":1500000,"featured":false}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp contract.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Property listed successfully!", resp.Message)
	assert.Equal(t, "abc", resp.Property.ID)
}

func TestHandleCreateProperty_BadJSON(t *testing.T) {
	router := newTestRouter(new(MockPropertyService), RouterConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp contract.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestHandleCreateProperty_Validation(t *testing.T) {
	svc := new(MockPropertyService)
	router := newTestRouter(svc, RouterConfig{})
	svc.On("CreateProperty", mock.Anything, mock.Anything).
		Return(nil, &usecase.InvalidPayloadError{Missing: []string{"Ad title is required"}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ad title is required")
}

func TestHandleCreateProperty_InternalError(t *testing.T) {
	svc := new(MockPropertyService)
	router := newTestRouter(svc, RouterConfig{})
	svc.On("CreateProperty", mock.Anything, mock.Anything).Return(nil, errors.New("db insert failed"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp contract.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Error submitting property", resp.Message)
}

func TestHandleCreateProperty_BodyTooLarge(t *testing.T) {
	router := newTestRouter(new(MockPropertyService), RouterConfig{MaxBodyBytes: 16})

	body := `{"description":"` + strings.Repeat("x", 64) + `"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateProperty_RateLimited(t *testing.T) {
	svc := new(MockPropertyService)
	router := newTestRouter(svc, RouterConfig{SubmitPerSecond: 0.001, SubmitBurst: 1})
	svc.On("CreateProperty", mock.Anything, mock.Anything).Return(&domain.Property{ID: "abc"}, nil)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(`{}`)))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/properties", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	svc.AssertNumberOfCalls(t, "CreateProperty", 1)
}

func TestHandleListProperties(t *testing.T) {
	svc := new(MockPropertyService)
	router := newTestRouter(svc, RouterConfig{})
	svc.On("ListProperties", mock.Anything).Return([]*domain.Property{{ID: "b"}, {ID: "a"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp contract.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Properties, 2)
	assert.Equal(t, "b", resp.Properties[0].ID)
}

func TestHandleGetProperty_NotFound(t *testing.T) {
	svc := new(MockPropertyService)
	router := newTestRouter(svc, RouterConfig{})
	svc.On("GetProperty", mock.Anything, "missing").Return(nil, domain.ErrPropertyNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Property not found")
}

func TestHandleGetProperty_OK(t *testing.T) {
	svc := new(MockPropertyService)
	router := newTestRouter(svc, RouterConfig{})
	svc.On("GetProperty", mock.Anything, "abc").Return(&domain.Property{ID: "abc", AdTitle: "Nice flat"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties/abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp contract.GetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Nice flat", resp.Property.AdTitle)
}

func TestHandleRootAndMetrics(t *testing.T) {
	router := newTestRouter(new(MockPropertyService), RouterConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Property Listing API is running")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_category_requests_total")
}
