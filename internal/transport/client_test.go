package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 0, nil)
}

func TestFetchCategories(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories", r.URL.Path)
		_, _ = w.Write([]byte(`{"categories":[{"name":"Cars","subcategories":["Motorcycles"]}]}`))
	})

	resp, err := c.FetchCategories(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Categories)
	assert.Equal(t, "Cars", (*resp.Categories)[0].Name)
}

func TestFetchCategories_MissingKeyIsNil(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	resp, err := c.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Nil(t, resp.Categories)
}

func TestFetchCategories_ServerError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.FetchCategories(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
}

func TestSubmitProperty_SendsContract(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, 1500000.0, got["price"])
		assert.Equal(t, false, got["featured"])
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(contract.SubmitResponse{Success: true, Property: &domain.Property{ID: "abc"}})
	})

	price := 1500000.0
	resp, err := c.SubmitProperty(context.Background(), &contract.PropertyPayload{Price: &price})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "abc", resp.Property.ID)
}

func TestSubmitProperty_ErrorStatusIsNotSuccess(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":true,"message":"Ad title is required"}`))
	})

	resp, err := c.SubmitProperty(context.Background(), &contract.PropertyPayload{})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Ad title is required", resp.Message)
}

func TestSubmitProperty_UnreadableBodyIsError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.SubmitProperty(context.Background(), &contract.PropertyPayload{})
	assert.Error(t, err)
}

func TestSubmitProperty_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(srv.URL, 0, nil)

	_, err := c.SubmitProperty(context.Background(), &contract.PropertyPayload{})
	assert.Error(t, err)
}

func TestGetProperty_NotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Property not found"}`))
	})

	_, err := c.GetProperty(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProperties(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"properties":[{"_id":"b"},{"_id":"a"}]}`))
	})

	resp, err := c.ListProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Properties, 2)
	assert.Equal(t, "b", resp.Properties[0].ID)
}

func TestSubmitProperty_MalformedBodyKeepsRunesWhole(t *testing.T) {
	body := strings.Repeat("x", 199) + "₹ गलत"
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(body))
	})

	_, err := c.SubmitProperty(context.Background(), &contract.PropertyPayload{})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.True(t, utf8.ValidString(se.Body))
	assert.Equal(t, strings.Repeat("x", 199), se.Body)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdef", 3, "abc"},
		{"ab₹", 3, "ab"},
		{"ab₹", 5, "ab₹"},
		{"₹₹", 4, "₹"},
		{"₹", 2, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		assert.Equal(t, tt.want, got, "truncate(%q, %d)", tt.in, tt.n)
		assert.True(t, utf8.ValidString(got))
	}
}
