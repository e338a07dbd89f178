package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbill/billing-api/internal/application/dto"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── Reads and caching ────────────────────────────────────────────────────────

func TestListCompaniesCachesWhileFresh(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/api/companies", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"data":       []map[string]any{{"id": "c1", "name": "Umang Traders", "gstin": "27AAPFU0939F1ZV"}},
				"nextCursor": nil,
				"hasMore":    false,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-1")

	page, err := c.ListCompanies(context.Background(), ListParams{Limit: 20})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Umang Traders", page.Data[0].Name)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)

	// Same query again: served from cache, no second round trip.
	_, err = c.ListCompanies(context.Background(), ListParams{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())

	// A different query is a different cache key.
	_, err = c.ListCompanies(context.Background(), ListParams{Limit: 20, Search: "umang"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestMutationInvalidatesListCache(t *testing.T) {
	var listHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			listHits.Add(1)
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"data":    map[string]any{"data": []any{}, "nextCursor": nil, "hasMore": false},
			})
		case r.Method == http.MethodPost:
			writeJSON(t, w, http.StatusCreated, map[string]any{
				"success": true,
				"data":    map[string]any{"id": "c9", "name": "Sharma Steels", "gstin": "27AAPFU0939F1ZV"},
			})
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.ListCompanies(context.Background(), ListParams{})
	require.NoError(t, err)
	_, err = c.ListCompanies(context.Background(), ListParams{})
	require.NoError(t, err)
	require.Equal(t, int32(1), listHits.Load())

	created, err := c.CreateCompany(context.Background(), dto.CreateCompanyRequest{
		Name:  "Sharma Steels",
		GSTIN: "27AAPFU0939F1ZV",
	})
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)

	// The create dropped every cached companies read.
	_, err = c.ListCompanies(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), listHits.Load())
}

func TestReadRetriesTransientServerError(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			writeJSON(t, w, http.StatusInternalServerError, map[string]any{
				"success": false, "error": "server_error", "message": "An unexpected error occurred",
			})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"id": "c1", "name": "Umang Traders", "gstin": "27AAPFU0939F1ZV"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	got, err := c.GetCompany(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Umang Traders", got.Name)
	assert.Equal(t, int32(2), hits.Load())
}

func TestReadDoesNotRetryNotFound(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, http.StatusNotFound, map[string]any{
			"success": false, "error": "not_found", "message": "Record not found",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetCompany(context.Background(), "missing")
	require.Error(t, err)

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, CodeNotFound, ae.Code)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, int32(1), hits.Load())
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestMutationDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{
			"success": false, "error": "server_error", "message": "An unexpected error occurred",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateCustomer(context.Background(), dto.CreateCustomerRequest{Name: "Ravi Kumar"})
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestDuplicateErrorCarriesField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]any{
			"success": false,
			"error":   "duplicate_error",
			"field":   "gstin",
			"message": "gstin already exists",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateCompany(context.Background(), dto.CreateCompanyRequest{
		Name:  "Sharma Steels",
		GSTIN: "27AAPFU0939F1ZV",
	})

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, CodeDuplicate, ae.Code)
	assert.Equal(t, "gstin", ae.Field)
}

func TestValidationErrorCarriesFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "validation_error",
			"fields": []map[string]any{
				{"path": "gstin", "code": "gstin", "message": "gstin must be a valid GSTIN"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateCompany(context.Background(), dto.CreateCompanyRequest{Name: "X", GSTIN: "bad"})

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, CodeValidation, ae.Code)
	require.Len(t, ae.Fields, 1)
	assert.Equal(t, "gstin", ae.Fields[0].Path)
}

func TestLoginInstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"success": true,
				"data": map[string]any{
					"token": "session-token",
					"user":  map[string]any{"id": "u1", "email": "owner@example.in"},
				},
			})
			return
		}
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"data": []any{}, "nextCursor": nil, "hasMore": false},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	out, err := c.Login(context.Background(), "owner@example.in", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "session-token", out.Token)

	_, err = c.ListCustomers(context.Background(), ListParams{})
	require.NoError(t, err)
}

func TestUnauthorizedMapsToUnauthorizedCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{
			"success": false, "error": "Unauthorized. Please login.",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetStats(context.Background(), "c1")

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, CodeUnauthorized, ae.Code)
}

// ── Offline and localization ─────────────────────────────────────────────────

func TestOfflineClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refused from here on

	c := New(srv.URL)
	_, err := c.GetCompany(context.Background(), "c1")

	var ae *APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, CodeOffline, ae.Code)
}

func TestLocalize(t *testing.T) {
	err := &APIError{Code: CodeDuplicate, Field: "gstin"}

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "A record with this value already exists."},
		{"en-IN", "A record with this value already exists."},
		{"hi", "इस मान के साथ एक रिकॉर्ड पहले से मौजूद है।"},
		{"hi-IN", "इस मान के साथ एक रिकॉर्ड पहले से मौजूद है।"},
		{"fr", "A record with this value already exists."},
		{"", "A record with this value already exists."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Localize(err, tt.locale), "locale %q", tt.locale)
	}
}

func TestLocalizeNonAPIError(t *testing.T) {
	got := Localize(context.DeadlineExceeded, "en")
	assert.Equal(t, "A network error occurred. Please try again.", got)
}

func TestStaleCacheRefetches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"data": []any{}, "nextCursor": nil, "hasMore": false},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithStaleTime(10*time.Millisecond))

	_, err := c.ListCompanies(context.Background(), ListParams{})
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = c.ListCompanies(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}
