/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

package submit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataloop-ai/computectl/pkg/compute"
	"github.com/dataloop-ai/computectl/pkg/errors"
)

func TestCreateCompute(t *testing.T) {
	var gotBody createComputeRequest
	var gotAuth, gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/compute", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(headerRequestID)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set(headerContentType, contentTypeJSON)
		json.NewEncoder(w).Encode(Driver{
			ID:     "cmp-123",
			Name:   "my-cluster",
			Status: "created",
		})
	}))
	defer srv.Close()

	c := New(compute.EnvRC,
		WithBaseURL(srv.URL),
		WithToken("test-token"),
	)

	driver, err := c.CreateCompute(t.Context(), "org-1", "ZW5jb2RlZA==")
	require.NoError(t, err)
	require.NotNil(t, driver)

	assert.Equal(t, "cmp-123", driver.ID)
	assert.Equal(t, "created", driver.Status)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "org-1", gotBody.Org)
	assert.Equal(t, "kubernetes", gotBody.Type)
	assert.Equal(t, "ZW5jb2RlZA==", gotBody.Config)
}

func TestSetDefaultDriver(t *testing.T) {
	var gotPath string
	var gotBody setDefaultRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(compute.EnvRC, WithBaseURL(srv.URL))

	err := c.SetDefaultDriver(t.Context(), "org-1", "cmp-123", true)
	require.NoError(t, err)

	assert.Equal(t, "/orgs/org-1/compute/cmp-123/default", gotPath)
	assert.True(t, gotBody.UpdateExistingServices)
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode errors.ErrorCode
	}{
		{"unauthorized", http.StatusUnauthorized, errors.ErrCodeUnauthorized},
		{"forbidden", http.StatusForbidden, errors.ErrCodeUnauthorized},
		{"not found", http.StatusNotFound, errors.ErrCodeNotFound},
		{"bad request", http.StatusBadRequest, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			c := New(compute.EnvRC, WithBaseURL(srv.URL), WithRetryMax(0))

			_, err := c.CreateCompute(t.Context(), "org-1", "x")
			require.Error(t, err)

			var se *errors.StructuredError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.wantCode, se.Code)
			assert.Equal(t, tt.status, se.Context["status"])
		})
	}
}

func TestServerErrorRetriesThenFails(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(compute.EnvRC, WithBaseURL(srv.URL), WithRetryMax(2),
		WithRetryWait(time.Millisecond, 5*time.Millisecond))

	_, err := c.CreateCompute(t.Context(), "org-1", "x")
	require.Error(t, err)

	var se *errors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, errors.ErrCodeUnavailable, se.Code)
	assert.Equal(t, 3, attempts) // initial attempt plus two retries
}

func TestGatewayURLPerEnvironment(t *testing.T) {
	assert.Equal(t, "https://gate.dataloop.ai/api/v1", New(compute.EnvProd).baseURL)
	assert.Equal(t, "https://rc-gate.dataloop.ai/api/v1", New(compute.EnvRC).baseURL)
	assert.Equal(t, "https://dev-gate.dataloop.ai/api/v1", New(compute.EnvDev).baseURL)
}
