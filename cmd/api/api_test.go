package api

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/crmbridge/acrm-cust/common"
	"github.com/crmbridge/acrm-cust/countries"
	"github.com/crmbridge/acrm-cust/logger"
)

func buildTestAPI(t *testing.T) http.Handler {
	t.Helper()

	gin.SetMode(gin.TestMode)

	table, err := countries.NewTable()
	if err != nil {
		t.Fatal(err)
	}

	cfg := &common.Config{
		APIUser:        "apiuser",
		APIPassword:    "s3cret",
		ElasticURL:     "http://localhost:9200",
		BackendTimeout: time.Second,
	}

	a := NewAPI(make(chan os.Signal, 1), &logger.Logging{}, cfg, table)

	return a.Build()
}

func TestBuild_HealthIsOpen(t *testing.T) {
	h := buildTestAPI(t)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestBuild_MissingTokenEnvelope(t *testing.T) {
	h := buildTestAPI(t)

	request := httptest.NewRequest(http.MethodPost, "/acrm-cust/live", strings.NewReader(`{}`))
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"status":"UNAUTHORIZED","message":"No token found"}`, recorder.Body.String())
}

func TestBuild_InvalidCredentialEnvelope(t *testing.T) {
	h := buildTestAPI(t)

	request := httptest.NewRequest(http.MethodPost, "/acrm-cust/live", strings.NewReader(`{}`))
	request.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("apiuser:wrong")))
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"status":"UNAUTHORIZED","message":"Invalid token set"}`, recorder.Body.String())
}

func TestBuild_AuthorizedValidationEnvelope(t *testing.T) {
	h := buildTestAPI(t)

	request := httptest.NewRequest(http.MethodPost, "/acrm-cust/live", strings.NewReader(`{"function":"unknown"}`))
	request.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("apiuser:s3cret")))
	recorder := httptest.NewRecorder()

	h.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{
		"status": "BAD REQUEST",
		"message": "Can't resolve target function",
		"body": {"function": "unknown"}
	}`, recorder.Body.String())
}
