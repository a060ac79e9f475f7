package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"userhub/internal/app"
	"userhub/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testSecret signs the tokens accepted by the protected route in tests.
const testSecret = "test-access-token-secret"

// newTestRouter builds the real router over a mock repository, with
// Redis and New Relic absent as they are in a default deployment.
func newTestRouter(repo *MockUserRepository) *gin.Engine {
	return app.NewRouter(app.RouterDeps{
		UserHandler:       handler.NewUserHandler(repo),
		AccessTokenSecret: testSecret,
	})
}

// doRequest performs a request against the router and records the
// response. A non-nil body is sent as JSON.
func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response into v.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// assertMessage checks the status code and the message field of a
// response.
func assertMessage(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMessage string) {
	t.Helper()
	if w.Code != wantStatus {
		t.Errorf("status = %d, want %d", w.Code, wantStatus)
	}
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &body)
	if body.Message != wantMessage {
		t.Errorf("message = %q, want %q", body.Message, wantMessage)
	}
}

func strPtr(s string) *string { return &s }

func numPtr(f float64) *float64 { return &f }
