package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "fantasy-auction/internal/auctionService"
	"fantasy-auction/internal/catalog"
	"fantasy-auction/internal/events"
	"fantasy-auction/internal/repository"
	"fantasy-auction/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter wires the full stack against a freshly seeded in-memory
// repository, exactly as main does minus the HTTP listener and sweeper.
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	if err := catalog.Seed(repo); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	hub := events.NewHub()
	t.Cleanup(hub.Close)

	service := auction.NewAuctionService(repo, hub, auction.Config{})
	return server.SetupRouter(service, hub)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response. For successful responses the "data" payload is
// returned; for errors the full envelope is.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}
	return resp, w
}

// ExecuteRequestAndParseList is ExecuteRequestAndParse for endpoints whose
// data payload is a JSON array.
func ExecuteRequestAndParseList(t *testing.T, router *gin.Engine, method, url string) ([]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	router.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	list, _ := resp["data"].([]any)
	return list, w
}
