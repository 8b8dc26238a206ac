package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("items"))
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Route("/api/nested", func(r chi.Router) {
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/items", http.StatusOK},
		{http.MethodPost, "/api/items", http.StatusCreated},
		{http.MethodDelete, "/api/nested/7", http.StatusNoContent},
		{http.MethodPut, "/api/items", http.StatusNotFound},
		{http.MethodPatch, "/api/items", http.StatusNotFound},
		{http.MethodGet, "/api/nested/7", http.StatusNotFound},
		{http.MethodGet, "/api/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_WritesEnvelope(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/items", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"error":{"kind":"NotFound","message":"not found: route not found"}}`, rr.Body.String())
}

// Wrong methods on paths served by mounted sub-routers must be answered
// directly and promptly.
func TestCheckHTTPMethod_MountedRoutesReturn(t *testing.T) {
	router := newTestRouter(t)

	requests := []struct{ method, path string }{
		{http.MethodPatch, "/api/careers"},
		{http.MethodPut, "/api/careers"},
		{http.MethodPatch, "/api/careers/some-id"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodPatch, "/api/version"},
	}

	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			done := make(chan *httptest.ResponseRecorder, 1)
			go func() {
				rr := httptest.NewRecorder()
				router.ServeHTTP(rr, httptest.NewRequest(req.method, req.path, nil))
				done <- rr
			}()

			select {
			case rr := <-done:
				assert.Equal(t, http.StatusNotFound, rr.Code)
				assert.Contains(t, rr.Body.String(), `"kind":"NotFound"`)
			case <-time.After(2 * time.Second):
				t.Fatal("request did not complete")
			}
		})
	}
}
