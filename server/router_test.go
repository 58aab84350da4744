package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockRestaurantHandler is a mock implementation of RestaurantHandler.
type MockRestaurantHandler struct{}

func (h *MockRestaurantHandler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "search"}`))
}

func (h *MockRestaurantHandler) GetRestaurantsNearby(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "nearby"}`))
}

func (h *MockRestaurantHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	mockHandler := &MockRestaurantHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockHandler, router)
	appRouter.RegisterRoutes()

	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Search Restaurants",
			method:     "GET",
			path:       "/v1/restaurants/search",
			statusCode: http.StatusOK,
			response:   `{"message": "search"}`,
		},
		{
			name:       "Get Restaurants Nearby",
			method:     "GET",
			path:       "/v1/restaurants/nearby",
			statusCode: http.StatusOK,
			response:   `{"message": "nearby"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/restaurants/search",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
