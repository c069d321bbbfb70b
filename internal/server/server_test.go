package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sharebite/internal/config"
	"sharebite/internal/models"
	"sharebite/internal/storage"
	"sharebite/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a Fiber app routed to a memory-backed store.
// The Prometheus middleware is left nil so repeated test runs do not
// re-register collectors.
func newTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	blobs := storage.NewMemory()
	st, err := store.Open(context.Background(), blobs)
	require.NoError(t, err)

	s := &Server{
		config: &config.Config{Port: "0", StorageDriver: config.DriverMemory},
		blobs:  blobs,
		store:  st,
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

// doJSON issues a request with a JSON body and decodes the JSON response into out.
func doJSON(t *testing.T, app *fiber.App, method, path string, body, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// seedUser creates a user over the API and returns it.
func seedUser(t *testing.T, app *fiber.App, role models.Role) models.User {
	t.Helper()

	var user models.User
	resp := doJSON(t, app, http.MethodPost, "/api/users", store.CreateUserInput{
		FirstName: "Alex",
		Email:     "alex@example.com",
		OrgName:   "Community Kitchen",
		Role:      role,
	}, &user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return user
}

// seedPost creates a food post over the API and returns it.
func seedPost(t *testing.T, app *fiber.App, userID string) models.FoodPost {
	t.Helper()

	var post models.FoodPost
	resp := doJSON(t, app, http.MethodPost, "/api/posts", store.CreateFoodPostInput{
		UserID:       userID,
		FoodName:     "Vegetable Curry",
		FoodType:     "cooked",
		Category:     "meal",
		Quantity:     10,
		Unit:         "servings",
		PricePerUnit: 2.5,
	}, &post)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return post
}

func TestLivenessCheck(t *testing.T) {
	app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodGet, "/health/live", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadinessCheck(t *testing.T) {
	app, _ := newTestServer(t)

	var body struct {
		Status string `json:"status"`
		Checks struct {
			Storage string `json:"storage"`
		} `json:"checks"`
	}
	resp := doJSON(t, app, http.MethodGet, "/health", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks.Storage)
}
