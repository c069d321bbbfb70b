package server

import (
	"context"
	"net/http"
	"testing"

	"sharebite/internal/models"
	"sharebite/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFoodPost(t *testing.T) {
	app, _ := newTestServer(t)
	user := seedUser(t, app, models.RoleProvider)

	post := seedPost(t, app, user.ID)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.PostStatusAvailable, post.Status)
	assert.NotNil(t, post.Requests)
	assert.Zero(t, post.Views)

	// The owner's post counter moved with the create.
	var owner models.User
	doJSON(t, app, http.MethodGet, "/api/users/"+user.ID, nil, &owner)
	assert.Equal(t, 1, owner.TotalPosts)
}

func TestCreateFoodPost_Validation(t *testing.T) {
	app, _ := newTestServer(t)

	resp := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{"quantity": 5}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
		"food_name": "Rice",
		"quantity":  -1,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetFoodPost(t *testing.T) {
	app, _ := newTestServer(t)
	user := seedUser(t, app, models.RoleProvider)
	post := seedPost(t, app, user.ID)

	var got models.FoodPost
	resp := doJSON(t, app, http.MethodGet, "/api/posts/"+post.ID, nil, &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, post.FoodName, got.FoodName)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateFoodPost(t *testing.T) {
	app, _ := newTestServer(t)
	user := seedUser(t, app, models.RoleProvider)
	post := seedPost(t, app, user.ID)

	var got models.FoodPost
	resp := doJSON(t, app, http.MethodPatch, "/api/posts/"+post.ID, map[string]any{
		"status":   "reserved",
		"quantity": 4,
	}, &got)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.PostStatusReserved, got.Status)
	assert.Equal(t, 4.0, got.Quantity)
	assert.Equal(t, post.FoodName, got.FoodName)

	resp = doJSON(t, app, http.MethodPatch, "/api/posts/"+post.ID, map[string]any{"status": "vaporized"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteFoodPost(t *testing.T) {
	app, _ := newTestServer(t)
	user := seedUser(t, app, models.RoleProvider)
	post := seedPost(t, app, user.ID)

	resp := doJSON(t, app, http.MethodDelete, "/api/posts/"+post.ID, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/"+post.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/posts/"+post.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSearchFoodPosts(t *testing.T) {
	app, s := newTestServer(t)
	user := seedUser(t, app, models.RoleProvider)
	seedPost(t, app, user.ID) // Vegetable Curry, cooked/meal, 2.5 per unit

	_, err := s.store.CreateFoodPost(context.Background(), store.CreateFoodPostInput{
		UserID:       user.ID,
		FoodName:     "Day-old Bread",
		FoodType:     "baked",
		Category:     "bakery",
		Quantity:     20,
		PricePerUnit: 0.5,
	})
	require.NoError(t, err)

	var posts []models.FoodPost
	resp := doJSON(t, app, http.MethodGet, "/api/posts/search?q=curry", nil, &posts)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, posts, 1)
	assert.Equal(t, "Vegetable Curry", posts[0].FoodName)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/search?food_type=baked&max_price=1", nil, &posts)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, posts, 1)
	assert.Equal(t, "Day-old Bread", posts[0].FoodName)

	resp = doJSON(t, app, http.MethodGet, "/api/posts/search?max_price=banana", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIncrementPostViews(t *testing.T) {
	app, _ := newTestServer(t)
	user := seedUser(t, app, models.RoleProvider)
	post := seedPost(t, app, user.ID)

	var body struct {
		Views int `json:"views"`
	}
	resp := doJSON(t, app, http.MethodPost, "/api/posts/"+post.ID+"/views", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, body.Views)

	resp = doJSON(t, app, http.MethodPost, "/api/posts/"+post.ID+"/views", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, body.Views)

	resp = doJSON(t, app, http.MethodPost, "/api/posts/missing/views", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetUserPosts(t *testing.T) {
	app, _ := newTestServer(t)
	user := seedUser(t, app, models.RoleProvider)
	seedPost(t, app, user.ID)

	var posts []models.FoodPost
	resp := doJSON(t, app, http.MethodGet, "/api/users/"+user.ID+"/posts", nil, &posts)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, posts, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/users/stranger/posts", nil, &posts)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, posts)
}
