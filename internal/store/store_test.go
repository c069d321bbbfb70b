package store

import (
	"context"
	"encoding/json"
	"testing"

	"sharebite/internal/models"
	"sharebite/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	blobs := storage.NewMemory()
	s, err := Open(context.Background(), blobs)
	require.NoError(t, err)
	return s, blobs
}

func createTestUser(t *testing.T, s *Store, role models.Role) *models.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		OrgName:   "Test Org",
		Role:      role,
	})
	require.NoError(t, err)
	return user
}

func createTestPost(t *testing.T, s *Store, userID string) *models.FoodPost {
	t.Helper()
	post, err := s.CreateFoodPost(context.Background(), CreateFoodPostInput{
		UserID:       userID,
		FoodName:     "Fresh Rotis & Dal",
		FoodType:     "vegetarian",
		Category:     "human",
		Quantity:     50,
		Unit:         "servings",
		PricePerUnit: 2,
		Description:  "Freshly prepared rotis with dal",
	})
	require.NoError(t, err)
	return post
}

func TestOpen_EmptyStorage(t *testing.T) {
	s, _ := newTestStore(t)

	assert.True(t, s.Empty())
	assert.Empty(t, s.AllUsers())
	assert.Empty(t, s.AllFoodPosts())
	assert.Empty(t, s.AllOrders())
}

func TestOpen_CorruptBlobIsFatal(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemory()
	require.NoError(t, blobs.Set(ctx, storage.KeyUsers, "{not json"))

	_, err := Open(ctx, blobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt blob")
}

func TestOpen_ReloadsPersistedState(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemory()

	s1, err := Open(ctx, blobs)
	require.NoError(t, err)
	user := createTestUser(t, s1, models.RoleProvider)
	post := createTestPost(t, s1, user.ID)

	s2, err := Open(ctx, blobs)
	require.NoError(t, err)

	reloaded, err := s2.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TotalPosts)

	posts := s2.AllFoodPosts()
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
	assert.NotNil(t, posts[0].Requests, "request sequence must be present after reload")
}

func TestOpen_NormalizesNilRequestSequences(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemory()

	// A post persisted without the requests field.
	raw, err := json.Marshal([]map[string]any{{"id": "p1", "food_name": "Bread"}})
	require.NoError(t, err)
	require.NoError(t, blobs.Set(ctx, storage.KeyFoodPosts, string(raw)))

	s, err := Open(ctx, blobs)
	require.NoError(t, err)

	post, err := s.GetFoodPost("p1")
	require.NoError(t, err)
	assert.NotNil(t, post.Requests)
	assert.Empty(t, post.Requests)
}

func TestStore_GeneratedIDsAreUnique(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		user, err := s.CreateUser(ctx, CreateUserInput{Email: "u@example.com", Role: models.RoleProvider})
		require.NoError(t, err)
		post := createTestPost(t, s, user.ID)
		order, err := s.CreateOrder(ctx, CreateOrderInput{BuyerID: user.ID, SellerID: "someone"})
		require.NoError(t, err)

		for _, id := range []string{user.ID, post.ID, order.ID} {
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	}
}
