package seed

import (
	"context"
	"testing"

	"sharebite/internal/models"
	"sharebite/internal/storage"
	"sharebite/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, storage.NewMemory())
	require.NoError(t, err)

	opts := Options{
		NumProviders:    3,
		NumReceivers:    4,
		NumPosts:        10,
		RequestsPerPost: 2,
		NumOrders:       5,
	}
	require.NoError(t, Seed(ctx, st, opts))

	users := st.AllUsers()
	assert.Len(t, users, opts.NumProviders+opts.NumReceivers)

	providers := 0
	for _, u := range users {
		require.True(t, u.Role.Valid())
		assert.NotEmpty(t, u.Email)
		if u.Role == models.RoleProvider {
			providers++
		}
	}
	assert.Equal(t, opts.NumProviders, providers)

	posts := st.AllFoodPosts()
	require.Len(t, posts, opts.NumPosts)
	for _, p := range posts {
		assert.NotEmpty(t, p.FoodName)
		assert.True(t, p.Status.Valid())
		assert.Positive(t, p.Quantity)
	}

	assert.Len(t, st.AllOrders(), opts.NumOrders)

	// Every flattened request points at a post that exists.
	for _, r := range st.AllRequests() {
		_, err := st.GetFoodPost(r.PostID)
		assert.NoError(t, err)
	}
}

func TestSeed_EmptyOptions(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, storage.NewMemory())
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, st, Options{}))
	assert.True(t, st.Empty())
}
