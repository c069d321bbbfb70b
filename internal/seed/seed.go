// Package seed provides helpers to create demo data for the data store.
// These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"sharebite/internal/models"
	"sharebite/internal/store"

	"github.com/brianvoe/gofakeit/v6"
)

// Options configuration for the seeder
type Options struct {
	NumProviders    int
	NumReceivers    int
	NumPosts        int
	RequestsPerPost int
	NumOrders       int
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{
		NumProviders:    5,
		NumReceivers:    8,
		NumPosts:        20,
		RequestsPerPost: 2,
		NumOrders:       6,
	}
}

var (
	orgTypes = []string{
		"restaurant", "bakery", "grocery", "hotel", "catering",
		"shelter", "food bank", "community kitchen", "charity", "school",
	}

	foodNames = []string{
		"Vegetable Curry", "Day-old Bread", "Fruit Salad", "Lentil Soup",
		"Rice and Beans", "Pasta Bake", "Sandwich Platter", "Roast Vegetables",
		"Chicken Biryani", "Tomato Soup", "Bagels", "Mixed Greens",
		"Potato Wedges", "Fried Rice", "Dal Tadka", "Paneer Tikka",
		"Croissants", "Fresh Apples", "Yogurt Cups", "Granola Bars",
	}

	foodTypes  = []string{"cooked", "baked", "fresh", "packaged"}
	categories = []string{"meal", "bakery", "produce", "dairy", "snacks"}
	units      = []string{"servings", "kg", "loaves", "boxes", "litres"}
)

// Seed populates the store with demo data
func Seed(ctx context.Context, st *store.Store, opts Options) error {
	log.Printf("🌱 Seeding %d providers, %d receivers and %d posts...",
		opts.NumProviders, opts.NumReceivers, opts.NumPosts)

	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	providers, err := createUsers(ctx, st, models.RoleProvider, opts.NumProviders)
	if err != nil {
		return fmt.Errorf("failed to create providers: %w", err)
	}
	receivers, err := createUsers(ctx, st, models.RoleReceiver, opts.NumReceivers)
	if err != nil {
		return fmt.Errorf("failed to create receivers: %w", err)
	}
	log.Printf("✓ %d users created", len(providers)+len(receivers))

	posts, err := createPosts(ctx, st, r, providers, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d food posts created", len(posts))

	requests, err := createRequests(ctx, st, r, posts, receivers, opts.RequestsPerPost)
	if err != nil {
		return fmt.Errorf("failed to create requests: %w", err)
	}
	log.Printf("✓ %d requests created", requests)

	orders, err := createOrders(ctx, st, r, posts, receivers, opts.NumOrders)
	if err != nil {
		return fmt.Errorf("failed to create orders: %w", err)
	}
	log.Printf("✓ %d orders created", orders)

	log.Println("🎉 Seeding complete")
	return nil
}

func createUsers(ctx context.Context, st *store.Store, role models.Role, n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := st.CreateUser(ctx, store.CreateUserInput{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Email:     gofakeit.Email(),
			Phone:     gofakeit.Phone(),
			OrgName:   gofakeit.Company(),
			OrgType:   orgTypes[i%len(orgTypes)],
			Address:   gofakeit.Address().Address,
			Role:      role,
		})
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func createPosts(ctx context.Context, st *store.Store, r *rand.Rand, providers []models.User, n int) ([]models.FoodPost, error) {
	if len(providers) == 0 {
		return nil, nil
	}

	posts := make([]models.FoodPost, 0, n)
	for i := 0; i < n; i++ {
		owner := providers[r.Intn(len(providers))]
		quantity := float64(r.Intn(20) + 1)
		price := float64(r.Intn(500)) / 100

		post, err := st.CreateFoodPost(ctx, store.CreateFoodPostInput{
			UserID:       owner.ID,
			FoodName:     foodNames[r.Intn(len(foodNames))],
			FoodType:     foodTypes[r.Intn(len(foodTypes))],
			Category:     categories[r.Intn(len(categories))],
			Quantity:     quantity,
			Unit:         units[r.Intn(len(units))],
			PricePerUnit: price,
			TotalAmount:  quantity * price,
			SafeUntil:    time.Now().Add(time.Duration(r.Intn(72)+1) * time.Hour),
			Description:  gofakeit.Sentence(8),
		})
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

func createRequests(ctx context.Context, st *store.Store, r *rand.Rand, posts []models.FoodPost, receivers []models.User, perPost int) (int, error) {
	if len(receivers) == 0 {
		return 0, nil
	}

	created := 0
	for _, post := range posts {
		for i := 0; i < r.Intn(perPost+1); i++ {
			receiver := receivers[r.Intn(len(receivers))]
			req, err := st.CreateRequest(ctx, store.CreateRequestInput{
				PostID:   post.ID,
				UserID:   receiver.ID,
				Quantity: float64(r.Intn(int(post.Quantity))) + 1,
				Message:  gofakeit.Sentence(6),
			})
			if err != nil {
				return created, err
			}
			created++

			// Roughly a third of requests get a decision.
			if r.Intn(3) == 0 {
				status := models.RequestStatusAccepted
				if r.Intn(2) == 0 {
					status = models.RequestStatusRejected
				}
				if _, err := st.UpdateRequestStatus(ctx, req.ID, status); err != nil {
					return created, err
				}
			}
		}
	}
	return created, nil
}

func createOrders(ctx context.Context, st *store.Store, r *rand.Rand, posts []models.FoodPost, receivers []models.User, n int) (int, error) {
	if len(posts) == 0 || len(receivers) == 0 {
		return 0, nil
	}

	created := 0
	for i := 0; i < n; i++ {
		post := posts[r.Intn(len(posts))]
		buyer := receivers[r.Intn(len(receivers))]
		quantity := float64(r.Intn(int(post.Quantity))) + 1

		order, err := st.CreateOrder(ctx, store.CreateOrderInput{
			BuyerID:     buyer.ID,
			SellerID:    post.UserID,
			PostID:      post.ID,
			Quantity:    quantity,
			TotalAmount: quantity * post.PricePerUnit,
		})
		if err != nil {
			return created, err
		}
		created++

		if r.Intn(2) == 0 {
			if _, err := st.UpdateOrderStatus(ctx, order.ID, models.OrderStatusConfirmed); err != nil {
				return created, err
			}
		}
	}
	return created, nil
}
