// Command main runs the demo data seeder for ShareBite.
package main

import (
	"context"
	"flag"
	"log"

	"sharebite/internal/config"
	"sharebite/internal/seed"
	"sharebite/internal/storage"
	"sharebite/internal/store"
)

func main() {
	// Parse command line flags
	numProviders := flag.Int("providers", 5, "Number of provider users to create")
	numReceivers := flag.Int("receivers", 8, "Number of receiver users to create")
	numPosts := flag.Int("posts", 20, "Number of food posts to create")
	requestsPerPost := flag.Int("requests-per-post", 2, "Maximum requests per post")
	numOrders := flag.Int("orders", 6, "Number of orders to create")
	flag.Parse()

	log.Println("🌱 Demo Data Seeder")
	log.Println("===================")
	log.Printf("Target: %d providers, %d receivers, %d posts, %d orders\n",
		*numProviders, *numReceivers, *numPosts, *numOrders)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Connect to storage
	blobs, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to storage: %v", err)
	}

	st, err := store.Open(ctx, blobs)
	if err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	if !st.Empty() {
		log.Println("⚠️  Store already contains data; seeding on top of it")
	}

	if err := seed.Seed(ctx, st, seed.Options{
		NumProviders:    *numProviders,
		NumReceivers:    *numReceivers,
		NumPosts:        *numPosts,
		RequestsPerPost: *requestsPerPost,
		NumOrders:       *numOrders,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
