package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/sstarkov/styleshop/internal/models"
	"github.com/sstarkov/styleshop/internal/search"
)

// SampleProducts is inserted once when the product table is empty.
var SampleProducts = []models.Product{
	{
		Name:        "Classic White T-Shirt",
		Description: "A comfortable, everyday white t-shirt made from 100% organic cotton.",
		Price:       24.99,
		ImageURL:    "https://images.pexels.com/photos/1656684/pexels-photo-1656684.jpeg",
		Category:    "men",
		InStock:     true,
	},
	{
		Name:        "Black Denim Jeans",
		Description: "Slim-fit black denim jeans with a modern cut and durable construction.",
		Price:       59.99,
		ImageURL:    "https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg",
		Category:    "men",
		InStock:     true,
	},
	{
		Name:        "Floral Summer Dress",
		Description: "A lightweight, floral print dress perfect for warm summer days.",
		Price:       49.99,
		ImageURL:    "https://images.pexels.com/photos/985635/pexels-photo-985635.jpeg",
		Category:    "women",
		InStock:     true,
	},
	{
		Name:        "Leather Jacket",
		Description: "Classic leather jacket with a modern twist. Made from genuine leather.",
		Price:       199.99,
		ImageURL:    "https://images.pexels.com/photos/2681751/pexels-photo-2681751.jpeg",
		Category:    "women",
		InStock:     true,
	},
	{
		Name:        "Silver Watch",
		Description: "Elegant silver watch with a minimalist design and quartz movement.",
		Price:       129.99,
		ImageURL:    "https://images.pexels.com/photos/9979289/pexels-photo-9979289.jpeg",
		Category:    "accessories",
		InStock:     true,
	},
	{
		Name:        "Canvas Backpack",
		Description: "Durable canvas backpack with leather accents and multiple compartments.",
		Price:       44.99,
		ImageURL:    "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg",
		Category:    "accessories",
		InStock:     true,
	},
	{
		Name:        "Striped Sweater",
		Description: "Warm and cozy striped sweater for cool evenings.",
		Price:       39.99,
		ImageURL:    "https://images.pexels.com/photos/6311475/pexels-photo-6311475.jpeg",
		Category:    "new",
		InStock:     true,
	},
	{
		Name:        "Leather Wallet",
		Description: "Compact leather wallet with RFID protection and multiple card slots.",
		Price:       29.99,
		ImageURL:    "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg",
		Category:    "accessories",
		InStock:     true,
	},
	{
		Name:        "Summer Hat",
		Description: "Wide-brimmed straw hat for beach days and sunny outings.",
		Price:       19.99,
		ImageURL:    "https://images.pexels.com/photos/1071162/pexels-photo-1071162.jpeg",
		Category:    "new",
		InStock:     true,
	},
	{
		Name:        "Running Shoes",
		Description: "Lightweight running shoes with excellent cushioning and support.",
		Price:       89.99,
		ImageURL:    "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg",
		Category:    "sale",
		InStock:     true,
	},
}

// Products inserts the sample catalog if the table is empty and mirrors the
// rows into the search index when a client is available.
func Products(ctx context.Context, db *gorm.DB, esClient *elasticsearch.Client, index string) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := make([]models.Product, len(SampleProducts))
	copy(products, SampleProducts)
	for i := range products {
		products[i].CreatedAt = time.Now()
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seed: insert products: %w", err)
	}

	if esClient == nil {
		return nil
	}
	for _, p := range products {
		if err := search.IndexProduct(ctx, esClient, index, p); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
