package db

import (
	"fmt"

	"simpleshop/internal/domain" // Domain models

	"github.com/shopspring/decimal" // Currency amounts
	"github.com/sirupsen/logrus"    // Logging library
	"golang.org/x/crypto/bcrypt"    // Password hashing
	"gorm.io/gorm"                  // GORM ORM library
)

// Seed fills empty tables with demo accounts and a demo catalog.
// Existing data is never touched.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&domain.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount == 0 {
		if err := seedUsers(db); err != nil {
			return err
		}
		logrus.Info("Seeded demo users")
	}

	var productCount int64
	if err := db.Model(&domain.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if productCount == 0 {
		if err := seedProducts(db); err != nil {
			return err
		}
		logrus.Info("Seeded demo catalog")
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	accounts := []struct {
		username, email, password, roles string
	}{
		{"admin", "admin@example.com", "admin", domain.RoleAdmin + "," + domain.RoleUser},
		{"user", "user@example.com", "user", domain.RoleUser},
	}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u := domain.User{Username: a.username, Email: a.email, Password: string(hash), Roles: a.roles}
		if err := db.Create(&u).Error; err != nil {
			return fmt.Errorf("seed user %s: %w", a.username, err)
		}
	}
	return nil
}

func seedProducts(db *gorm.DB) error {
	products := []domain.Product{
		// Electronics
		{
			Name:        "Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation and long battery life.",
			Price:       decimal.RequireFromString("99.99"),
			ImageURL:    "https://images.pexels.com/photos/3394666/pexels-photo-3394666.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Electronics",
			Stock:       15,
		},
		{
			Name:        "Smartphone",
			Description: "Latest model smartphone with high-resolution camera and fast processor.",
			Price:       decimal.RequireFromString("799.99"),
			ImageURL:    "https://images.pexels.com/photos/1447254/pexels-photo-1447254.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Electronics",
			Stock:       8,
		},
		{
			Name:        "Digital Camera",
			Description: "Professional digital camera with 4K video recording.",
			Price:       decimal.RequireFromString("649.99"),
			ImageURL:    "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Electronics",
			Stock:       5,
		},
		// Clothing
		{
			Name:        "Casual T-Shirt",
			Description: "100% cotton casual t-shirt, perfect for everyday wear.",
			Price:       decimal.RequireFromString("24.99"),
			ImageURL:    "https://images.pexels.com/photos/1656684/pexels-photo-1656684.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Clothing",
			Stock:       50,
		},
		{
			Name:        "Winter Jacket",
			Description: "Warm winter jacket with water-resistant outer shell.",
			Price:       decimal.RequireFromString("149.99"),
			ImageURL:    "https://images.pexels.com/photos/8364025/pexels-photo-8364025.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Clothing",
			Stock:       20,
		},
		{
			Name:        "Running Shoes",
			Description: "Lightweight running shoes with cushioned soles.",
			Price:       decimal.RequireFromString("89.95"),
			ImageURL:    "https://images.pexels.com/photos/1598505/pexels-photo-1598505.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Clothing",
			Stock:       25,
		},
		// Books
		{
			Name:        "Novel - The Great Journey",
			Description: "A bestselling novel about adventure and discovery.",
			Price:       decimal.RequireFromString("18.95"),
			ImageURL:    "https://images.pexels.com/photos/1907785/pexels-photo-1907785.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Books",
			Stock:       30,
		},
		{
			Name:        "Cooking Basics Cookbook",
			Description: "Learn all the basics of cooking with this illustrated cookbook.",
			Price:       decimal.RequireFromString("34.95"),
			ImageURL:    "https://images.pexels.com/photos/4144234/pexels-photo-4144234.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Books",
			Stock:       15,
		},
		{
			Name:        "Science Fiction Collection",
			Description: "A collection of classic science fiction novels.",
			Price:       decimal.RequireFromString("49.99"),
			ImageURL:    "https://images.pexels.com/photos/2927080/pexels-photo-2927080.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Books",
			Stock:       10,
		},
		// Home & Kitchen
		{
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with thermal carafe.",
			Price:       decimal.RequireFromString("79.95"),
			ImageURL:    "https://images.pexels.com/photos/7474372/pexels-photo-7474372.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Home & Kitchen",
			Stock:       10,
		},
		{
			Name:        "Blender",
			Description: "Powerful blender for smoothies and food processing.",
			Price:       decimal.RequireFromString("69.99"),
			ImageURL:    "https://images.pexels.com/photos/1714422/pexels-photo-1714422.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Home & Kitchen",
			Stock:       12,
		},
		{
			Name:        "Stand Mixer",
			Description: "Professional stand mixer for baking enthusiasts.",
			Price:       decimal.RequireFromString("299.99"),
			ImageURL:    "https://images.pexels.com/photos/4194623/pexels-photo-4194623.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Home & Kitchen",
			Stock:       7,
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", products[i].Name, err)
		}
	}
	return nil
}
