package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/storelab/ecommerce-api/config"
	"github.com/storelab/ecommerce-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@storelab.dev"
	password := "password123"
	name := "Store Admin"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (full_name, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name
		RETURNING id
	`, name, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	categories := map[string][]struct {
		name        string
		description string
		price       float64
	}{
		"Electronics": {
			{"Wireless Mouse", "2.4GHz wireless mouse with USB receiver", 19.99},
			{"Mechanical Keyboard", "Tenkeyless board with brown switches", 89.90},
		},
		"Books": {
			{"The Go Programming Language", "Donovan & Kernighan", 39.95},
		},
	}

	for catName, products := range categories {
		var catID string
		if err := db.QueryRow(`
			INSERT INTO categories (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET updated_at = now()
			RETURNING id
		`, catName).Scan(&catID); err != nil {
			log.Fatalf("failed to upsert category %s: %v", catName, err)
		}
		for _, p := range products {
			if _, err := db.Exec(`
				INSERT INTO products (name, description, price, category_id)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT DO NOTHING
			`, p.name, p.description, p.price, catID); err != nil {
				log.Fatalf("failed to seed product %s: %v", p.name, err)
			}
		}
		fmt.Printf("category ensured: %s (%d products)\n", catName, len(products))
	}
}
