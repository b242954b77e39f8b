package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/devconnect/devconnect-api/config"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// Dev seeder: one demo user with a profile and a post.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@devconnect.dev"
	password := "password123"
	name := "Demo Developer"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, avatar)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash, helpers.GravatarURL(email)).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", userID, email, password)

	var profileID string
	err = db.QueryRow(`
		INSERT INTO profiles (user_id, company, location, bio, status, github_username, skills, social, experience, education)
		VALUES ($1, 'DevConnect', 'Remote', 'Demo account', 'Full Stack Developer', '', $2, '{}', '[]', '[]')
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, userID, "{Go,PostgreSQL,React}").Scan(&profileID)
	if err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%s\n", profileID)

	var postID string
	err = db.QueryRow(`
		INSERT INTO posts (user_id, body, name, avatar)
		VALUES ($1, 'Hello from the demo account!', $2, $3)
		RETURNING id
	`, userID, name, helpers.GravatarURL(email)).Scan(&postID)
	if err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%s\n", postID)
}
