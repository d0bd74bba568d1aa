// Seed script for local development.
//
// Creates a demo teacher account and a starter assignment so a fresh
// database has something to log into and something to assign.
//
// Usage: go run scripts/seed_demo.go

package main

import (
	"log"
	"os"

	"lexiscreen_backend/internal/config"
	"lexiscreen_backend/internal/model"
	"lexiscreen_backend/pkg/database"
	"lexiscreen_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", "teacher@example.com").Count(&count)
	if count > 0 {
		log.Println("demo teacher already present, nothing to do")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("teachme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	teacher := &model.User{
		Name:     "Demo Teacher",
		Email:    "teacher@example.com",
		Password: string(hashed),
		Role:     model.Teacher,
	}
	if err := db.Create(teacher).Error; err != nil {
		log.Fatalf("create teacher: %v", err)
	}

	assignment := &model.Assignment{
		Title:     "The Quiet Garden",
		Text:      "The garden rests under the morning sun. Bees hum between the flowers while leaves sway in the wind. A small path leads to an old wooden bench.",
		TaskType:  model.AssignmentTaskHybrid,
		CreatorID: teacher.ID,
	}
	if err := db.Create(assignment).Error; err != nil {
		log.Fatalf("create assignment: %v", err)
	}

	log.Println("seeded demo teacher (teacher@example.com / teachme123) and one assignment")
}
