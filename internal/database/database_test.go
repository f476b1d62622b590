package database

import (
	"testing"

	"taskify/backend/internal/config"
	"taskify/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: "oracle",
		},
	}

	_, err := Open(cfg)
	if err == nil {
		t.Fatal("Expected error for unsupported driver, got nil")
	}
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	user := models.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Test User",
		Email:    "migrate@example.com",
		Password: "hash",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to insert user after migration: %v", err)
	}

	task := models.Task{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: user.ID,
		Title:  "Migration check",
	}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("Failed to insert task after migration: %v", err)
	}
}

func TestMigrate_EmailUnique(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	first := models.User{ID: uuid.Must(uuid.NewV4()), Name: "A", Email: "dup@example.com", Password: "hash"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("Failed to insert first user: %v", err)
	}

	second := models.User{ID: uuid.Must(uuid.NewV4()), Name: "B", Email: "dup@example.com", Password: "hash"}
	if err := db.Create(&second).Error; err == nil {
		t.Error("Expected unique constraint violation for duplicate email")
	}
}
