package database

import (
	"testing"

	"wealthway/internal/config"
	"wealthway/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB:     db,
		config: &config.DatabaseConfig{Path: ":memory:"},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func SeedTestBlob(t *testing.T, db *DB, key string, value []byte) {
	t.Helper()

	blob := &models.Blob{Key: key, Value: value}
	if err := db.Create(blob).Error; err != nil {
		t.Fatalf("failed to seed test blob %q: %v", key, err)
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM blobs").Error; err != nil {
		t.Logf("failed to cleanup blobs table: %v", err)
	}
}
