package repositories

import (
	"errors"
	"fmt"
	"time"

	"wealthway/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlobRepository persists opaque payloads keyed by name.
type BlobRepository struct {
	db *gorm.DB
}

// NewBlobRepository creates a new blob repository instance
func NewBlobRepository(db *gorm.DB) BlobRepositoryInterface {
	return &BlobRepository{db: db}
}

// Load returns the stored payload for key, or ErrBlobNotFound.
func (r *BlobRepository) Load(key string) ([]byte, error) {
	var blob models.Blob
	err := r.db.Where("key = ?", key).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to load blob %q: %w", key, err)
	}
	return blob.Value, nil
}

// Save writes the payload for key, replacing any previous value.
func (r *BlobRepository) Save(key string, value []byte) error {
	blob := models.Blob{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to save blob %q: %w", key, err)
	}
	return nil
}

// Delete removes the payload for key. Deleting a missing key is not an error.
func (r *BlobRepository) Delete(key string) error {
	if err := r.db.Where("key = ?", key).Delete(&models.Blob{}).Error; err != nil {
		return fmt.Errorf("failed to delete blob %q: %w", key, err)
	}
	return nil
}
