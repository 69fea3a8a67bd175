package repositories

import "errors"

// Storage keys used by the ledger. Each key maps to one blob row.
const (
	BlobKeyTransactions  = "wealthway_transactions"
	BlobKeyCycleStartDay = "wealthway_cycle_start_day"
)

// ErrBlobNotFound is returned when no blob exists for the requested key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobRepositoryInterface defines the contract for key-value blob storage
type BlobRepositoryInterface interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
}
