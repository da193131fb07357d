// ABOUTME: Repository interface for calorie tracker storage.
// ABOUTME: Defines the contract for the food library and daily log stores.
package storage

import (
	"errors"

	"github.com/aurafoods/calorie/internal/models"
)

// ErrNotFound is returned when a lookup matches no row. It is a normal
// outcome for name lookups, not a storage fault.
var ErrNotFound = errors.New("not found")

// Repository defines the storage interface for calorie data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// User operations
	GetUser(userID int64) (*models.User, error)

	// Food library operations
	DefineFood(f *models.Food) error
	GetFood(userID int64, name string) (*models.Food, error)
	SearchFoods(userID int64, prefix string) ([]string, error)
	BulkDefineFoods(foods []*models.Food) (int, error)

	// Daily log operations
	AppendEntry(e *models.LogEntry) error
	ListDay(userID int64, date string) ([]*models.LogEntry, error)
	DefineAndLog(f *models.Food, e *models.LogEntry) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown(userID int64, date string) (string, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}
