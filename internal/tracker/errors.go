// ABOUTME: Error taxonomy for tracker operations.
// ABOUTME: Validation and not-found are recoverable; anything else is a storage fault.
package tracker

import (
	"errors"
	"fmt"

	"github.com/aurafoods/calorie/internal/storage"
)

// ErrValidation marks malformed caller input, rejected before any
// storage access.
var ErrValidation = errors.New("invalid input")

// ErrNotFound marks a name lookup that matched nothing. It aliases the
// storage sentinel so errors.Is works across both layers.
var ErrNotFound = storage.ErrNotFound

// validationf builds a validation error with a caller-facing message.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
