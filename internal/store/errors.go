package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
)

// translate maps gorm errors onto the application taxonomy. The db is
// opened with TranslateError, so driver codes arrive as gorm sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrConstraint):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("duplicate key: %w", apperror.ErrConstraint)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("foreign key violated: %w", apperror.ErrConstraint)
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		// sqlite drivers that predate gorm's error translator
		return fmt.Errorf("duplicate key: %w", apperror.ErrConstraint)
	case strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		return fmt.Errorf("foreign key violated: %w", apperror.ErrConstraint)
	default:
		return err
	}
}
