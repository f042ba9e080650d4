package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rotaplan/pkg/apperr"
)

var kinds = []error{
	apperr.ErrInvalidRequest,
	apperr.ErrNotFound,
	apperr.ErrUnauthorized,
	apperr.ErrDependencyFailure,
	apperr.ErrTimeout,
}

// Wrap translates a gorm error into an apperr kind, prefixed with what.
// Errors that already carry a kind pass through.
func Wrap(err error, what string) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return err
		}
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, apperr.ErrNotFound)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w: %w", what, apperr.ErrTimeout, err)
	default:
		return fmt.Errorf("%s: %w: %w", what, apperr.ErrDependencyFailure, err)
	}
}
