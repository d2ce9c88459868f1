package service

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"daily-journal/internal/apperr"
)

// lookupErr classifies a failed lookup of a single entity.
func lookupErr(entity, id, op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, id)
	}
	return apperr.Persistence(op, err)
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
