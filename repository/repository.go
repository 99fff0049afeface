// Package repository holds the per-entity data access types. Each repository
// wraps a *gorm.DB; absent rows surface as ErrNotFound so callers do not
// depend on gorm error values.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
