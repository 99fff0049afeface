// Package service wraps the repositories one to one. Services are the seam
// where business rules would live; today they add entity context to lookup
// failures and hash credentials, nothing more.
package service

import (
	"errors"
	"fmt"

	"todolists/repository"
)

// NotFound reports whether err came from a lookup that found nothing.
func NotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func wrapNotFound(err error, entity string, id int) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s with id %d: %w", entity, id, err)
	}
	return err
}
