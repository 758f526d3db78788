// Package repo implements the persistence gateway over GORM. Not-found is
// reported as (nil, nil); every other driver fault is wrapped so call sites
// can match domain.ErrStorageUnavailable or domain.ErrDuplicateKey with
// errors.Is.
package repo

import (
	"fmt"
	"strings"

	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
)

func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if isDupKey(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicateKey, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

// isDupKey matches unique violations by message instead of driver error
// types, so both the mysql and postgres drivers are covered.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
