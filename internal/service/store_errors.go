package service

import (
	"errors"

	"github.com/MKhiriev/go-finance-tracker/internal/store"
)

// translate replaces the storage sentinels callers can act on with the
// entity-specific service errors. Other errors pass through unchanged.
func translate(err error, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return notFound
	case conflict != nil && errors.Is(err, store.ErrAlreadyExists):
		return conflict
	}
	return err
}

// taken reports whether a uniqueness pre-read found a row. A lookup that
// fails for another reason is returned as err.
func taken(lookupErr error) (bool, error) {
	if lookupErr == nil {
		return true, nil
	}
	if errors.Is(lookupErr, store.ErrNotFound) {
		return false, nil
	}
	return false, lookupErr
}
