package usecase

import "fmt"

// ErrNotFound is returned when a referenced id does not exist.
type ErrNotFound struct {
	ID      uint
	Code    string
	Message string
}

func (e ErrNotFound) Error() string {
	return e.Message
}

// ErrValidation is returned for missing or malformed input. It is
// never retried and always surfaces as a client error.
type ErrValidation struct {
	Field   string
	Message string
}

func (e ErrValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ErrUnauthorized struct {
	Message string
}

func (e ErrUnauthorized) Error() string {
	return e.Message
}

// ErrAssetWrite wraps a failed asset store write. The relational write
// that would have referenced the asset must not proceed once this
// occurs.
type ErrAssetWrite struct {
	Name string
	Err  error
}

func (e ErrAssetWrite) Error() string {
	return fmt.Sprintf("failed to store asset %q: %v", e.Name, e.Err)
}

func (e ErrAssetWrite) Unwrap() error {
	return e.Err
}
