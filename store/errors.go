package store

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrAddressNotFound  = errors.New("address not found")
)
