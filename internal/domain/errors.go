package domain

import "errors"

var (
	// ErrProductNotFound is returned when no product matches a lookup ID
	ErrProductNotFound = errors.New("product not found")

	// ErrSourceUnavailable is returned when a feed source cannot be reached or read
	ErrSourceUnavailable = errors.New("feed source unavailable")

	// ErrNoProducts is returned when a feed source yields zero usable rows
	ErrNoProducts = errors.New("feed source returned no products")

	// ErrMissingCredentials is returned when the spreadsheet service account is not configured
	ErrMissingCredentials = errors.New("missing or invalid spreadsheet credentials")

	// ErrCacheMiss is returned when the snapshot cache holds no fresh value
	ErrCacheMiss = errors.New("cache miss")
)
