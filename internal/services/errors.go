// Package services orchestrates sheet fetches, extraction, and aggregation
// into the views the transport layer serves.
package services

import "errors"

// Sentinel errors mapped to API errors at the transport layer.
var (
	ErrSheetFetch       = errors.New("sheet fetch failed")
	ErrCustomerNotFound = errors.New("customer sheet not configured")
	ErrNoCustomers      = errors.New("no customer sheets configured")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidToken     = errors.New("invalid or expired token")
)
