package service

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
	// ErrStore marks failures of the row store. They are never shown to
	// visitors in detail.
	ErrStore = errors.New("store failure")
)
