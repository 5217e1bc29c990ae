// Package repository contains data access logic for the band site. This file
// defines sentinel error values reused across repositories so higher layers
// can distinguish failure scenarios without string matching.
package repository

import "errors"

// ErrStoreUnavailable is returned by write operations when no database is
// configured. Read operations degrade to empty result sets instead: the site
// must keep rendering even with the store down, but a vote or an order must
// never be dropped silently.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrTrackNotFound indicates the submitted track matched nothing in the
// canonical setlist catalog.
var ErrTrackNotFound = errors.New("track not found")

// ErrProductNotFound indicates a product id with no matching catalog row.
var ErrProductNotFound = errors.New("product not found")

// ErrEventNotFound indicates an event id with no matching row.
var ErrEventNotFound = errors.New("event not found")
