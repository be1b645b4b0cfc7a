package models

import "errors"

// Custom errors
var (
	ErrMalformedParlay = errors.New("malformed parlay definition")
)
