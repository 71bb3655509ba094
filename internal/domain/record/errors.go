package record

import "errors"

// Record domain errors
var (
	ErrMalformedRecord = errors.New("record is missing required fields")
	ErrPersonNotFound  = errors.New("person not found in the current record set")
)
