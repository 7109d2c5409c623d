package repository

import "errors"

// ErrNotFound is returned when a résumé or draft slot does not exist.
var ErrNotFound = errors.New("not found")
