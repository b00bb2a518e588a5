package entities

import "errors"

var ErrNotFound = errors.New("rates not found")
