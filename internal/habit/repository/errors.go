package repository

import "errors"

var ErrMalformed = errors.New("malformed habit payload")
