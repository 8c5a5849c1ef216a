package usecase

import "errors"

var ErrInvalidMessage = errors.New("invalid contact message")
