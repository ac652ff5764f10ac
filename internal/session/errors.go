package session

import "errors"

var ErrAlreadyStarted = errors.New("session already started")
