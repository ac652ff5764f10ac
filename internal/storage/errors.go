package storage

import "errors"

var (
	ErrRunNotFound = errors.New("run not found")
	ErrCorruptRun  = errors.New("corrupt run")
)
