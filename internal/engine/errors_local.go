package engine

import "errors"

var (
	errNotADirectory       = errors.New("not a directory")
	errUnsupportedPlatform = errors.New("permission and ownership filters require a POSIX target")
)
