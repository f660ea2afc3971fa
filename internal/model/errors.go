package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures
type ErrorKind string

const (
	KindNetwork      ErrorKind = "network"
	KindNotFound     ErrorKind = "not_found"
	KindArchive      ErrorKind = "archive"
	KindIO           ErrorKind = "io"
	KindPermission   ErrorKind = "permission"
	KindEmptyCatalog ErrorKind = "empty_catalog"
)

// Sentinels for errors.Is checks against an Error's kind
var (
	ErrNetwork      = errors.New("network error")
	ErrNotFound     = errors.New("not found")
	ErrArchive      = errors.New("archive error")
	ErrIO           = errors.New("i/o error")
	ErrPermission   = errors.New("permission denied")
	ErrEmptyCatalog = errors.New("empty catalog")
)

var kindSentinels = map[ErrorKind]error{
	KindNetwork:      ErrNetwork,
	KindNotFound:     ErrNotFound,
	KindArchive:      ErrArchive,
	KindIO:           ErrIO,
	KindPermission:   ErrPermission,
	KindEmptyCatalog: ErrEmptyCatalog,
}

// Error is a classified pipeline failure. Op names the failing step, Path the
// file, directory or URL involved.
type Error struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

// NewError creates a classified error
func NewError(kind ErrorKind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, kindSentinels[e.Kind])
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinel. Permission errors also match ErrIO.
func (e *Error) Is(target error) bool {
	if sentinel, ok := kindSentinels[e.Kind]; ok && sentinel == target {
		return true
	}
	return e.Kind == KindPermission && target == ErrIO
}

// KindOf returns the kind of the first Error in err's chain, or "" if none
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
