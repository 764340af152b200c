package core

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Use errors.Is to classify.
var (
	ErrInvalidURL   = errors.New("invalid url")
	ErrInvalidRange = errors.New("invalid chapter range")
	ErrUnreachable  = errors.New("target unreachable")
	ErrParse        = errors.New("parse failure")
	ErrRender       = errors.New("render failure")
)

// Kind classifies an Error.
type Kind int

const (
	KindInvalidURL Kind = iota + 1
	KindInvalidRange
	KindUnreachable
	KindParse
	KindRender
)

var kindSentinels = map[Kind]error{
	KindInvalidURL:   ErrInvalidURL,
	KindInvalidRange: ErrInvalidRange,
	KindUnreachable:  ErrUnreachable,
	KindParse:        ErrParse,
	KindRender:       ErrRender,
}

func (k Kind) String() string {
	if err, ok := kindSentinels[k]; ok {
		return err.Error()
	}
	return "unknown error"
}

// Error is a pipeline failure. Every Error is fatal to the run.
type Error struct {
	Kind Kind
	// Op names the stage that failed, e.g. "validate" or "fetch chapter 3".
	Op  string
	URL string
	Err error
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, op, url string, err error) *Error {
	return &Error{Kind: kind, Op: op, URL: url, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.URL != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.URL)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of e's kind.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}
