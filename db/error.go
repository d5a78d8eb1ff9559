package db

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDataCorrupted  = errors.New("data is corrupted")
)

// Kind classifies an [OpError].
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindCorrupted
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindCorrupted:
		return "corrupted"
	}
	return "internal"
}

// OpError is returned by every store operation.
type OpError struct {
	Op   string // Op is the failed operation.
	Kind Kind
	Lang string
	Rev  int64
	Err  error
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s [%s] %s/%d: %v", e.Op, e.Kind, e.Lang, e.Rev, e.Err)
}

func newOpError(op string, kind Kind, lang string, revID int64, err error) *OpError {
	return &OpError{
		Op:   op,
		Kind: kind,
		Lang: lang,
		Rev:  revID,
		Err:  err,
	}
}

func notFoundError(op, lang string, revID int64) error {
	return newOpError(op, KindNotFound, lang, revID, ErrRecordNotFound)
}
