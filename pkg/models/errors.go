package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAmbiguousHash = errors.New("hash matches more than one row")
	ErrDuplicateHash = errors.New("hash already exists")
	ErrInvalidAlert  = errors.New("invalid alert")
)

type FetchErrorKind string

const (
	FetchErrorTransport FetchErrorKind = "transport"
	FetchErrorStatus    FetchErrorKind = "status"
	FetchErrorMalformed FetchErrorKind = "malformed"
)

// FetchError is any failure to obtain a quote for one symbol.
type FetchError struct {
	Symbol string
	Kind   FetchErrorKind
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch price for %s (%s): %v", e.Symbol, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StoreError is any failure of a backend read, write or delete.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

type AmbiguousHashError struct {
	Hash string
	IDs  []RowID
}

func (e *AmbiguousHashError) Error() string {
	return fmt.Sprintf("hash %s matches %d rows %v", e.Hash, len(e.IDs), e.IDs)
}

func (e *AmbiguousHashError) Unwrap() error {
	return ErrAmbiguousHash
}
