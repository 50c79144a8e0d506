package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrSpotNotFound         = errors.New("spot not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrSpotAlreadyReserved  = errors.New("spot already reserved")
	ErrSpotAlreadyExists    = errors.New("spot already exists")
	ErrRequestInProgress    = errors.New("request with the same idempotency key is in progress")
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidTicketKind    = errors.New("invalid ticket kind")
)

// SpotsError 帶出造成失敗的座位名稱，errors.Is 會比對到 Err
type SpotsError struct {
	Err   error
	Names []string
}

func NewSpotsError(err error, names []string) *SpotsError {
	return &SpotsError{Err: err, Names: names}
}

func (e *SpotsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(e.Names, ", "))
}

func (e *SpotsError) Unwrap() error {
	return e.Err
}
