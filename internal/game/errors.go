package game

import (
	"errors"
	"fmt"
)

var (
	ErrDeckFull          = errors.New("deck is full")
	ErrNotAllowed        = errors.New("card not allowed in this format")
	ErrCopyLimitExceeded = errors.New("too many copies")
)

// RejectError reports why AddCard turned a card away. Reason is one of the
// sentinel errors above; Max is set for ErrCopyLimitExceeded.
type RejectError struct {
	Card   string
	Reason error
	Max    int
}

func (e *RejectError) Error() string {
	switch e.Reason {
	case ErrDeckFull:
		return fmt.Sprintf("deck is full (%d cards)", MaxDeckSize)
	case ErrNotAllowed:
		return fmt.Sprintf("card %s not allowed in this format", e.Card)
	case ErrCopyLimitExceeded:
		return fmt.Sprintf("too many copies of %s (max %d)", e.Card, e.Max)
	}
	return fmt.Sprintf("%s: %v", e.Card, e.Reason)
}

func (e *RejectError) Unwrap() error { return e.Reason }
