package koine

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLemma is returned when a LemmaID does not exist in the store.
	ErrUnknownLemma = errors.New("unknown lemma id")
)

// ErrUnsupportedTagCombination indicates that generation was requested for a
// TagSet the lemma's paradigm cannot produce (e.g. a vocative on a paradigm
// without one). Recoverable: the caller picks another TagSet or reports.
type ErrUnsupportedTagCombination struct {
	Lemma LemmaID
	Tags  TagSet
}

func (e *ErrUnsupportedTagCombination) Error() string {
	return fmt.Sprintf("unsupported tag combination %s for lemma %d", e.Tags, e.Lemma)
}
