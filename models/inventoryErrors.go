package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingAttribute  = errors.New("missing attribute")
	ErrAmbiguousQuery    = errors.New("ambiguous query")
	ErrSessionTerminated = errors.New("query session terminated")
)

const (
	AttributePrice       = "price"
	AttributeServiceDate = "service date"
)

// MissingAttributeError means a manufacturer feed key has no partner row in the
// price or service date feed.
type MissingAttributeError struct {
	ItemId    string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("item %q: %s: no %s entry", e.ItemId, ErrMissingAttribute, e.Attribute)
}

func (e *MissingAttributeError) Is(target error) bool {
	return target == ErrMissingAttribute
}

// AmbiguousQueryError is returned in strict matching mode when the phrase names
// more than one distinct manufacturer or type.
type AmbiguousQueryError struct {
	Field      string
	Candidates []string
}

func (e *AmbiguousQueryError) Error() string {
	return fmt.Sprintf("%s: more than one %s named (%s)", ErrAmbiguousQuery, e.Field, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousQueryError) Is(target error) bool {
	return target == ErrAmbiguousQuery
}

// SourceRowError points at a feed row that could not be interpreted.
type SourceRowError struct {
	Source string
	Line   int
	Reason string
}

func (e *SourceRowError) Error() string {
	return fmt.Sprintf("%s line %d: %s", e.Source, e.Line, e.Reason)
}
