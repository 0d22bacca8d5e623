// Package typeid issues the prefixed, time-sortable IDs used for shapes,
// sessions and clients.
package typeid

import (
	"errors"
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixShape   = "shape"
	PrefixSession = "sess"
	PrefixClient  = "client"
)

var ErrInvalidID = errors.New("invalid id")

func New(prefix string) string {
	return typeid.MustGenerate(prefix).String()
}

func NewShapeID() string   { return New(PrefixShape) }
func NewSessionID() string { return New(PrefixSession) }
func NewClientID() string  { return New(PrefixClient) }

// Validate checks that id parses and carries the wanted prefix.
func Validate(id, prefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	if got := parsed.Prefix(); got != prefix {
		return fmt.Errorf("%w %q: prefix %q, want %q", ErrInvalidID, id, got, prefix)
	}
	return nil
}

// ValidateSession checks a session ID taken from a URL.
func ValidateSession(id string) error {
	return Validate(id, PrefixSession)
}
