package klingon

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySurface is returned when decomposition is asked to analyse "".
	ErrEmptySurface = errors.New("empty surface form")
	// ErrUnsupportedWordClass is returned for a class other than Noun or Verb.
	ErrUnsupportedWordClass = errors.New("unsupported word class")
)

// DiagnosticKind classifies a non-fatal parsing issue.
type DiagnosticKind int

const (
	// DiagUnknownPartOfSpeech: the base tag matched no abbreviation.
	DiagUnknownPartOfSpeech DiagnosticKind = iota + 1
	// DiagUnknownAttribute: an attribute token matched nothing.
	DiagUnknownAttribute
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagUnknownPartOfSpeech:
		return "unrecognised part of speech"
	case DiagUnknownAttribute:
		return "unrecognised attribute"
	default:
		return "unknown diagnostic"
	}
}

// Diagnostic reports a token the parser skipped. The descriptor it was
// returned with is still usable; the offending field keeps its default.
type Diagnostic struct {
	Kind DiagnosticKind
	// Entry is the entry name being parsed.
	Entry string
	// Token is the raw text that was not recognised.
	Token string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("{%s}: %s: %q", d.Entry, d.Kind, d.Token)
}
