// Package errs defines the three error kinds spec §7 distinguishes —
// parsing, extraction, and metadata — as small typed wrappers with a
// Kind() accessor and errors.Is/As support, following the teacher's
// error_wrapper.go ErrorType-tagged wrapping pattern generalized from
// string-matching to real sentinel types.
package errs

import (
	"errors"
	"fmt"
)

// ErrNoMetadata is the sentinel cause for a total metadata-extraction miss
// under WithStrictMetadata(true).
var ErrNoMetadata = errors.New("no metadata recovered")

// Kind categorizes what stage of the pipeline an error came from.
type Kind string

const (
	KindParsing   Kind = "parsing"
	KindExtraction Kind = "extraction"
	KindMetadata  Kind = "metadata"
)

// Error is a stage-tagged wrapper around an underlying cause.
type Error struct {
	kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s: %v", e.kind, e.Op, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Kind returns the error's stage tag.
func (e *Error) Kind() Kind { return e.kind }

// Parsing wraps cause as a document-parsing failure — malformed HTML,
// unsupported encoding, or an empty input, per original_source's
// ParsingError.
func Parsing(op, message string, cause error) error {
	return &Error{kind: KindParsing, Op: op, Message: message, Cause: cause}
}

// Extraction wraps cause as a content-extraction failure — the retry
// ladder exhausted every flag combination and no attempt produced any
// article text, per original_source's ExtractionError.
func Extraction(op, message string, cause error) error {
	return &Error{kind: KindExtraction, Op: op, Message: message, Cause: cause}
}

// Metadata wraps cause as a metadata-extraction failure. Per spec §7 these
// are swallowed by default (Parse proceeds with whatever fields it did
// recover) and only surfaced when WithStrictMetadata(true) is set,
// mirroring original_source's MetadataExtractionError.
func Metadata(op, message string, cause error) error {
	return &Error{kind: KindMetadata, Op: op, Message: message, Cause: cause}
}

// Is reports whether err is an *Error of kind k, supporting
// errors.Is(err, errs.KindParsing)-style checks via a small adapter:
// callers compare with errors.As and then e.Kind() == k directly, or use
// this helper for a one-line check.
func Is(err error, k Kind) bool {
	var e *Error
	return asError(err, &e) && e.kind == k
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
