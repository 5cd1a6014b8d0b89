package piano

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDocumentParse   = errors.New("response is not well-formed XML")
	ErrShape           = errors.New("response does not match the expected envelope")
	ErrReconstruction  = errors.New("audio URL could not be reconstructed")
	ErrNotAcknowledged = errors.New("service did not acknowledge the request")
	ErrNotLoggedIn     = errors.New("no user session, call Login first")
)

// DocumentParseError is returned when the response text cannot be parsed as
// XML at all.
type DocumentParseError struct {
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("parse response document: %v", e.Err)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

func (e *DocumentParseError) Is(err error) bool { return err == ErrDocumentParse }

// ShapeError is returned when a well-formed document is missing one of the
// envelope levels a parser descends through. Path is the part of the envelope
// that was found, Missing the element that was expected next.
type ShapeError struct {
	Path    []string
	Missing string
}

func (e *ShapeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("unexpected response shape: missing root element %q", e.Missing)
	}
	return fmt.Sprintf("unexpected response shape: %s has no <%s> element", strings.Join(e.Path, "/"), e.Missing)
}

func (e *ShapeError) Is(err error) bool { return err == ErrShape }

// ReconstructionError is returned when a song's audio URL is too short to
// carry an encrypted tail or the tail fails to decrypt.
type ReconstructionError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ReconstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reconstruct audio URL: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("reconstruct audio URL: %s", e.Reason)
}

func (e *ReconstructionError) Unwrap() error { return e.Err }

func (e *ReconstructionError) Is(err error) bool { return err == ErrReconstruction }

// FaultError is an XML-RPC fault returned by the service in place of a
// result.
type FaultError struct {
	Code    string
	Message string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("FaultError(%s: %s)", e.Code, e.Message)
}

func (e *FaultError) Is(err error) bool {
	e2, ok := err.(*FaultError)
	return ok && e.Code == e2.Code
}
