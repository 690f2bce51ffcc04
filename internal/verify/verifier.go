// Package verify implements the claim-verification backends and the
// ordered-fallback orchestrator that dispatches across them.
package verify

import (
	"context"
	"errors"
	"fmt"

	"github.com/clarionhq/clarion/internal/model"
)

// Finding is the fragment a backend produces for one claim. The orchestrator
// turns it into a full Verdict.
type Finding struct {
	Label      model.Label
	Evidence   []model.Evidence
	Similarity float64 // Best claim/evidence agreement, 0-1
}

// Verifier is one interchangeable claim-verification backend. Verify returns
// either a Finding or a *VerifierError; NotEnoughEvidence is a valid Finding,
// not an error.
type Verifier interface {
	Kind() model.VerifierKind
	Verify(ctx context.Context, claim model.Claim) (*Finding, error)
}

// FailReason classifies why a backend could not answer
type FailReason string

const (
	FailUnavailable FailReason = "unavailable" // Network or auth failure
	FailTimeout     FailReason = "timeout"     // Bounded wait exceeded
)

// VerifierError is a typed service-level failure of one backend. The
// orchestrator recovers from it by falling through to the next verifier.
type VerifierError struct {
	Verifier model.VerifierKind
	Reason   FailReason
	Err      error
}

func (e *VerifierError) Error() string {
	return fmt.Sprintf("%s verifier %s: %v", e.Verifier, e.Reason, e.Err)
}

func (e *VerifierError) Unwrap() error { return e.Err }

func unavailable(kind model.VerifierKind, err error) *VerifierError {
	return &VerifierError{Verifier: kind, Reason: FailUnavailable, Err: err}
}

func timeout(kind model.VerifierKind, err error) *VerifierError {
	return &VerifierError{Verifier: kind, Reason: FailTimeout, Err: err}
}

// failReason extracts the diagnostic string recorded in a Verdict's
// attempted-verifier trail.
func failReason(err error) string {
	var verr *VerifierError
	if errors.As(err, &verr) {
		return string(verr.Reason)
	}
	return err.Error()
}
