package verify

import (
	"context"
	"errors"
	"fmt"

	"github.com/clarionhq/clarion/internal/model"
)

// ErrAllVerifiersExhausted marks a priority order that ran out of backends.
// It is fatal only for the affected claim: the claim's verdict degrades to
// NotEnoughEvidence and the report continues.
var ErrAllVerifiersExhausted = errors.New("all verifiers exhausted")

// Orchestrator dispatches one claim across the configured backends in
// strict priority order, stopping at the first that answers.
type Orchestrator struct {
	verifiers map[model.VerifierKind]Verifier
}

// NewOrchestrator registers the available backends. The priority order is
// supplied per call, not stored here: ordering is caller configuration.
func NewOrchestrator(verifiers ...Verifier) *Orchestrator {
	m := make(map[model.VerifierKind]Verifier, len(verifiers))
	for _, v := range verifiers {
		m[v.Kind()] = v
	}
	return &Orchestrator{verifiers: m}
}

// ValidateOrder rejects priority orders that could leave a claim without a
// terminal verdict: the order must be non-empty, reference only registered
// backends, and end with the local KB verifier, which never fails.
func (o *Orchestrator) ValidateOrder(order []model.VerifierKind) error {
	if len(order) == 0 {
		return fmt.Errorf("%w: empty priority order", ErrAllVerifiersExhausted)
	}
	if order[len(order)-1] != model.VerifierLocalKB {
		return fmt.Errorf("%w: priority order must end with %s", ErrAllVerifiersExhausted, model.VerifierLocalKB)
	}
	if _, ok := o.verifiers[model.VerifierLocalKB]; !ok {
		return fmt.Errorf("%w: %s verifier not registered", ErrAllVerifiersExhausted, model.VerifierLocalKB)
	}
	return nil
}

// VerifyClaim tries each verifier in order and builds the Verdict from the
// first that answers. Failures are appended to the attempted trail and the
// next backend is tried; they are never retried and never abort the claim.
func (o *Orchestrator) VerifyClaim(ctx context.Context, claim model.Claim, order []model.VerifierKind) model.Verdict {
	verdict := model.Verdict{
		Claim: claim,
		Label: model.LabelNotEnoughEvidence,
	}

	if err := o.ValidateOrder(order); err != nil {
		verdict.Attempted = append(verdict.Attempted, model.Attempt{
			Verifier: model.VerifierLocalKB,
			Failure:  err.Error(),
		})
		return verdict
	}

	for _, kind := range order {
		v, ok := o.verifiers[kind]
		if !ok {
			verdict.Attempted = append(verdict.Attempted, model.Attempt{
				Verifier: kind,
				Failure:  "not configured",
			})
			continue
		}

		finding, err := v.Verify(ctx, claim)
		if err != nil {
			verdict.Attempted = append(verdict.Attempted, model.Attempt{
				Verifier: kind,
				Failure:  failReason(err),
			})
			continue
		}

		verdict.Attempted = append(verdict.Attempted, model.Attempt{Verifier: kind})
		verdict.Label = finding.Label
		verdict.Evidence = finding.Evidence
		verdict.Similarity = finding.Similarity
		verdict.VerifierUsed = kind
		return verdict
	}

	// Unreachable with a valid order (local KB never fails), but a claim
	// must still get a terminal verdict if it happens.
	return verdict
}
