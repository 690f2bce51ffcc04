package verify

import (
	"context"

	"github.com/clarionhq/clarion/internal/kb"
	"github.com/clarionhq/clarion/internal/model"
)

const localTopK = 5
const localMaxEvidence = 3

// LocalKB verifies claims against the embedded knowledge base. It is always
// available: it never returns a service error, only a Finding, which makes
// it the guaranteed terminal fallback in every priority order.
type LocalKB struct {
	store         *kb.KB
	minSimilarity float64
}

// NewLocalKB creates the offline verifier. minSimilarity is the retrieval
// floor below which the best passage is ignored entirely.
func NewLocalKB(store *kb.KB, minSimilarity float64) *LocalKB {
	return &LocalKB{store: store, minSimilarity: minSimilarity}
}

// Kind implements Verifier.
func (v *LocalKB) Kind() model.VerifierKind { return model.VerifierLocalKB }

// Verify retrieves the most similar passages and maps their polarity to a
// verdict. A claim with no passage above the floor is NotEnoughEvidence.
func (v *LocalKB) Verify(_ context.Context, claim model.Claim) (*Finding, error) {
	matches := v.store.Search(claim.Text, localTopK)
	if len(matches) == 0 || matches[0].Score < v.minSimilarity {
		return &Finding{Label: model.LabelNotEnoughEvidence}, nil
	}

	// Aggregate agreement over the passages above the retrieval floor
	combined := agreement{}
	var evidence []model.Evidence
	for _, m := range matches {
		if m.Score < v.minSimilarity {
			break
		}
		a := assessAgreement(claim.Text, m.Passage.Text)
		if a.Similarity > combined.Similarity {
			combined.Similarity = a.Similarity
		}
		combined.Contradiction = combined.Contradiction || a.Contradiction
		combined.EntityMatch = combined.EntityMatch || a.EntityMatch
		if len(evidence) < localMaxEvidence {
			evidence = append(evidence, model.Evidence{
				Snippet:  m.Passage.Text,
				Source:   m.Passage.ID,
				Verifier: model.VerifierLocalKB,
			})
		}
	}

	return &Finding{
		Label:      verdictFor(combined),
		Evidence:   evidence,
		Similarity: combined.Similarity,
	}, nil
}
