package rag

import (
	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// SelectAttachments filters attachment candidates according to the intent.
//
// When either want-all flag is set the result is the exhaustive, deduplicated
// union of all candidates of the requested kind(s), in candidate order, not
// a ranked top-N. Otherwise only table candidates pass through: single-best
// images are surfaced separately by the orchestrator when images were
// allowed. The asymmetry is deliberate; "give me everything" bypasses the
// single-best narrowing entirely.
func SelectAttachments(intent model.Intent, candidates []model.AttachmentCandidate) []model.AttachmentCandidate {
	out := []model.AttachmentCandidate{}
	seen := make(map[[2]string]bool)

	add := func(c model.AttachmentCandidate) {
		key := [2]string{string(c.Kind), c.Path}
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, c)
	}

	if intent.WantAllImages {
		for _, c := range candidates {
			if c.Kind == model.KindImage {
				add(c)
			}
		}
	}
	if intent.WantAllTables {
		for _, c := range candidates {
			if c.Kind == model.KindTable {
				add(c)
			}
		}
	}
	if intent.WantsAll() {
		return out
	}

	for _, c := range candidates {
		if c.Kind == model.KindTable {
			add(c)
		}
	}
	return out
}
