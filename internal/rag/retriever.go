package rag

import (
	"context"
	"sort"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// TextEmbedder produces query vectors in the compact text embedding space.
type TextEmbedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// TextSearcher queries the combined text/table collection. An empty docIDs
// slice means no document filter.
type TextSearcher interface {
	SearchTextAndTables(ctx context.Context, vector []float32, limit int, docIDs []string) ([]model.RetrievalHit, error)
}

// minPerDocHits is the per-document recall floor when a multi-document
// scope is balanced across retrieval calls.
const minPerDocHits = 3

// maxSearchLimit caps any single retrieval call.
const maxSearchLimit = 50

// RetrievalResult is the outcome of one balanced retrieval pass.
type RetrievalResult struct {
	Hits []model.RetrievalHit

	// DominantDocID is the document with the highest score-weighted hit
	// mass. Empty when nothing was found.
	DominantDocID string

	// ScopeDocIDs is the effective scope of the final hits: the explicit
	// scope when one was given, otherwise the dominant document.
	ScopeDocIDs []string
}

// Retriever performs balanced, deduplicated semantic retrieval across one
// or many documents.
type Retriever struct {
	embedder TextEmbedder
	searcher TextSearcher
}

// NewRetriever creates a retriever over the given gateways.
func NewRetriever(embedder TextEmbedder, searcher TextSearcher) *Retriever {
	return &Retriever{embedder: embedder, searcher: searcher}
}

// Retrieve embeds the question once and runs the balanced retrieval
// algorithm. docIDs is the explicit scope; nil or empty means the scope is
// inferred, in which case the final hits are narrowed to the dominant
// document so a single answer never blends unrelated documents.
//
// Gateway failures are wrapped as EmbeddingError/RetrievalError and not
// retried; an empty result is a normal outcome.
func (r *Retriever) Retrieve(ctx context.Context, question string, docIDs []string, topK int) (*RetrievalResult, error) {
	if topK < 1 {
		topK = 1
	}
	if topK > maxSearchLimit {
		topK = maxSearchLimit
	}

	vector, err := r.embedder.EmbedText(ctx, question)
	if err != nil {
		return nil, &EmbeddingError{Err: err}
	}

	var hits []model.RetrievalHit
	if len(docIDs) > 1 {
		hits, err = r.searchBalanced(ctx, vector, docIDs, topK)
		if err != nil {
			return nil, err
		}
		// The merged set may be up to scope_size*perDoc + topK large;
		// keep twice the requested budget after ranking.
		limit := topK * 2
		if limit > maxSearchLimit {
			limit = maxSearchLimit
		}
		if len(hits) > limit {
			hits = hits[:limit]
		}
	} else {
		hits, err = r.searcher.SearchTextAndTables(ctx, vector, topK, docIDs)
		if err != nil {
			return nil, &RetrievalError{Err: err}
		}
	}

	dominant := dominantDocID(hits)

	scope := docIDs
	if len(docIDs) == 0 && dominant != "" {
		scope = []string{dominant}
		hits, err = r.searcher.SearchTextAndTables(ctx, vector, topK, scope)
		if err != nil {
			return nil, &RetrievalError{Err: err}
		}
	}

	return &RetrievalResult{
		Hits:          collapseContentDuplicates(hits),
		DominantDocID: dominant,
		ScopeDocIDs:   scope,
	}, nil
}

// searchBalanced issues one capped call per document plus one call across
// the whole scope to preserve cross-document ranking signal, then merges.
func (r *Retriever) searchBalanced(ctx context.Context, vector []float32, docIDs []string, topK int) ([]model.RetrievalHit, error) {
	perDoc := (topK + len(docIDs) - 1) / len(docIDs)
	if perDoc < minPerDocHits {
		perDoc = minPerDocHits
	}

	var merged []model.RetrievalHit
	for _, id := range docIDs {
		hits, err := r.searcher.SearchTextAndTables(ctx, vector, perDoc, []string{id})
		if err != nil {
			return nil, &RetrievalError{Err: err}
		}
		merged = append(merged, hits...)
	}

	hits, err := r.searcher.SearchTextAndTables(ctx, vector, topK, docIDs)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}
	merged = append(merged, hits...)

	// Dedup by stable identity, best score wins, then rank.
	best := make(map[string]model.RetrievalHit)
	var order []string
	for _, h := range merged {
		key := h.DedupKey()
		prev, ok := best[key]
		if !ok {
			order = append(order, key)
			best[key] = h
			continue
		}
		if h.Score > prev.Score {
			best[key] = h
		}
	}

	out := make([]model.RetrievalHit, 0, len(best))
	for _, key := range order {
		out = append(out, best[key])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

// dominantDocID aggregates per-document retrieval weight, using the hit's
// score when present and 1 otherwise.
func dominantDocID(hits []model.RetrievalHit) string {
	weights := make(map[string]float64)
	var order []string
	for _, h := range hits {
		if h.DocID == "" {
			continue
		}
		if _, ok := weights[h.DocID]; !ok {
			order = append(order, h.DocID)
		}
		w := h.Score
		if w == 0 {
			w = 1
		}
		weights[h.DocID] += w
	}

	best := ""
	bestW := 0.0
	for _, id := range order {
		if weights[id] > bestW {
			best = id
			bestW = weights[id]
		}
	}
	return best
}

// collapseContentDuplicates removes exact (modality, content) duplicates,
// first seen wins. Defends against the expanded-scope call reintroducing a
// duplicate under a different point id.
func collapseContentDuplicates(hits []model.RetrievalHit) []model.RetrievalHit {
	seen := make(map[string]bool)
	out := make([]model.RetrievalHit, 0, len(hits))
	for _, h := range hits {
		key := h.ContentKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}
