package rag

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

type fakeEmbedder struct {
	calls int
	err   error
}

func (f *fakeEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type searchCall struct {
	limit  int
	docIDs []string
}

type fakeSearcher struct {
	calls []searchCall
	// hitsByDoc returns canned hits per single-document call; the scoped
	// merge call returns the union.
	hitsByDoc map[string][]model.RetrievalHit
	err       error
}

func (f *fakeSearcher) SearchTextAndTables(_ context.Context, _ []float32, limit int, docIDs []string) ([]model.RetrievalHit, error) {
	f.calls = append(f.calls, searchCall{limit: limit, docIDs: docIDs})
	if f.err != nil {
		return nil, f.err
	}
	var out []model.RetrievalHit
	if len(docIDs) == 0 {
		for _, hits := range f.hitsByDoc {
			out = append(out, hits...)
		}
	} else {
		for _, id := range docIDs {
			out = append(out, f.hitsByDoc[id]...)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func hit(id, doc, content string, score float64) model.RetrievalHit {
	return model.RetrievalHit{PointID: id, DocID: doc, Content: content, Modality: model.ModalityText, Score: score}
}

func TestRetrieve_SingleDocScopeIssuesOneCall(t *testing.T) {
	searcher := &fakeSearcher{hitsByDoc: map[string][]model.RetrievalHit{
		"doc1": {hit("p1", "doc1", "a", 0.9)},
	}}
	r := NewRetriever(&fakeEmbedder{}, searcher)

	res, err := r.Retrieve(context.Background(), "q", []string{"doc1"}, 5)
	require.NoError(t, err)

	require.Len(t, searcher.calls, 1)
	assert.Equal(t, []string{"doc1"}, searcher.calls[0].docIDs)
	assert.Equal(t, 5, searcher.calls[0].limit)
	assert.Equal(t, []string{"doc1"}, res.ScopeDocIDs)
}

func TestRetrieve_BalancedPerDocFloor(t *testing.T) {
	// Scope of 4 documents with K=4: the naive share would be 1 per doc,
	// but at least 3 hits must be attempted per document.
	docs := []string{"d1", "d2", "d3", "d4"}
	searcher := &fakeSearcher{hitsByDoc: map[string][]model.RetrievalHit{}}
	for i, d := range docs {
		searcher.hitsByDoc[d] = []model.RetrievalHit{hit(fmt.Sprintf("p%d", i), d, "c"+d, 0.5)}
	}
	r := NewRetriever(&fakeEmbedder{}, searcher)

	_, err := r.Retrieve(context.Background(), "q", docs, 4)
	require.NoError(t, err)

	// One call per document plus the scoped merge call.
	require.Len(t, searcher.calls, 5)
	for i := 0; i < 4; i++ {
		assert.Equal(t, []string{docs[i]}, searcher.calls[i].docIDs)
		assert.GreaterOrEqual(t, searcher.calls[i].limit, 3)
	}
	assert.Equal(t, docs, searcher.calls[4].docIDs)
	assert.Equal(t, 4, searcher.calls[4].limit)
}

func TestRetrieve_DedupKeepsBestScore(t *testing.T) {
	// The same point comes back from the per-doc call and the scoped call
	// with different scores; the best one must survive, ranked first.
	searcher := &fakeSearcher{hitsByDoc: map[string][]model.RetrievalHit{
		"d1": {hit("shared", "d1", "same", 0.4), hit("other", "d1", "other", 0.6)},
		"d2": {hit("shared", "d2", "same", 0.9)},
	}}
	r := NewRetriever(&fakeEmbedder{}, searcher)

	res, err := r.Retrieve(context.Background(), "q", []string{"d1", "d2"}, 5)
	require.NoError(t, err)

	var shared *model.RetrievalHit
	for i := range res.Hits {
		if res.Hits[i].PointID == "shared" {
			shared = &res.Hits[i]
		}
	}
	require.NotNil(t, shared)
	assert.InDelta(t, 0.9, shared.Score, 1e-9)
	assert.Equal(t, "shared", res.Hits[0].PointID)
}

func TestRetrieve_ContentDuplicatesCollapsed(t *testing.T) {
	// Distinct point ids, identical (modality, content): the second pass
	// must collapse them.
	searcher := &fakeSearcher{hitsByDoc: map[string][]model.RetrievalHit{
		"d1": {hit("p1", "d1", "same text", 0.9), hit("p2", "d1", "same text", 0.8)},
	}}
	r := NewRetriever(&fakeEmbedder{}, searcher)

	res, err := r.Retrieve(context.Background(), "q", []string{"d1"}, 5)
	require.NoError(t, err)
	require.Len(t, res.Hits, 1)
	assert.Equal(t, "p1", res.Hits[0].PointID)
}

func TestRetrieve_DominantDocumentNarrowing(t *testing.T) {
	// No explicit scope: d2 dominates by aggregate score weight, so the
	// final hits must all belong to d2.
	searcher := &fakeSearcher{hitsByDoc: map[string][]model.RetrievalHit{
		"d1": {hit("a", "d1", "a", 0.5)},
		"d2": {hit("b", "d2", "b", 0.45), hit("c", "d2", "c", 0.4)},
	}}
	r := NewRetriever(&fakeEmbedder{}, searcher)

	res, err := r.Retrieve(context.Background(), "q", nil, 5)
	require.NoError(t, err)

	assert.Equal(t, "d2", res.DominantDocID)
	assert.Equal(t, []string{"d2"}, res.ScopeDocIDs)
	require.NotEmpty(t, res.Hits)
	for _, h := range res.Hits {
		assert.Equal(t, "d2", h.DocID)
	}
}

func TestRetrieve_EmptyResultIsNotAnError(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{}, &fakeSearcher{hitsByDoc: map[string][]model.RetrievalHit{}})

	res, err := r.Retrieve(context.Background(), "q", nil, 5)
	require.NoError(t, err)
	assert.Empty(t, res.Hits)
	assert.Empty(t, res.DominantDocID)
}

func TestRetrieve_EmbeddingFailurePropagates(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{err: errors.New("service down")}, &fakeSearcher{})

	_, err := r.Retrieve(context.Background(), "q", nil, 5)
	var embErr *EmbeddingError
	require.ErrorAs(t, err, &embErr)
}

func TestRetrieve_SearchFailurePropagates(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{}, &fakeSearcher{err: errors.New("unreachable")})

	_, err := r.Retrieve(context.Background(), "q", []string{"d1", "d2"}, 5)
	var retErr *RetrievalError
	require.ErrorAs(t, err, &retErr)
}

func TestRetrieve_EmbedsQuestionExactlyOnce(t *testing.T) {
	embedder := &fakeEmbedder{}
	searcher := &fakeSearcher{hitsByDoc: map[string][]model.RetrievalHit{
		"d1": {hit("a", "d1", "a", 0.5)},
		"d2": {hit("b", "d2", "b", 0.4)},
	}}
	r := NewRetriever(embedder, searcher)

	_, err := r.Retrieve(context.Background(), "q", []string{"d1", "d2"}, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, embedder.calls)
}
