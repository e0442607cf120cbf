package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

func candidateFixture() []model.AttachmentCandidate {
	return []model.AttachmentCandidate{
		{Kind: model.KindImage, Path: "doc1/images/a.png", Title: "img a"},
		{Kind: model.KindTable, Path: "doc1/tables/t1.csv", Title: "tab 1"},
		{Kind: model.KindImage, Path: "doc2/images/b.png", Title: "img b"},
		{Kind: model.KindTable, Path: "doc2/tables/t2.csv", Title: "tab 2"},
	}
}

func TestSelectAttachments_DefaultKeepsTablesOnly(t *testing.T) {
	out := SelectAttachments(model.Intent{AllowTable: true, AllowImage: true}, candidateFixture())

	require.Len(t, out, 2)
	for _, c := range out {
		assert.Equal(t, model.KindTable, c.Kind)
	}
}

func TestSelectAttachments_WantAllImagesAsymmetry(t *testing.T) {
	// Every deduplicated image in scope, zero tables from the single-best path.
	intent := model.Intent{AllowImage: true, WantAllImages: true}
	out := SelectAttachments(intent, candidateFixture())

	require.Len(t, out, 2)
	for _, c := range out {
		assert.Equal(t, model.KindImage, c.Kind)
	}
}

func TestSelectAttachments_WantAllBoth(t *testing.T) {
	intent := model.Intent{AllowTable: true, AllowImage: true, WantAllImages: true, WantAllTables: true}
	out := SelectAttachments(intent, candidateFixture())

	require.Len(t, out, 4)
	// Exhaustive listing keeps candidate order per kind, images first.
	assert.Equal(t, model.KindImage, out[0].Kind)
	assert.Equal(t, model.KindImage, out[1].Kind)
	assert.Equal(t, model.KindTable, out[2].Kind)
	assert.Equal(t, model.KindTable, out[3].Kind)
}

func TestSelectAttachments_DeduplicatesByKindAndPath(t *testing.T) {
	dup := append(candidateFixture(), model.AttachmentCandidate{
		Kind: model.KindTable, Path: "doc1/tables/t1.csv", Title: "tab 1 again",
	})
	out := SelectAttachments(model.Intent{AllowTable: true}, dup)

	require.Len(t, out, 2)
	assert.Equal(t, "tab 1", out[0].Title)
}

func TestSelectAttachments_EmptyInput(t *testing.T) {
	out := SelectAttachments(model.Intent{WantAllImages: true}, nil)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}
