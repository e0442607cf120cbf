package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

func TestUpdateDocs_SanitizesScope(t *testing.T) {
	repo := newMemConvRepo()
	docs := &fakeDocs{ready: map[string]bool{"doc-1": true, "doc-2": true}}
	svc := NewConversationService(repo, docs)

	conv, err := svc.Create(context.Background(), &model.CreateConversationRequest{Title: "quarterly reports"})
	require.NoError(t, err)

	resp, err := svc.UpdateDocs(context.Background(), conv.ID, &model.UpdateDocsRequest{
		DocIDs: []string{"doc-1", "doc-unknown", "doc-2", "doc-1"},
	})
	require.NoError(t, err)

	// Valid ids kept in order and deduplicated; invalid ones reported.
	assert.Equal(t, []string{"doc-1", "doc-2"}, resp.DocIDs)
	assert.Equal(t, []string{"doc-unknown"}, resp.InvalidDocIDs)

	stored, err := svc.Get(context.Background(), conv.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1", "doc-2"}, stored.DocIDList())
}

func TestUpdateDocs_EmptyScopeAllowed(t *testing.T) {
	repo := newMemConvRepo()
	svc := NewConversationService(repo, &fakeDocs{ready: map[string]bool{}})

	conv, err := svc.Create(context.Background(), &model.CreateConversationRequest{})
	require.NoError(t, err)

	resp, err := svc.UpdateDocs(context.Background(), conv.ID, &model.UpdateDocsRequest{DocIDs: nil})
	require.NoError(t, err)
	assert.Empty(t, resp.DocIDs)
	assert.Empty(t, resp.InvalidDocIDs)
}

func TestDelete_SoftDeleteHidesConversation(t *testing.T) {
	repo := newMemConvRepo()
	svc := NewConversationService(repo, &fakeDocs{})

	conv, err := svc.Create(context.Background(), &model.CreateConversationRequest{Title: "to remove"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), conv.ID))

	_, err = svc.Get(context.Background(), conv.ID)
	assert.Error(t, err)

	// Deleting twice reports not found.
	assert.Error(t, svc.Delete(context.Background(), conv.ID))
}
