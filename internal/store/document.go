package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// DocumentStore reads ingested documents and their extracted assets.
type DocumentStore struct {
	db *gorm.DB
}

// NewDocumentStore creates a new document store.
func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// List returns documents, most recent first.
func (s *DocumentStore) List(ctx context.Context, limit, offset int) ([]model.Document, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Document{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	var docs []model.Document
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&docs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, total, nil
}

// Get returns one document by id.
func (s *DocumentStore) Get(ctx context.Context, id string) (*model.Document, error) {
	var doc model.Document
	err := s.db.WithContext(ctx).First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadyIDs returns the set of document ids whose ingestion finished.
// Query scopes are sanitized against this set.
func (s *DocumentStore) ReadyIDs(ctx context.Context) (map[string]bool, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&model.Document{}).
		Where("status = ?", model.StatusReady).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ready documents: %w", err)
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ListAssets lists extracted assets of one kind across a document scope,
// ordered by the scope's document order and then by page. Titles carry the
// source filename and page so the language model can cite them.
func (s *DocumentStore) ListAssets(ctx context.Context, docIDs []string, kind model.AssetKind, limit int) ([]model.AssetRef, error) {
	if len(docIDs) == 0 {
		return nil, nil
	}

	var assets []model.Asset
	err := s.db.WithContext(ctx).
		Preload("Document").
		Where("document_id IN ? AND kind = ?", docIDs, kind).
		Order("page ASC NULLS LAST, created_at ASC").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	order := make(map[string]int, len(docIDs))
	for i, id := range docIDs {
		order[id] = i
	}
	byDoc := make([][]model.Asset, len(docIDs))
	for _, a := range assets {
		i, ok := order[a.DocumentID]
		if !ok {
			continue
		}
		byDoc[i] = append(byDoc[i], a)
	}

	var refs []model.AssetRef
	for _, group := range byDoc {
		for _, a := range group {
			refs = append(refs, model.AssetRef{
				Path:  a.StorageKey,
				Title: assetTitle(a),
			})
			if limit > 0 && len(refs) >= limit {
				return refs, nil
			}
		}
	}
	return refs, nil
}

func assetTitle(a model.Asset) string {
	name := "document"
	if a.Document != nil && a.Document.OriginalFilename != "" {
		name = a.Document.OriginalFilename
	}
	title := fmt.Sprintf("%s · %s", name, a.Kind)
	if a.Page != nil {
		title = fmt.Sprintf("%s · page %d", title, *a.Page)
	}
	return title
}
