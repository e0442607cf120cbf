// Package model defines data structures for the multimodal RAG engine.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentStatus represents the lifecycle state of an ingested document.
type DocumentStatus string

const (
	StatusPending    DocumentStatus = "pending"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

// Document is an ingested PDF. It is owned by the ingestion pipeline;
// the query engine only ever reads documents with status "ready".
type Document struct {
	ID               string            `gorm:"type:uuid;primaryKey" json:"id"`
	OriginalFilename string            `gorm:"size:512" json:"original_filename"`
	StorageKey       string            `gorm:"size:1024;not null" json:"storage_key"`
	Status           DocumentStatus    `gorm:"size:32;default:'pending';index" json:"status"`
	Meta             datatypes.JSONMap `json:"meta,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssetKind is the kind of extracted asset.
type AssetKind string

const (
	KindTable AssetKind = "table"
	KindImage AssetKind = "image"
)

// Asset is a table (CSV) or image extracted from a document during
// ingestion. Read-only to the query engine.
type Asset struct {
	ID         string            `gorm:"type:uuid;primaryKey" json:"id"`
	DocumentID string            `gorm:"type:uuid;index;not null" json:"document_id"`
	Kind       AssetKind         `gorm:"size:16;not null" json:"kind"`
	Page       *int              `json:"page,omitempty"`
	StorageKey string            `gorm:"size:1024;not null" json:"storage_key"`
	Meta       datatypes.JSONMap `json:"meta,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Document *Document `gorm:"foreignKey:DocumentID" json:"-"`
}

// AssetRef is a resolved asset reference offered to the caller and to the
// language model: the storage locator plus a human-readable title.
type AssetRef struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}
