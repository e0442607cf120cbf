package model

// Modality tags what a retrieval hit carries. Exhaustive by construction:
// hits only ever come out of the two vector collections, which index text,
// table rows and images.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityTable Modality = "table"
	ModalityImage Modality = "image"
)

// TableData is the structured form of an indexed table chunk: header plus
// the rows that were embedded with it.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// RetrievalHit is one ranked result from the vector store. It exists only
// for the duration of a query; the assistant message stores a snapshot of
// the ContextPoint projection, never the hit itself.
type RetrievalHit struct {
	// PointID is the vector store's native point id when available.
	// Deduplication prefers it over the (modality, content) fallback.
	PointID string

	Content  string
	Modality Modality
	DocID    string
	Page     int
	Score    float64

	// Modality-specific metadata.
	Table     *TableData // table hits
	CSVPath   string     // table hits: locator of the source CSV
	ImagePath string     // image hits: locator of the image blob
}

// DedupKey identifies a hit for merge deduplication: the native point id
// when the store provided one, otherwise modality plus content.
func (h *RetrievalHit) DedupKey() string {
	if h.PointID != "" {
		return h.PointID
	}
	return string(h.Modality) + "|" + h.Content
}

// ContentKey collapses exact duplicates regardless of point identity.
func (h *RetrievalHit) ContentKey() string {
	return string(h.Modality) + "|" + h.Content
}

// ContextPoint is the UI-facing projection of a hit, persisted inside the
// assistant message's extra payload and echoed in the ask response.
type ContextPoint struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// Intent is the modality-allowance decision for one question. Computed
// fresh per turn, never stored beyond the snapshot in Message.Extra.
type Intent struct {
	AllowTable    bool `json:"allow_table"`
	AllowImage    bool `json:"allow_image"`
	WantAllTables bool `json:"want_all_tables"`
	WantAllImages bool `json:"want_all_images"`
}

// WantsAll reports whether either exhaustive-listing flag is set.
func (i Intent) WantsAll() bool { return i.WantAllTables || i.WantAllImages }

// AttachmentCandidate is an attachment offered to the policy engine.
// Uniqueness key is (Kind, Path).
type AttachmentCandidate struct {
	Kind  AssetKind `json:"kind"`
	Path  string    `json:"path"`
	Title string    `json:"title"`
}

// DuplicateGroup reports table assets that collapsed to the same content
// signature. The representative is what gets attached; the duplicates are
// reported, not silently dropped.
type DuplicateGroup struct {
	Representative AssetRef   `json:"representative"`
	Duplicates     []AssetRef `json:"duplicates"`
}
