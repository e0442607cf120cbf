package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// MultimodalEmbedder produces query vectors in the image embedding space.
// The two spaces have different dimensionality; callers must not mix them.
type MultimodalEmbedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// ImageSearcher queries the image collection.
type ImageSearcher interface {
	SearchImages(ctx context.Context, vector []float32, limit int, docIDs []string) ([]model.RetrievalHit, error)
}

// AssetLister lists extracted assets for a document scope, ordered by the
// scope's document order then by page.
type AssetLister interface {
	ListAssets(ctx context.Context, docIDs []string, kind model.AssetKind, limit int) ([]model.AssetRef, error)
}

// BlobFetcher fetches raw asset bytes by storage locator.
type BlobFetcher interface {
	Get(ctx context.Context, path string) ([]byte, error)
}

// SignatureCache memoizes table content signatures by storage locator.
// Implementations must be safe for a nil receiver check at the call site;
// a nil cache disables memoization.
type SignatureCache interface {
	GetSignature(ctx context.Context, path string) (string, bool)
	SetSignature(ctx context.Context, path, signature string)
}

// ResolverConfig bounds what the resolver feeds to the language model.
type ResolverConfig struct {
	ImagesLimit  int // exhaustive image listing cap
	TablesLimit  int // exhaustive table listing cap
	PreviewRows  int // data rows per table preview
	PreviewChars int // character budget per table preview
}

// AttachmentResolver turns retrieval results and asset listings into
// concrete attachment candidates, deduplicating tables by content.
type AttachmentResolver struct {
	embedder MultimodalEmbedder
	images   ImageSearcher
	assets   AssetLister
	blobs    BlobFetcher
	cache    SignatureCache
	cfg      ResolverConfig
}

// NewAttachmentResolver creates a resolver; cache may be nil.
func NewAttachmentResolver(
	embedder MultimodalEmbedder,
	images ImageSearcher,
	assets AssetLister,
	blobs BlobFetcher,
	cache SignatureCache,
	cfg ResolverConfig,
) *AttachmentResolver {
	if cfg.ImagesLimit <= 0 {
		cfg.ImagesLimit = 30
	}
	if cfg.TablesLimit <= 0 {
		cfg.TablesLimit = 30
	}
	if cfg.PreviewRows <= 0 {
		cfg.PreviewRows = 20
	}
	if cfg.PreviewChars <= 0 {
		cfg.PreviewChars = 4000
	}
	return &AttachmentResolver{embedder: embedder, images: images, assets: assets, blobs: blobs, cache: cache, cfg: cfg}
}

// ImageResolution is the outcome of the image strategy for one turn.
type ImageResolution struct {
	Refs      []model.AssetRef
	Bytes     [][]byte // downloaded image payloads, parallel to Titles
	Titles    []string // catalog lines for the prompt
	FirstPath string   // backward-compat single locator
}

// ResolveImages picks the image strategy by intent: exhaustive listing when
// all images were requested, otherwise a single semantic best match in the
// image embedding space. Blob failures are absorbed per image.
func (r *AttachmentResolver) ResolveImages(ctx context.Context, question string, docIDs []string, intent model.Intent) (*ImageResolution, error) {
	res := &ImageResolution{}
	if len(docIDs) == 0 || !intent.AllowImage {
		return res, nil
	}

	if intent.WantAllImages {
		refs, err := r.assets.ListAssets(ctx, docIDs, model.KindImage, r.cfg.ImagesLimit)
		if err != nil {
			return nil, &RetrievalError{Err: err}
		}
		for _, ref := range refs {
			data, err := r.blobs.Get(ctx, ref.Path)
			if err != nil {
				continue
			}
			res.Refs = append(res.Refs, ref)
			res.Bytes = append(res.Bytes, data)
			res.Titles = append(res.Titles, fmt.Sprintf("IMAGE %d: %s", len(res.Titles)+1, ref.Title))
		}
		if len(refs) > 0 {
			res.FirstPath = refs[0].Path
		}
		return res, nil
	}

	vector, err := r.embedder.EmbedText(ctx, question)
	if err != nil {
		return nil, &EmbeddingError{Err: err}
	}
	hits, err := r.images.SearchImages(ctx, vector, 1, docIDs)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}
	if len(hits) == 0 || hits[0].ImagePath == "" {
		return res, nil
	}

	res.FirstPath = hits[0].ImagePath
	if data, err := r.blobs.Get(ctx, hits[0].ImagePath); err == nil {
		res.Bytes = append(res.Bytes, data)
	}
	return res, nil
}

// TableResolution is the outcome of the exhaustive table strategy.
type TableResolution struct {
	Representatives []model.AssetRef
	Duplicates      []model.DuplicateGroup
	Catalog         string // preview block for the prompt
}

// ResolveAllTables lists every table asset in scope, groups them by content
// signature and renders bounded previews of the representatives. Only used
// when the intent asked for all tables.
func (r *AttachmentResolver) ResolveAllTables(ctx context.Context, docIDs []string) (*TableResolution, error) {
	refs, err := r.assets.ListAssets(ctx, docIDs, model.KindTable, r.cfg.TablesLimit)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}

	unique, groups := r.DedupTablesByContent(ctx, refs)
	if len(unique) > r.cfg.TablesLimit {
		unique = unique[:r.cfg.TablesLimit]
	}

	lines := []string{"TABLES (preview):"}
	for i, ref := range unique {
		preview := "(could not read the CSV)"
		if data, err := r.blobs.Get(ctx, ref.Path); err == nil {
			preview = TablePreview(data, r.cfg.PreviewRows, r.cfg.PreviewChars)
		}
		lines = append(lines, fmt.Sprintf("\nTABLE %d: %s\n%s", i+1, ref.Title, preview))
	}

	catalog := strings.Join(lines, "\n")
	if note := DuplicateNote(groups); note != "" {
		catalog += "\n\nDUPLICATED TABLES (same content):\n" + note
	}

	return &TableResolution{Representatives: unique, Duplicates: groups, Catalog: catalog}, nil
}

// DedupTablesByContent groups table assets by content signature. The first
// seen asset of each signature is the representative; the rest are reported
// as duplicates. An asset that fails to download or parse gets an
// error-tagged signature of its own path and so stays unique; ingestion
// failures never silently hide an asset.
func (r *AttachmentResolver) DedupTablesByContent(ctx context.Context, refs []model.AssetRef) ([]model.AssetRef, []model.DuplicateGroup) {
	type group struct {
		sig   string
		items []model.AssetRef
	}
	var order []*group
	index := make(map[string]*group)

	for _, ref := range refs {
		sig := r.signatureFor(ctx, ref.Path)
		g, ok := index[sig]
		if !ok {
			g = &group{sig: sig}
			index[sig] = g
			order = append(order, g)
		}
		g.items = append(g.items, ref)
	}

	var unique []model.AssetRef
	var dups []model.DuplicateGroup
	for _, g := range order {
		unique = append(unique, g.items[0])
		if len(g.items) > 1 && !isErrSignature(g.sig) {
			dups = append(dups, model.DuplicateGroup{
				Representative: g.items[0],
				Duplicates:     g.items[1:],
			})
		}
	}
	return unique, dups
}

func (r *AttachmentResolver) signatureFor(ctx context.Context, path string) string {
	if r.cache != nil {
		if sig, ok := r.cache.GetSignature(ctx, path); ok {
			return sig
		}
	}

	data, err := r.blobs.Get(ctx, path)
	if err != nil {
		return errSignature(path)
	}
	sig := TableSignature(data)
	if r.cache != nil {
		r.cache.SetSignature(ctx, path, sig)
	}
	return sig
}

// DuplicateNote renders duplicate groups as "also present in" lines for the
// answer and the prompt catalog.
func DuplicateNote(groups []model.DuplicateGroup) string {
	if len(groups) == 0 {
		return ""
	}
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		titles := make([]string, 0, len(g.Duplicates))
		for _, d := range g.Duplicates {
			titles = append(titles, d.Title)
		}
		lines = append(lines, fmt.Sprintf("- Duplicated: %s (also present in: %s)", g.Representative.Title, strings.Join(titles, ", ")))
	}
	return strings.Join(lines, "\n")
}
