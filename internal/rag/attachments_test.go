package rag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

type fakeBlobs struct {
	objects map[string][]byte
	gets    []string
}

func (f *fakeBlobs) Get(_ context.Context, path string) ([]byte, error) {
	f.gets = append(f.gets, path)
	data, ok := f.objects[path]
	if !ok {
		return nil, &BlobFetchError{Path: path, Err: ErrBlobNotFound}
	}
	return data, nil
}

type fakeAssets struct {
	refs map[model.AssetKind][]model.AssetRef
}

func (f *fakeAssets) ListAssets(_ context.Context, _ []string, kind model.AssetKind, limit int) ([]model.AssetRef, error) {
	refs := f.refs[kind]
	if len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

type fakeImageSearcher struct {
	hits []model.RetrievalHit
}

func (f *fakeImageSearcher) SearchImages(_ context.Context, _ []float32, limit int, _ []string) ([]model.RetrievalHit, error) {
	if len(f.hits) > limit {
		return f.hits[:limit], nil
	}
	return f.hits, nil
}

type memSigCache struct {
	sigs map[string]string
}

func (c *memSigCache) GetSignature(_ context.Context, path string) (string, bool) {
	sig, ok := c.sigs[path]
	return sig, ok
}

func (c *memSigCache) SetSignature(_ context.Context, path, sig string) {
	c.sigs[path] = sig
}

func newResolver(blobs *fakeBlobs, assets *fakeAssets, images *fakeImageSearcher, cache SignatureCache) *AttachmentResolver {
	return NewAttachmentResolver(&fakeEmbedder{}, images, assets, blobs, cache, ResolverConfig{
		ImagesLimit:  30,
		TablesLimit:  30,
		PreviewRows:  5,
		PreviewChars: 500,
	})
}

func TestDedupTables_PathIndependent(t *testing.T) {
	// Same content (up to whitespace/case and row order) under two
	// locators on different pages collapses to one representative.
	blobs := &fakeBlobs{objects: map[string][]byte{
		"doc1/tables/p2.csv": []byte("Name,Amount\nAlpha,1\nBeta,2\n"),
		"doc2/tables/p7.csv": []byte("name,amount\nbeta,2\nalpha , 1\n"),
		"doc2/tables/p9.csv": []byte("name,amount\ngamma,3\n"),
	}}
	refs := []model.AssetRef{
		{Path: "doc1/tables/p2.csv", Title: "report.pdf · table · page 2"},
		{Path: "doc2/tables/p7.csv", Title: "annex.pdf · table · page 7"},
		{Path: "doc2/tables/p9.csv", Title: "annex.pdf · table · page 9"},
	}

	r := newResolver(blobs, &fakeAssets{}, &fakeImageSearcher{}, nil)
	unique, dups := r.DedupTablesByContent(context.Background(), refs)

	require.Len(t, unique, 2)
	assert.Equal(t, "doc1/tables/p2.csv", unique[0].Path) // first seen wins
	assert.Equal(t, "doc2/tables/p9.csv", unique[1].Path)

	require.Len(t, dups, 1)
	assert.Equal(t, "report.pdf · table · page 2", dups[0].Representative.Title)
	require.Len(t, dups[0].Duplicates, 1)
	assert.Equal(t, "annex.pdf · table · page 7", dups[0].Duplicates[0].Title)
}

func TestDedupTables_DownloadFailureStaysUnique(t *testing.T) {
	// Two broken assets must not group with each other, nor disappear.
	blobs := &fakeBlobs{objects: map[string][]byte{}}
	refs := []model.AssetRef{
		{Path: "doc1/tables/missing1.csv", Title: "t1"},
		{Path: "doc1/tables/missing2.csv", Title: "t2"},
	}

	r := newResolver(blobs, &fakeAssets{}, &fakeImageSearcher{}, nil)
	unique, dups := r.DedupTablesByContent(context.Background(), refs)

	assert.Len(t, unique, 2)
	assert.Empty(t, dups)
}

func TestDedupTables_SignatureCacheSkipsDownload(t *testing.T) {
	blobs := &fakeBlobs{objects: map[string][]byte{
		"doc1/tables/a.csv": []byte("name,amount\nalpha,1\n"),
	}}
	cache := &memSigCache{sigs: map[string]string{}}
	r := newResolver(blobs, &fakeAssets{}, &fakeImageSearcher{}, cache)

	refs := []model.AssetRef{{Path: "doc1/tables/a.csv", Title: "t"}}
	r.DedupTablesByContent(context.Background(), refs)
	r.DedupTablesByContent(context.Background(), refs)

	assert.Len(t, blobs.gets, 1)
}

func TestResolveAllTables_DuplicateScenario(t *testing.T) {
	// "show me all the tables" over a 2-document scope with one duplicated
	// table: exactly one representative, duplicate reported not dropped.
	blobs := &fakeBlobs{objects: map[string][]byte{
		"doc1/tables/t1.csv": []byte("metric,value\nrevenue,10\ncost,4\n"),
		"doc2/tables/t1.csv": []byte("metric,value\ncost,4\nrevenue,10\n"),
	}}
	assets := &fakeAssets{refs: map[model.AssetKind][]model.AssetRef{
		model.KindTable: {
			{Path: "doc1/tables/t1.csv", Title: "a.pdf · table · page 1"},
			{Path: "doc2/tables/t1.csv", Title: "b.pdf · table · page 5"},
		},
	}}

	r := newResolver(blobs, assets, &fakeImageSearcher{}, nil)
	res, err := r.ResolveAllTables(context.Background(), []string{"doc1", "doc2"})
	require.NoError(t, err)

	require.Len(t, res.Representatives, 1)
	assert.Equal(t, "doc1/tables/t1.csv", res.Representatives[0].Path)

	require.Len(t, res.Duplicates, 1)
	assert.Contains(t, res.Catalog, "TABLE 1: a.pdf · table · page 1")
	assert.Contains(t, res.Catalog, "DUPLICATED TABLES")
	assert.Contains(t, res.Catalog, "also present in: b.pdf · table · page 5")
}

func TestResolveImages_SingleBest(t *testing.T) {
	blobs := &fakeBlobs{objects: map[string][]byte{
		"doc1/images/chart.png": []byte("png-bytes"),
	}}
	images := &fakeImageSearcher{hits: []model.RetrievalHit{
		{Modality: model.ModalityImage, ImagePath: "doc1/images/chart.png", Score: 0.8},
	}}

	r := newResolver(blobs, &fakeAssets{}, images, nil)
	res, err := r.ResolveImages(context.Background(), "what does the chart show", []string{"doc1"}, model.Intent{AllowImage: true})
	require.NoError(t, err)

	assert.Equal(t, "doc1/images/chart.png", res.FirstPath)
	require.Len(t, res.Bytes, 1)
}

func TestResolveImages_NoMatchIsNotAnError(t *testing.T) {
	r := newResolver(&fakeBlobs{objects: map[string][]byte{}}, &fakeAssets{}, &fakeImageSearcher{}, nil)

	res, err := r.ResolveImages(context.Background(), "what does the chart show", []string{"doc1"}, model.Intent{AllowImage: true})
	require.NoError(t, err)
	assert.Empty(t, res.FirstPath)
	assert.Empty(t, res.Bytes)
}

func TestResolveImages_ExhaustiveSkipsBrokenBlobs(t *testing.T) {
	blobs := &fakeBlobs{objects: map[string][]byte{
		"doc1/images/a.png": []byte("a"),
		// b.png missing from the store
	}}
	assets := &fakeAssets{refs: map[model.AssetKind][]model.AssetRef{
		model.KindImage: {
			{Path: "doc1/images/a.png", Title: "a"},
			{Path: "doc1/images/b.png", Title: "b"},
		},
	}}

	r := newResolver(blobs, assets, &fakeImageSearcher{}, nil)
	res, err := r.ResolveImages(context.Background(), "all the images", []string{"doc1"}, model.Intent{AllowImage: true, WantAllImages: true})
	require.NoError(t, err)

	require.Len(t, res.Refs, 1)
	assert.Equal(t, "doc1/images/a.png", res.Refs[0].Path)
	assert.Equal(t, []string{"IMAGE 1: a"}, res.Titles)
	// The first listed asset still backs the compat locator.
	assert.Equal(t, "doc1/images/a.png", res.FirstPath)
}

func TestResolveImages_DisallowedIntentShortCircuits(t *testing.T) {
	images := &fakeImageSearcher{hits: []model.RetrievalHit{
		{Modality: model.ModalityImage, ImagePath: "doc1/images/a.png"},
	}}
	r := newResolver(&fakeBlobs{}, &fakeAssets{}, images, nil)

	res, err := r.ResolveImages(context.Background(), "plain question", []string{"doc1"}, model.Intent{})
	require.NoError(t, err)
	assert.Empty(t, res.FirstPath)
}
