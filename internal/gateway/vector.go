package gateway

import (
	"context"
	"fmt"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// CollectionTarget binds a Qdrant collection name to the dimensionality of
// the embedding space it indexes. Modeling the two collections as typed
// targets keeps a text vector from ever being sent to the image collection.
type CollectionTarget struct {
	Name       string
	Dimensions uint64
}

// VectorSearch is the Qdrant adapter. The text target indexes text and
// table chunks in the compact text space; the image target indexes images
// in the multimodal space.
type VectorSearch struct {
	client *qdrant.Client
	text   CollectionTarget
	image  CollectionTarget
}

// NewVectorSearch connects to Qdrant over gRPC.
func NewVectorSearch(host string, port int, text, image CollectionTarget) (*VectorSearch, error) {
	client, err := qdrant.NewClient(&qdrant.Config{Host: host, Port: port})
	if err != nil {
		return nil, fmt.Errorf("qdrant client: %w", err)
	}
	return &VectorSearch{client: client, text: text, image: image}, nil
}

// EnsureCollections creates both collections when missing.
func (s *VectorSearch) EnsureCollections(ctx context.Context) error {
	existing, err := s.client.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, target := range []CollectionTarget{s.text, s.image} {
		if have[target.Name] {
			continue
		}
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: target.Name,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     target.Dimensions,
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("create collection %s: %w", target.Name, err)
		}
	}
	return nil
}

// Healthy reports whether Qdrant answers. Used by the readiness probe.
func (s *VectorSearch) Healthy(ctx context.Context) bool {
	_, err := s.client.ListCollections(ctx)
	return err == nil
}

// SearchTextAndTables queries the text collection restricted to the text
// and table modalities.
func (s *VectorSearch) SearchTextAndTables(ctx context.Context, vector []float32, limit int, docIDs []string) ([]model.RetrievalHit, error) {
	return s.query(ctx, s.text.Name, vector, limit, docIDs, []string{"text", "table"})
}

// SearchImages queries the image collection.
func (s *VectorSearch) SearchImages(ctx context.Context, vector []float32, limit int, docIDs []string) ([]model.RetrievalHit, error) {
	return s.query(ctx, s.image.Name, vector, limit, docIDs, []string{"image"})
}

// Close releases the gRPC connection.
func (s *VectorSearch) Close() {
	s.client.Close()
}

func (s *VectorSearch) query(ctx context.Context, collection string, vector []float32, limit int, docIDs, modalities []string) ([]model.RetrievalHit, error) {
	cap64 := uint64(limit)

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &cap64,
		Filter:         buildFilter(docIDs, modalities),
		WithPayload: &qdrant.WithPayloadSelector{
			SelectorOptions: &qdrant.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	hits := make([]model.RetrievalHit, 0, len(points))
	for _, p := range points {
		hits = append(hits, hitFromPoint(p))
	}
	return hits, nil
}

func buildFilter(docIDs, modalities []string) *qdrant.Filter {
	var must []*qdrant.Condition
	if len(docIDs) > 0 {
		must = append(must, qdrant.NewMatchKeywords("metadata.doc_id", docIDs...))
	}
	if len(modalities) > 0 {
		must = append(must, qdrant.NewMatchKeywords("metadata.modality", modalities...))
	}
	if len(must) == 0 {
		return nil
	}
	return &qdrant.Filter{Must: must}
}

// hitFromPoint maps a scored point's payload onto the tagged RetrievalHit.
// Payload shape: {content, metadata: {doc_id, modality, page, csv_path,
// image_path, table: {headers, rows}}}.
func hitFromPoint(p *qdrant.ScoredPoint) model.RetrievalHit {
	hit := model.RetrievalHit{
		PointID:  pointID(p.Id),
		Score:    float64(p.Score),
		Modality: model.ModalityText,
	}

	if v, ok := p.Payload["content"]; ok {
		hit.Content = v.GetStringValue()
	}

	meta := p.Payload["metadata"].GetStructValue().GetFields()
	if meta == nil {
		return hit
	}

	if v, ok := meta["modality"]; ok && v.GetStringValue() != "" {
		hit.Modality = model.Modality(v.GetStringValue())
	}
	if v, ok := meta["doc_id"]; ok {
		hit.DocID = v.GetStringValue()
	}
	if v, ok := meta["page"]; ok {
		hit.Page = int(v.GetIntegerValue())
	}
	if v, ok := meta["csv_path"]; ok {
		hit.CSVPath = v.GetStringValue()
	}
	if hit.CSVPath == "" {
		if v, ok := meta["table_path"]; ok {
			hit.CSVPath = v.GetStringValue()
		}
	}
	if v, ok := meta["image_path"]; ok {
		hit.ImagePath = v.GetStringValue()
	}
	if v, ok := meta["table"]; ok {
		hit.Table = tableFromValue(v)
	}
	return hit
}

func pointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if u := id.GetUuid(); u != "" {
		return u
	}
	return strconv.FormatUint(id.GetNum(), 10)
}

func tableFromValue(v *qdrant.Value) *model.TableData {
	fields := v.GetStructValue().GetFields()
	if fields == nil {
		return nil
	}

	table := &model.TableData{}
	for _, hv := range fields["headers"].GetListValue().GetValues() {
		table.Headers = append(table.Headers, hv.GetStringValue())
	}
	for _, rv := range fields["rows"].GetListValue().GetValues() {
		var row []string
		for _, cv := range rv.GetListValue().GetValues() {
			row = append(row, cv.GetStringValue())
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Headers) == 0 && len(table.Rows) == 0 {
		return nil
	}
	return table
}
