package rag

import (
	"strings"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// SystemPrompt frames every turn sent to the language model.
const SystemPrompt = `You are a multimodal RAG assistant. Answer using ONLY the supplied document context, the conversation history and, when provided, the attached images.

Instructions:
- Stay consistent with the prior conversation.
- When the user asks about tables, summarize the key figures clearly.
- When the user asks about an image, describe in detail what it shows.
- If something appears neither in the context nor in an image, say so explicitly.`

// ContextAssembly is the model-ready projection of the ranked hits.
type ContextAssembly struct {
	Points []model.ContextPoint

	// ContextText is the concatenated hit content handed to the model.
	ContextText string

	// FirstTablePath/FirstTableBlock come from the best-ranked table hit,
	// for the single-best table path and the full-table block.
	FirstTablePath  string
	FirstTableBlock string
}

// AssembleContext projects ranked hits into context points for persistence
// and into the bounded text block for the prompt. The full table block is
// only appended when tables were allowed, and never unbounded.
func AssembleContext(hits []model.RetrievalHit, intent model.Intent, maxTableChars int) *ContextAssembly {
	a := &ContextAssembly{Points: []model.ContextPoint{}}
	var parts []string

	for _, h := range hits {
		meta := map[string]any{"modality": string(h.Modality)}
		if h.DocID != "" {
			meta["doc_id"] = h.DocID
		}
		if h.Page > 0 {
			meta["page"] = h.Page
		}
		if h.Modality == model.ModalityTable {
			if h.CSVPath != "" {
				meta["csv_path"] = h.CSVPath
				if a.FirstTablePath == "" {
					a.FirstTablePath = h.CSVPath
				}
			}
			if h.Table != nil {
				meta["table"] = h.Table
				if a.FirstTableBlock == "" {
					a.FirstTableBlock = renderTable(h.Table)
				}
			}
		}
		if h.Modality == model.ModalityImage && h.ImagePath != "" {
			meta["image_path"] = h.ImagePath
		}

		a.Points = append(a.Points, model.ContextPoint{Content: h.Content, Metadata: meta})
		if h.Content != "" {
			parts = append(parts, h.Content)
		}
	}

	a.ContextText = strings.Join(parts, "\n")
	if intent.AllowTable && a.FirstTableBlock != "" {
		block := a.FirstTableBlock
		if len(block) > maxTableChars {
			block = block[:maxTableChars] + "\n...(truncated)"
		}
		a.ContextText += "\n\nTABLE (full):\n" + block
	}
	return a
}

func renderTable(t *model.TableData) string {
	var lines []string
	if len(t.Headers) > 0 {
		lines = append(lines, strings.Join(t.Headers, " | "))
	}
	for _, row := range t.Rows {
		lines = append(lines, strings.Join(row, " | "))
	}
	return strings.Join(lines, "\n")
}

// BuildUserPrompt renders the user turn handed to the language model:
// question, document context, table hints and the attachments catalog.
func BuildUserPrompt(question string, assembly *ContextAssembly, intent model.Intent, imageTitles []string, tableCatalog string) string {
	var b strings.Builder
	b.WriteString("User question:\n")
	b.WriteString(question)
	b.WriteString("\n\nDocument context:\n")
	b.WriteString(assembly.ContextText)

	if intent.AllowTable && assembly.FirstTablePath != "" {
		b.WriteString("\n\nAdditional table information:\n")
		b.WriteString("- A relevant table is stored as CSV at: " + assembly.FirstTablePath + ".\n")
		b.WriteString("The context above contains rows from that table; use them for the answer.\n")
	}

	var catalog []string
	if len(imageTitles) > 0 {
		catalog = append(catalog, "ATTACHED IMAGES:\n"+strings.Join(imageTitles, "\n"))
	}
	if tableCatalog != "" {
		catalog = append(catalog, tableCatalog)
	}
	if len(catalog) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(catalog, "\n\n"))
	}
	return b.String()
}
