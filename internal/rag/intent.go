package rag

import (
	"regexp"
	"strings"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

// Keyword vocabularies for modality detection. Matching is word-bounded
// over the lowercased question so that e.g. "paragraph" never matches
// "graph".
var (
	imageWordsRe = regexp.MustCompile(`\b(images?|pictures?|photos?|figures?|charts?|diagrams?|graphs?|screenshots?|illustrations?)\b`)
	tableWordsRe = regexp.MustCompile(`\b(tables?|csv|excel|sheets?|spreadsheets?|dataframes?)\b`)

	allTablesRe = regexp.MustCompile(`\ball\s+(of\s+)?(the\s+)?tables\b`)
	allImagesRe = regexp.MustCompile(`\ball\s+(of\s+)?(the\s+)?(images|pictures|photos|figures|charts)\b`)
)

// DetectIntent maps a raw question to a modality-allowance decision. Pure
// function, always total: an unclassifiable question simply allows neither
// modality. The want-all flags are independent of the single/both outcome
// and are set whenever the corresponding pattern matched.
func DetectIntent(question string) model.Intent {
	q := strings.ToLower(strings.TrimSpace(question))

	wantAllTables := allTablesRe.MatchString(q)
	wantAllImages := allImagesRe.MatchString(q)

	wantsImage := wantAllImages || imageWordsRe.MatchString(q)
	wantsTable := wantAllTables || tableWordsRe.MatchString(q)

	switch {
	case wantsImage && !wantsTable:
		return model.Intent{AllowImage: true, WantAllImages: wantAllImages, WantAllTables: wantAllTables}
	case wantsTable && !wantsImage:
		return model.Intent{AllowTable: true, WantAllImages: wantAllImages, WantAllTables: wantAllTables}
	case wantsTable && wantsImage:
		return model.Intent{AllowTable: true, AllowImage: true, WantAllImages: wantAllImages, WantAllTables: wantAllTables}
	default:
		return model.Intent{}
	}
}
