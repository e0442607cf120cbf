package rag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pablomoreiragarcia/ragflow-multimodal/internal/model"
)

func TestDetectIntent_DecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     model.Intent
	}{
		{
			name:     "image only",
			question: "What does the chart show?",
			want:     model.Intent{AllowImage: true},
		},
		{
			name:     "table only",
			question: "Summarize the revenue table",
			want:     model.Intent{AllowTable: true},
		},
		{
			name:     "both modalities",
			question: "Compare the table with the figure on page 3",
			want:     model.Intent{AllowTable: true, AllowImage: true},
		},
		{
			name:     "neither",
			question: "What is the conclusion of the report?",
			want:     model.Intent{},
		},
		{
			name:     "case insensitive",
			question: "SHOW ME THE TABLES",
			want:     model.Intent{AllowTable: true},
		},
		{
			name:     "screenshot counts as image",
			question: "describe the screenshot",
			want:     model.Intent{AllowImage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.question))
		})
	}
}

func TestDetectIntent_AllPatterns(t *testing.T) {
	got := DetectIntent("show me all the tables")
	assert.True(t, got.AllowTable)
	assert.True(t, got.WantAllTables)
	assert.False(t, got.AllowImage)
	assert.False(t, got.WantAllImages)

	got = DetectIntent("give me all images from the document")
	assert.True(t, got.AllowImage)
	assert.True(t, got.WantAllImages)
	assert.False(t, got.AllowTable)

	got = DetectIntent("I want all of the tables and all the pictures")
	assert.True(t, got.AllowTable)
	assert.True(t, got.AllowImage)
	assert.True(t, got.WantAllTables)
	assert.True(t, got.WantAllImages)
}

func TestDetectIntent_WordBoundaries(t *testing.T) {
	// "paragraph" must not trigger the image vocabulary via "graph".
	assert.Equal(t, model.Intent{}, DetectIntent("rewrite the last paragraph"))
}

func TestDetectIntent_Total(t *testing.T) {
	// Never errors, never panics, whatever the input.
	assert.Equal(t, model.Intent{}, DetectIntent(""))
	assert.Equal(t, model.Intent{}, DetectIntent("   "))
}
