package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSignature_RowOrderIndependent(t *testing.T) {
	a := []byte("name,amount\nalpha,1\nbeta,2\ngamma,3\n")
	b := []byte("name,amount\ngamma,3\nalpha,1\nbeta,2\n")

	assert.Equal(t, TableSignature(a), TableSignature(b))
}

func TestTableSignature_HeaderOrderFixed(t *testing.T) {
	// Swapping the header row with a body row must change the signature:
	// only the body is order-independent.
	a := []byte("name,amount\nalpha,1\n")
	b := []byte("alpha,1\nname,amount\n")

	assert.NotEqual(t, TableSignature(a), TableSignature(b))
}

func TestTableSignature_WhitespaceAndCaseInsensitive(t *testing.T) {
	a := []byte("Name,Amount\nAlpha ,  1\n")
	b := []byte("name,amount\nalpha,1\n")

	assert.Equal(t, TableSignature(a), TableSignature(b))
}

func TestTableSignature_DelimiterSniffing(t *testing.T) {
	comma := []byte("name,amount\nalpha,1\n")
	semicolon := []byte("name;amount\nalpha;1\n")
	tab := []byte("name\tamount\nalpha\t1\n")

	assert.Equal(t, TableSignature(comma), TableSignature(semicolon))
	assert.Equal(t, TableSignature(comma), TableSignature(tab))
}

func TestTableSignature_BOMIgnored(t *testing.T) {
	plain := []byte("name,amount\nalpha,1\n")
	bom := append([]byte("\xef\xbb\xbf"), plain...)

	assert.Equal(t, TableSignature(plain), TableSignature(bom))
}

func TestTableSignature_DifferentContentDiffers(t *testing.T) {
	a := []byte("name,amount\nalpha,1\n")
	b := []byte("name,amount\nalpha,2\n")

	assert.NotEqual(t, TableSignature(a), TableSignature(b))
}

func TestTableSignature_EmptyHashesRawBytes(t *testing.T) {
	sig := TableSignature([]byte{})
	require.NotEmpty(t, sig)
	assert.NotEqual(t, sig, TableSignature([]byte("  ")))
}

func TestErrSignature_NeverGroups(t *testing.T) {
	assert.True(t, isErrSignature(errSignature("doc/tables/broken.csv")))
	assert.NotEqual(t, errSignature("a.csv"), errSignature("b.csv"))
}

func TestTablePreview_Bounded(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,amount\n")
	for i := 0; i < 100; i++ {
		b.WriteString("row,1\n")
	}

	out := TablePreview([]byte(b.String()), 5, 10000)
	// Header, divider, five data rows.
	assert.Len(t, strings.Split(out, "\n"), 7)
	assert.Contains(t, out, "name | amount")
	assert.Contains(t, out, "--- | ---")
}

func TestTablePreview_TruncationMarker(t *testing.T) {
	out := TablePreview([]byte("name,amount\nalpha,1\nbeta,2\n"), 20, 15)
	assert.True(t, strings.HasSuffix(out, "\n...(truncated)"))
	assert.LessOrEqual(t, len(out), 15+len("\n...(truncated)"))
}

func TestTablePreview_Unparseable(t *testing.T) {
	assert.Equal(t, "(empty or unparseable table)", TablePreview(nil, 5, 100))
}
