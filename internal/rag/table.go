package rag

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"sort"
	"strings"
)

var delimiterCandidates = []rune{',', ';', '\t', '|'}

// sniffDelimiter picks the delimiter that occurs most often in the sample.
// Falls back to comma.
func sniffDelimiter(sample string) rune {
	best := ','
	bestCount := 0
	for _, d := range delimiterCandidates {
		if n := strings.Count(sample, string(d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

func parseCSV(raw []byte, normalize bool) [][]string {
	text := string(bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf")))

	sample := text
	if len(sample) > 4096 {
		sample = sample[:4096]
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffDelimiter(sample)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		row := make([]string, len(rec))
		empty := true
		for i, c := range rec {
			c = strings.Join(strings.Fields(c), " ")
			if normalize {
				c = strings.ToLower(c)
			}
			row[i] = c
			if c != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows
}

// TableSignature computes the content signature of a CSV blob: cells are
// whitespace-collapsed and lowercased, the header stays first and the body
// rows are sorted, so the signature is independent of row order, storage
// path and incidental formatting. Unparseable content hashes the raw bytes.
func TableSignature(raw []byte) string {
	rows := parseCSV(raw, true)
	if len(rows) == 0 {
		sum := sha256.Sum256(raw)
		return hex.EncodeToString(sum[:])
	}

	lines := make([]string, 0, len(rows))
	lines = append(lines, strings.Join(rows[0], ","))

	body := make([]string, 0, len(rows)-1)
	for _, r := range rows[1:] {
		body = append(body, strings.Join(r, ","))
	}
	sort.Strings(body)
	lines = append(lines, body...)

	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])
}

// errSignature tags an asset whose bytes could not be fetched or parsed.
// Error-tagged signatures never group, so a broken download cannot hide an
// asset behind a false duplicate.
func errSignature(path string) string { return "err:" + path }

func isErrSignature(sig string) bool { return strings.HasPrefix(sig, "err:") }

// TablePreview renders the header plus up to maxRows data rows of a CSV as
// a simple delimited block, truncated to maxChars with an explicit marker.
// The model never receives unbounded table text.
func TablePreview(raw []byte, maxRows, maxChars int) string {
	rows := parseCSV(raw, false)
	if len(rows) == 0 {
		return "(empty or unparseable table)"
	}
	if len(rows) > maxRows+1 {
		rows = rows[:maxRows+1]
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(rows[0], " | "))
	dashes := make([]string, len(rows[0]))
	for i := range dashes {
		dashes[i] = "---"
	}
	lines = append(lines, strings.Join(dashes, " | "))
	for _, r := range rows[1:] {
		lines = append(lines, strings.Join(r, " | "))
	}

	out := strings.Join(lines, "\n")
	if len(out) > maxChars {
		out = out[:maxChars] + "\n...(truncated)"
	}
	return out
}
