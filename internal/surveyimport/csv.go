package surveyimport

import (
	"encoding/csv"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// newReader builds the CSV reader the pipeline uses: variable-length
// records (exports pad trailing blanks inconsistently) and lenient
// quoting, since the field tool emits stray quotes inside free text.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// normalizeHeader canonicalizes one header cell: strip the UTF-8 BOM,
// trim whitespace, and NFC-normalize. Accented Spanish headers arrive
// in mixed normal forms depending on which tool exported the file;
// without NFC the same column would mint duplicate questions.
func normalizeHeader(cell string) string {
	cell = strings.TrimPrefix(cell, "\uFEFF")
	cell = strings.TrimSpace(cell)
	return norm.NFC.String(cell)
}

// normalizeHeaderRow applies normalizeHeader to every cell.
func normalizeHeaderRow(header []string) []string {
	out := make([]string, len(header))
	for i, cell := range header {
		out[i] = normalizeHeader(cell)
	}
	return out
}

// cellValue returns the trimmed cell at index i, or "" when the row is
// shorter than the header ("not answered" is represented by absence).
func cellValue(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
