package surveyimport

import (
	"strings"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\uFEFF8_3_Edad", "8_3_Edad"},
		{"  8_3_Edad  ", "8_3_Edad"},
		// NFD "ción" (combining accent) must collapse to the NFC form.
		{"Dirección", "Dirección"},
		{"", ""},
	}

	for _, c := range cases {
		if got := normalizeHeader(c.in); got != c.want {
			t.Errorf("normalizeHeader(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestCellValue(t *testing.T) {
	row := []string{"a", " b ", ""}

	if got := cellValue(row, 1); got != "b" {
		t.Errorf("Expected trimmed cell, got %q", got)
	}
	if got := cellValue(row, 2); got != "" {
		t.Errorf("Expected empty cell, got %q", got)
	}
	// Short rows read as blanks past the end.
	if got := cellValue(row, 7); got != "" {
		t.Errorf("Expected blank for out-of-range index, got %q", got)
	}
}

func TestMetaForHeader(t *testing.T) {
	m := metaForHeader("8_3_Edad")
	if m.Text != "Edad" {
		t.Errorf("Expected curated text Edad, got %q", m.Text)
	}
	if m.AnswerType != "NUMERO" {
		t.Errorf("Expected NUMERO, got %q", m.AnswerType)
	}

	m = metaForHeader("columna_desconocida")
	if m.Text != "columna_desconocida" {
		t.Errorf("Unknown header should fall back to raw text, got %q", m.Text)
	}
	if m.Category != "" || m.AnswerType != "" {
		t.Errorf("Unknown header should carry no curation, got %+v", m)
	}
}

func TestNewReaderLenient(t *testing.T) {
	// Rows of different widths must not error.
	cr := newReader(strings.NewReader("a,b,c\n1,2\n1,2,3,4\n"))

	if _, err := cr.Read(); err != nil {
		t.Fatalf("header read failed: %v", err)
	}
	if _, err := cr.Read(); err != nil {
		t.Errorf("short row rejected: %v", err)
	}
	if _, err := cr.Read(); err != nil {
		t.Errorf("long row rejected: %v", err)
	}
}
