package importer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// CSVLoader parses delimited text files, trying a fixed fallback list of
// encodings and sniffing the delimiter from the first line.
type CSVLoader struct{}

// Extensions returns the file extensions this loader accepts.
func (l *CSVLoader) Extensions() []string { return []string{".csv", ".txt", ".tsv"} }

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText runs the encoding fallback chain: UTF-8 with BOM, UTF-8,
// Windows-1252, Latin-1. The last step always succeeds, so decoding is
// best-effort and never fatal.
func decodeText(data []byte) string {
	if bytes.HasPrefix(data, utf8BOM) {
		return string(bytes.TrimPrefix(data, utf8BOM))
	}
	if utf8.Valid(data) {
		return string(data)
	}
	// The x/text Windows-1252 decoder replaces its unmapped bytes with
	// U+FFFD instead of erroring, so those bytes are checked up front
	// and sent to Latin-1, where every byte is defined.
	if !hasCP1252Unmapped(data) {
		if s, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
			return string(s)
		}
	}
	s, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(s)
}

// hasCP1252Unmapped reports whether data contains a byte with no
// Windows-1252 mapping.
func hasCP1252Unmapped(data []byte) bool {
	for _, b := range data {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return true
		}
	}
	return false
}

// sniffDelimiter picks the delimiter with the most occurrences in the
// first non-empty line, defaulting to comma.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	best, count := ',', strings.Count(line, ",")
	for _, d := range []rune{';', '\t'} {
		if c := strings.Count(line, string(d)); c > count {
			best, count = d, c
		}
	}
	return best
}

// Load parses CSV content into raw rows. Ragged and oddly-quoted rows are
// tolerated rather than rejected.
func (l *CSVLoader) Load(_ string, data []byte) ([][]string, error) {
	text := decodeText(data)

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = sniffDelimiter(text)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return rows, nil
}
