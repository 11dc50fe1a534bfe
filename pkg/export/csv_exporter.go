package export

import (
	"bytes"
	"fmt"
	"strings"
)

// Dataset defines tabular export content. Rows are positional and must match
// the header width.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// CSVExporter renders Dataset records into CSV bytes compatible with the
// files teachers already download: a UTF-8 BOM so spreadsheet apps detect the
// encoding, a bare header line, and every data field double-quoted regardless
// of content.
//
// encoding/csv only quotes fields that need it, which would change the bytes
// of existing exports, so the writer is explicit here.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	buf.WriteString("\ufeff")
	buf.WriteString(strings.Join(data.Headers, ","))
	for _, row := range data.Rows {
		if len(row) != len(data.Headers) {
			return nil, fmt.Errorf("csv row has %d fields, want %d", len(row), len(data.Headers))
		}
		buf.WriteByte('\n')
		writeRow(buf, row)
	}
	return buf.Bytes(), nil
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		for _, r := range field {
			if r == '"' {
				buf.WriteString(`""`)
			} else {
				buf.WriteRune(r)
			}
		}
		buf.WriteByte('"')
	}
}
