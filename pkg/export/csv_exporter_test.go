package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRender(t *testing.T) {
	exporter := NewCSVExporter()

	out, err := exporter.Render(Dataset{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "x"}, {"2", `say "hi"`}},
	})

	require.NoError(t, err)
	content := string(out)
	assert.True(t, strings.HasPrefix(content, "\ufeff"))

	lines := strings.Split(strings.TrimPrefix(content, "\ufeff"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a,b", lines[0])
	assert.Equal(t, `"1","x"`, lines[1])
	assert.Equal(t, `"2","say ""hi"""`, lines[2])
}

func TestCSVRenderRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{})

	require.Error(t, err)
}

func TestCSVRenderRejectsRaggedRows(t *testing.T) {
	exporter := NewCSVExporter()

	_, err := exporter.Render(Dataset{Headers: []string{"a", "b"}, Rows: [][]string{{"only one"}}})

	require.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	exporter := NewPDFExporter()

	out, err := exporter.Render(Dataset{Headers: []string{"a"}, Rows: [][]string{{"1"}}}, "Report")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}
