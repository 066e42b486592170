package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"dni", "name"},
		Rows: []map[string]string{
			{"dni": "12345678", "name": "pepe"},
			{"dni": "87654321", "name": "ana, the second"},
		},
	}

	content, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "dni,name\n12345678,pepe\n87654321,\"ana, the second\"\n", string(content))
}

func TestCSVExporterRenderMissingCell(t *testing.T) {
	data := Dataset{
		Headers: []string{"dni", "name"},
		Rows:    []map[string]string{{"dni": "12345678"}},
	}

	content, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "dni,name\n12345678,\n", string(content))
}

func TestCSVExporterRenderNoHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}
