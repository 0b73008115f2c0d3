package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSV(t *testing.T) {
	buf, err := CSV([]string{"ID", "Name"}, [][]string{
		{"1", "Widget"},
		{"2", "Nuts, Bolts"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "ID,Name\n1,Widget\n2,\"Nuts, Bolts\"\n", buf.String())
}

func TestCSV_NoRows(t *testing.T) {
	buf, err := CSV([]string{"ID", "Name"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "ID,Name\n", buf.String())
}

func TestPDFExporter_Render(t *testing.T) {
	e := NewPDFExporter()

	buf, err := e.Render("Products", []string{"ID", "Name"}, [][]string{{"1", "Widget"}})

	assert.NoError(t, err)
	assert.True(t, buf.Len() > 0)
	assert.Equal(t, "%PDF", buf.String()[:4])
}
