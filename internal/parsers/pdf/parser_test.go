package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPages_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", []byte{}},
		{"not a pdf", []byte("<html><body>hi</body></html>")},
		{"truncated header", []byte("%PDF-1.4")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := ExtractPages(tt.input)
			assert.Error(t, err)
			assert.Nil(t, pages)
		})
	}
}
