package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceType_String(t *testing.T) {
	assert.Equal(t, "html", SourceTypeHTML.String())
	assert.Equal(t, "pdf", SourceTypePDF.String())
}
