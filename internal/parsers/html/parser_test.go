package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText_VisibleNodes(t *testing.T) {
	input := `<html><head><title>T</title></head><body>
		<h1> Heading </h1>
		<p>First paragraph.</p>
		<div><span>Nested</span> text</div>
	</body></html>`

	got := ExtractText(input)

	assert.Equal(t, "Heading\nFirst paragraph.\nNested\ntext", got)
}

func TestExtractText_DiscardsScriptsAndStyles(t *testing.T) {
	input := `<html><body>
		<script>var hidden = 1;</script>
		<style>.x { color: red }</style>
		<noscript>enable js</noscript>
		<p>kept</p>
	</body></html>`

	assert.Equal(t, "kept", ExtractText(input))
}

func TestExtractText_NoBody(t *testing.T) {
	// Fragments without an explicit body still yield their text.
	got := ExtractText("<p>orphan</p>")
	assert.Equal(t, "orphan", got)
}

func TestExtractText_Empty(t *testing.T) {
	assert.Equal(t, "", ExtractText(""))
	assert.Equal(t, "", ExtractText("<html><body>   \n\t </body></html>"))
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "<html><title>Hello</title></html>", "Hello"},
		{"no title", "<html><body>no title</body></html>", "Untitled"},
		{"missing end tag", "<html><title>Hello</html>", "Untitled"},
		{"missing start tag", "<html>Hello</title></html>", "Untitled"},
		{"end before start", "</title>broken<title>", "Untitled"},
		{"case insensitive", "<TITLE>Loud</TITLE>", "Loud"},
		{"whitespace trimmed", "<title>  padded  </title>", "padded"},
		{"first occurrence wins", "<title>one</title><title>two</title>", "one"},
		{"empty document", "", "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTitle(tt.input))
		})
	}
}
