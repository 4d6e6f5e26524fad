package parsers

import (
	"context"

	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/core/ports/driven"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/parsers/html"
	"github.com/myonathanlinkedin/mcp-rag-scanner/internal/parsers/pdf"
)

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Parser is the default DocumentParser backed by the html and pdf
// subpackages.
type Parser struct{}

// New creates a new document parser.
func New() *Parser {
	return &Parser{}
}

// ParseHTML extracts visible body text from an HTML document.
func (p *Parser) ParseHTML(_ context.Context, htmlContent string) (string, error) {
	return html.ExtractText(htmlContent), nil
}

// ParsePDFPages extracts text from each physical page of a PDF.
func (p *Parser) ParsePDFPages(_ context.Context, pdfBytes []byte) ([]string, error) {
	return pdf.ExtractPages(pdfBytes)
}

// ExtractTitle returns the document title or "Untitled".
func (p *Parser) ExtractTitle(htmlContent string) string {
	return html.ExtractTitle(htmlContent)
}
