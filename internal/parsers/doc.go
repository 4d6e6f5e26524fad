// Package parsers converts fetched document content into plain-text pages.
//
// Each format lives in its own subpackage (html, pdf). The top-level
// Parser type composes them behind the driven.DocumentParser port so the
// orchestrator never branches on format internals.
//
// Parsers degrade gracefully: malformed input produces empty output, and
// empty pages are filtered upstream before embedding.
package parsers
