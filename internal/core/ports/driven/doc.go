// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Scraper: Fetches raw content from URLs
//   - DocumentParser: Converts raw content into plain-text pages
//   - EmbeddingService: Converts text into vector embeddings
//   - VectorStore: Persists vectors and performs similarity search
//
// # Optional Interfaces
//
//   - ScanStore: Records per-URL scan outcomes for later inspection
package driven
