// Package services implements the application core: the ingestion
// orchestrator that turns URLs into stored document vectors, and the
// retrieval orchestrator that answers queries with ranked results.
//
// Services depend only on the domain and on the driven ports; every
// infrastructure concern (HTTP, Qdrant, SQLite) stays behind those ports.
package services
