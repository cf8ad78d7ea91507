// Package legisearch provides a checkpointed ETL pipeline for UK legislation.
// It fetches legislation pages, extracts cleaned text and metadata, persists
// structured records in a relational store, computes semantic embeddings, and
// indexes them in a vector store for similarity search via a CLI.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package legisearch
