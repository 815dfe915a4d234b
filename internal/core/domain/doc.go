// Package domain contains the core business entities for Lectern:
// study sessions, their document records, retrieval chunks, and the
// structured study aids generated from them. It has no dependencies on
// adapters or external services.
package domain
