// Package extractors provides implementations of the Extractor interface
// for the upload formats lectern accepts. Each extractor knows how to pull
// plain text out of a specific MIME type.
//
// Extractors are registered with the Registry at startup; the registry
// routes each upload to the highest-priority extractor claiming its type.
package extractors
