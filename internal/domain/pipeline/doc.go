// Package pipeline holds the persisted entities of the claim pipeline:
// inputs, claims with evidence and provenance, variants with ordered claim
// links, and export versions with variant links.
package pipeline
