// Package emotion holds the transport-neutral core of the emotion detector:
// the five tracked labels, the tagged Result a Scorer returns, the Detector
// that runs one scorer call per request, and the plain-text response format.
//
// Scoring itself is always delegated. Backends live in internal/clients and
// internal/transformers and are chosen by internal/scorers.
package emotion
