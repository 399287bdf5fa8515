// Package metrics defines the Prometheus collectors for the simulated backend.
//
// Collectors are registered on a caller-supplied registry so tests and the
// CLI can gather them without touching the global default registry. A nil
// *Metrics is valid and records nothing.
package metrics
