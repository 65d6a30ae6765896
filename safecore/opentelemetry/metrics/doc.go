// Package metrics provides a small factory for OpenTelemetry counter instruments.
//
// MetricsFactory caches instruments by name and exposes a builder API for
// attaching labels. The contract package uses it to count violations.
package metrics
