// Package metrics provides build observability for sitegen.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection never needs nil checks at call sites.
// The Prometheus implementation registers its collectors on a caller-supplied
// registry; since a build is a one-shot batch process the registry is exported
// with WriteTextfile (node_exporter textfile collector format) rather than
// served over HTTP.
package metrics
