// Package errors provides the classified error primitives used across sitegen.
//
// Every failure that can abort a build is expressed as a ClassifiedError so the
// CLI can pick an exit code and the build report can record a stable category.
//
//	err := errors.ConfigError("invalid cost index").
//		WithContext("row", 7).
//		WithContext("value", "-1").
//		Build()
//
// Categories map to the build's failure taxonomy: configuration errors abort
// before any output is touched, filesystem errors abort the staged build, and
// validation errors report integrity problems (path collisions, broken links)
// found while assembling the manifest.
package errors
