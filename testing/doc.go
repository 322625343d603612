// Package testing provides test helpers for the Placer library.
//
// The helpers start embedded NATS servers so membership feed tests run
// without external dependencies.
package testing
