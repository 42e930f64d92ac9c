//go:build tools

package tools

// This file tracks CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used via go:generate:
// - github.com/matryer/moq (service interface mocks)
