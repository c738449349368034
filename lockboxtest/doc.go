// Package lockboxtest provides mocks and helpers for testing code that
// builds on the lockbox engine. It is a test toolbox and must never be
// imported by production code.
package lockboxtest
