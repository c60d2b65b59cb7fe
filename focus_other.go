//go:build !darwin
// +build !darwin

package main

// Cocoa activation is only needed on macOS; elsewhere the toolkit's own
// focus call is sufficient.
func focusAppWindow() {}
