//go:build !darwin
// +build !darwin

package main

// Only macOS has a dock to hide from.
func hideAppFromDock() {}
