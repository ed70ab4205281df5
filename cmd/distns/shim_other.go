//go:build !linux

package main

// Restricted posting is Linux-only; there is no shim mode elsewhere.
func handleShim() {}
