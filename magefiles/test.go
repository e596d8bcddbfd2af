//go:build mage

package main

import "github.com/magefile/mage/sh"

// Test runs all tests with race detection.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// TestVerbose runs all tests with verbose output.
func TestVerbose() error {
	return sh.RunV(binGo, "test", "-race", "-v", "./...")
}

// Cover runs all tests and prints a coverage summary.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func=coverage.out")
}
