//go:build mage

// Package main provides build targets for attr-builder using Mage.
//
// Usage:
//
//	mage generate   Regenerate stringer output
//	mage build      Compile the attrs binary to bin/
//	mage test       Run all tests with the race detector
//	mage lint       Run golangci-lint
//	mage schema     Write the options file JSON schema to bin/
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "attrs"
	binaryDir  = "bin"
	cmdDir     = "./cmd/attrs"
)

// Generate runs go generate over every package.
func Generate() error {
	return sh.RunV("go", "generate", "./...")
}

// Build compiles the attrs binary to bin/.
func Build() error {
	mg.Deps(Generate)

	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Schema writes the JSON schema of the options file to bin/attrs.schema.json.
func Schema() error {
	mg.Deps(Build)

	out, err := sh.Output(filepath.Join(binaryDir, binaryName), "schema")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(binaryDir, binaryName+".schema.json"), []byte(out+"\n"), 0o644)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
