//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - run the tests.
var Default = Test

// Build compiles every package and the demo binary.
func Build() error {
	if err := sh.RunV("go", "build", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-o", "bin/polyfmt-demo", "./cmd/polyfmt-demo")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint vets every package.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Demo builds and runs the style showcase.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV("bin/polyfmt-demo", "--debug")
}
