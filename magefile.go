//go:build mage

// Mage build targets for attain developer tooling. Run `mage -l` for
// the list.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const (
	binDir  = "bin"
	binName = "attain"
	cmdPkg  = "./cmd/attain"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	return run("go", "build", "-o", out, cmdPkg)
}

// Test runs the full test suite.
func Test() error {
	return run("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return run("go", "vet", "./...")
}

// Check runs vet and the tests, the pre-push gate.
func Check() error {
	mg.Deps(Vet, Test)
	return nil
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", name, args, err)
	}
	return nil
}
