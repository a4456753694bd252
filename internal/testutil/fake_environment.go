package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFakeEnvironment lays out envDir like a virtual environment: an activation
// script exporting VIRTUAL_ENV and prepending bin to PATH, and a bin/python stub.
func WriteFakeEnvironment(t *testing.T, envDir string) {
	t.Helper()
	binDir := filepath.Join(envDir, "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", binDir, err)
	}

	activate := fmt.Sprintf("export VIRTUAL_ENV=%q\nexport PATH=\"$VIRTUAL_ENV/bin:$PATH\"\n", envDir)
	if err := os.WriteFile(filepath.Join(binDir, "activate"), []byte(activate), 0644); err != nil {
		t.Fatalf("failed to write activate script: %v", err)
	}

	python := "#!/bin/sh\nfor arg in \"$@\"; do echo \"arg:$arg\"; done\n"
	if err := os.WriteFile(filepath.Join(binDir, "python"), []byte(python), 0755); err != nil {
		t.Fatalf("failed to write python stub: %v", err)
	}
}
