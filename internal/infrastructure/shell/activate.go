package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScriptPath returns the activation script location for a shell profile.
func ScriptPath(home, shellName string) string {
	profile, ok := profiles[shellName]
	if !ok {
		profile = profiles["bash"]
	}
	return filepath.Join(home, profile.Script)
}

// WriteActivation writes the sourceable activation script for a shell and
// returns its path. The script marks the environment active and decorates
// the prompt with the ward prefix.
func WriteActivation(home, shellName string) (string, error) {
	profile, ok := profiles[shellName]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q", shellName)
	}

	var b strings.Builder
	switch shellName {
	case "fish":
		b.WriteString("#!/usr/bin/env fish\n")
	case "csh", "tcsh":
		b.WriteString("#!/bin/csh\n")
	default:
		b.WriteString("#!/bin/bash\n")
	}
	b.WriteString("# Ward environment activation\n")
	if shellName == "csh" || shellName == "tcsh" {
		b.WriteString("setenv WARD_ACTIVE true\n")
	} else {
		b.WriteString("export WARD_ACTIVE=true\n")
	}
	for _, line := range profile.ActivationLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(`echo "Ward environment activated"` + "\n")
	b.WriteString(`echo "Run 'ward deactivate' to restore the original prompt"` + "\n")

	path := ScriptPath(home, shellName)
	// the script is meant to be sourced and executed by the user
	if err := os.WriteFile(path, []byte(b.String()), 0755); err != nil { // #nosec G306
		return "", fmt.Errorf("write activation script: %w", err)
	}
	return path, nil
}

// RemoveActivation deletes the activation script if present.
func RemoveActivation(home, shellName string) error {
	path := ScriptPath(home, shellName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove activation script: %w", err)
	}
	return nil
}
