package main

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	cmd := rootCmd

	if cmd == nil {
		t.Fatal("Expected root command to be created")
	}

	if cmd.Use != "mortgagetracker" {
		t.Errorf("Expected root command use to be 'mortgagetracker', got %s", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected root command to have a short description")
	}

	if cmd.Long == "" {
		t.Error("Expected root command to have a long description")
	}
}

func TestRootCommand_Help(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	cmd.SetOutput(&buf)

	if err := cmd.Execute(); err != nil {
		t.Errorf("Expected no error for --help, got %v", err)
	}

	output := buf.String()
	if output == "" {
		t.Error("Expected root command to show help/usage")
	}

	for _, sub := range []string{"calculate", "schedule", "compare", "breakeven", "report", "validate", "version"} {
		if !bytes.Contains([]byte(output), []byte(sub)) {
			t.Errorf("Expected help to list the %s command", sub)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := versionCmd()

	if cmd.Use != "version" {
		t.Errorf("Expected version command use to be 'version', got %s", cmd.Use)
	}
}
