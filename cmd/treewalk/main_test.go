package main

import (
	"testing"

	"github.com/harrison/treewalk/internal/cmd"
)

func TestRootCommandName(t *testing.T) {
	root := cmd.NewRootCommand()
	if root.Name() != "treewalk" {
		t.Errorf("Expected command name 'treewalk', got '%s'", root.Name())
	}
}

func TestVersionExists(t *testing.T) {
	if cmd.Version == "" {
		t.Error("Version should not be empty")
	}
}
