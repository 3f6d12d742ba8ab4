package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestDBCmd_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"db", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("db --help failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Database management") {
		t.Errorf("expected help to mention 'Database management', got: %s", out)
	}
	for _, sub := range []string{"init", "reset", "seed"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected help to list %q subcommand, got: %s", sub, out)
		}
	}
}

func TestDBInitCmd_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"db", "init", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("db init --help failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "MySQL database") {
		t.Errorf("expected help to mention 'MySQL database', got: %s", out)
	}
	if !strings.Contains(out, "chantier.yaml") {
		t.Errorf("expected default config path 'chantier.yaml', got: %s", out)
	}
	if !strings.Contains(out, "--demo") {
		t.Errorf("expected help to mention '--demo' flag, got: %s", out)
	}
}

func TestDBInitCmd_MissingConfig(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"db", "init", "--config", "/nonexistent/chantier.yaml"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Errorf("expected 'load config' in error, got: %v", err)
	}
}

func TestDBResetCmd_Declined(t *testing.T) {
	dir := t.TempDir()
	cfgPath := dir + "/chantier.yaml"
	writeFile(t, cfgPath, "admin:\n  email: admin@chantier.example\n")

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader("no\n"))
	cmd.SetArgs([]string{"db", "reset", "--config", cfgPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("db reset failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Aborted.") {
		t.Errorf("expected declined reset to abort, got: %s", buf.String())
	}
}
