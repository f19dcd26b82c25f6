package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "cfg", "larder.toml")

	out := env.mustRun(t, "config", "init", "--path", target)
	if !strings.Contains(out, target) {
		t.Fatalf("unexpected init output %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}
	if _, _, err := env.run(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config exists without --overwrite")
	}
	env.mustRun(t, "config", "init", "--path", target, "--overwrite")

	stdout, stderr, err := runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v\n%s", err, stderr)
	}
	if !strings.Contains(stdout, "Configuration valid") || !strings.Contains(stdout, "imperial") {
		t.Fatalf("unexpected validate output:\n%s", stdout)
	}
	if strings.Contains(stdout, "did not exist") {
		t.Fatalf("config should have been found:\n%s", stdout)
	}
}

func TestConfigValidateReportsErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := filepath.Join(env.baseDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[display]\nunit_system = \"cubits\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, err := runCLI(t, []string{"config", "validate"}, bad)
	if err == nil || !strings.Contains(err.Error(), "display.unit_system") {
		t.Fatalf("expected unit system error, got %v", err)
	}
	if _, _, err := runCLI(t, []string{"recipe", "list"}, bad); err == nil {
		t.Fatal("commands should fail on invalid config")
	}
}
