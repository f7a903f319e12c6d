package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCLIValidProduct(t *testing.T) {
	path := writeFile(t, "good.json", `{"type":"GLAZING","subtype":"MONOLITHIC","token_type":"PROPOSED"}`)
	var stdout, stderr bytes.Buffer
	if code := cli([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "All products valid.") {
		t.Fatalf("missing success line: %s", stdout.String())
	}
}

func TestCLIInvalidEnum(t *testing.T) {
	path := writeFile(t, "bad.json", `{"type":"WINDOW"}`)
	var stdout, stderr bytes.Buffer
	if code := cli([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "decode product") {
		t.Fatalf("expected decode error, got: %s", stderr.String())
	}
}

func TestCLIRuleViolation(t *testing.T) {
	path := writeFile(t, "coated.json", `{
		"type":"GLAZING","subtype":"COATED","token_type":"PROPOSED",
		"physical_properties":{"predefined_tir_front":0.5}
	}`)
	var stdout, stderr bytes.Buffer
	if code := cli([]string{path}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stdout.String(), "predefined_thermal_values") {
		t.Fatalf("expected violation report on stdout, got: %s", stdout.String())
	}
}

func TestCLIUsageWithoutArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := cli(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "usage:") {
		t.Fatalf("expected usage line, got: %s", stderr.String())
	}
}

func TestCLIMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := cli([]string{filepath.Join(t.TempDir(), "absent.json")}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
}
