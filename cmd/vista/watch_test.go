package main

import (
	"strings"
	"testing"
)

func watchArgs(layoutPath, target, timeout string) []string {
	return []string{
		"watch",
		"-l", layoutPath,
		"-t", target,
		"-c", "",
		"--debounce", "0s",
		"--timeout", timeout,
		"--verbose=false",
	}
}

func TestRunWatch_AlreadyVisible(t *testing.T) {
	path := writeTemp(t, "layout.yaml", "viewport_height: 800\nelements:\n  hero: {top: 100, bottom: 200}\n")

	out, err := execute(t, watchArgs(path, "hero", "2s")...)
	if err != nil {
		t.Fatalf("watch command error = %v", err)
	}
	if !strings.Contains(out, "hero visible (top=100 bottom=200, viewport 800) via poll") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunWatch_Timeout(t *testing.T) {
	path := writeTemp(t, "layout.yaml", "viewport_height: 800\nelements:\n  hero: {top: 900, bottom: 950}\n")

	_, err := execute(t, watchArgs(path, "hero", "100ms")...)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "hero not visible within 100ms") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestRunWatch_InvalidLayout(t *testing.T) {
	path := writeTemp(t, "layout.yaml", "elements: [")

	_, err := execute(t, watchArgs(path, "hero", "1s")...)
	if err == nil || !strings.Contains(err.Error(), "invalid layout") {
		t.Errorf("expected invalid layout error, got %v", err)
	}
}
