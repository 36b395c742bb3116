//go:build !integration

package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr captures stderr output during test execution.
func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestComputeEnabled(t *testing.T) {
	tests := []struct {
		name      string
		debugEnv  string
		namespace string
		enabled   bool
	}{
		{
			name:      "empty DEBUG disables all loggers",
			debugEnv:  "",
			namespace: "jira:client",
			enabled:   false,
		},
		{
			name:      "wildcard enables all loggers",
			debugEnv:  "*",
			namespace: "jira:client",
			enabled:   true,
		},
		{
			name:      "exact match enables logger",
			debugEnv:  "jira:client",
			namespace: "jira:client",
			enabled:   true,
		},
		{
			name:      "exact match different namespace disabled",
			debugEnv:  "jira:client",
			namespace: "validation:fields",
			enabled:   false,
		},
		{
			name:      "prefix wildcard matches namespace",
			debugEnv:  "jira:*",
			namespace: "jira:orchestrator",
			enabled:   true,
		},
		{
			name:      "prefix wildcard does not match other prefix",
			debugEnv:  "jira:*",
			namespace: "cli:create",
			enabled:   false,
		},
		{
			name:      "suffix wildcard matches namespace",
			debugEnv:  "*:client",
			namespace: "jira:client",
			enabled:   true,
		},
		{
			name:      "exclusion takes precedence",
			debugEnv:  "jira:*,-jira:client",
			namespace: "jira:client",
			enabled:   false,
		},
		{
			name:      "exclusion leaves siblings enabled",
			debugEnv:  "jira:*,-jira:client",
			namespace: "jira:orchestrator",
			enabled:   true,
		},
		{
			name:      "multiple namespaces",
			debugEnv:  "cli:create,jira:client",
			namespace: "jira:client",
			enabled:   true,
		},
		{
			name:      "middle wildcard",
			debugEnv:  "jira*client",
			namespace: "jira:client",
			enabled:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := debugEnv
			debugEnv = tt.debugEnv
			defer func() { debugEnv = original }()

			if got := computeEnabled(tt.namespace); got != tt.enabled {
				t.Errorf("computeEnabled(%q) with DEBUG=%q = %v, want %v", tt.namespace, tt.debugEnv, got, tt.enabled)
			}
		})
	}
}

func TestPrintfDisabledProducesNoOutput(t *testing.T) {
	logger := &Logger{namespace: "test:off", enabled: false}

	output := captureStderr(func() {
		logger.Printf("should not appear: %d", 42)
	})

	if output != "" {
		t.Errorf("disabled logger produced output: %q", output)
	}
}

func TestPrintfIncludesNamespaceAndMessage(t *testing.T) {
	logger := New("test:on")
	logger.enabled = true
	logger.color = ""

	output := captureStderr(func() {
		logger.Printf("created issue %s", "PROJ-42")
	})

	if !strings.Contains(output, "test:on") {
		t.Errorf("output missing namespace: %q", output)
	}
	if !strings.Contains(output, "created issue PROJ-42") {
		t.Errorf("output missing message: %q", output)
	}
	if !strings.Contains(output, "+") {
		t.Errorf("output missing duration suffix: %q", output)
	}
}

func TestPrintJoinsArgs(t *testing.T) {
	logger := New("test:print")
	logger.enabled = true
	logger.color = ""

	output := captureStderr(func() {
		logger.Print("connected")
	})

	if !strings.Contains(output, "connected") {
		t.Errorf("output missing message: %q", output)
	}
}

func TestSelectColorStable(t *testing.T) {
	// Color selection must be deterministic per namespace.
	if selectColor("jira:client") != selectColor("jira:client") {
		t.Error("selectColor is not stable for the same namespace")
	}
}
