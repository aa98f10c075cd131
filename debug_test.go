package thicket

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestDebugModeDisposedChildPanics(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	parent := NewContainer("parent")
	child := NewContainer("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AppendChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AppendChild(child)
}

func TestDebugModeDisposedParentPanics(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on AppendChild to disposed parent")
		}
	}()

	parent.AppendChild(NewContainer("child"))
}

func TestDebugModeWarnsOnWideNodes(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)
	SetDebugMode(true)
	defer SetDebugMode(false)

	p := NewContainer("wide")
	for i := 0; i <= debugMaxChildCount; i++ {
		p.AppendChild(NewContainer("c"))
	}

	if !strings.Contains(buf.String(), "too many children") {
		t.Errorf("expected a warning, log was: %q", buf.String())
	}
}

func TestTrimIsLoggedAtDebug(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	p := NewContainer("p")
	p.AppendChild(NewContainer("a"))
	p.AppendChild(NewContainer("b"))
	p.truncateChildren(1)

	if !strings.Contains(buf.String(), "count=1") {
		t.Errorf("expected trim record, log was: %q", buf.String())
	}
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestDumpTree(t *testing.T) {
	root := NewContainer("root")
	label := NewTextNode("label")
	label.SetRole(LabelRoleText)
	label.Text.SetTextData("42", Rect{0, 0, 20, 10}, newFixedFont(), TextOptions{}, DefaultTextColors, AlignLeft, TextNormal)
	ext := NewContainer("ext")
	ext.Owned = false
	root.AppendChild(label)
	root.AppendChild(ext)

	out := DumpTree(root)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "  ") || !strings.Contains(lines[1], `text="42"`) {
		t.Errorf("label line = %q", lines[1])
	}
	if !strings.Contains(lines[1], "role=1") {
		t.Errorf("label line should show role: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "external") {
		t.Errorf("external line = %q", lines[2])
	}
}
