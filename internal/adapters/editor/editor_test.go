package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeEditor writes a script that appends a line to the file it is given
func fakeEditor(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor")
	}
	path := filepath.Join(t.TempDir(), "fake-editor")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestEdit(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		initial string
		want    string
		wantErr bool
	}{
		{name: "append", script: `printf 'second\n' >> "$1"`, initial: "first\n", want: "first\nsecond\n"},
		{name: "unchanged", script: `true`, initial: "same", want: "same"},
		{name: "editor fails", script: `exit 3`, initial: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", fakeEditor(t, tt.script))

			got, err := New().Edit(tt.initial)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFindEditor_PrefersEnv(t *testing.T) {
	t.Setenv("EDITOR", "my-editor")
	t.Setenv("VISUAL", "other")
	if got := findEditor(); got != "my-editor" {
		t.Errorf("expected $EDITOR, got %q", got)
	}

	t.Setenv("EDITOR", "")
	if got := findEditor(); got != "other" {
		t.Errorf("expected $VISUAL fallback, got %q", got)
	}
}
