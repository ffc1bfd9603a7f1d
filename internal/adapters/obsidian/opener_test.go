package obsidian

import (
	"errors"
	"os/exec"
	"path/filepath"
	"slices"
	"testing"
)

func TestLink(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "home", "ana", "My Trips")

	tests := []struct {
		name    string
		file    string
		want    string
		wantErr bool
	}{
		{
			name: "country readme",
			file: filepath.Join(root, "Peru", "README.md"),
			want: "obsidian://open?file=Peru%2FREADME.md&vault=My+Trips",
		},
		{
			name: "page",
			file: filepath.Join(root, "Peru", "Cusco", "01 Arrival.md"),
			want: "obsidian://open?file=Peru%2FCusco%2F01+Arrival.md&vault=My+Trips",
		},
		{
			name: "dot-prefixed name stays inside",
			file: filepath.Join(root, "..notes.md"),
			want: "obsidian://open?file=..notes.md&vault=My+Trips",
		},
		{
			name:    "outside the export",
			file:    filepath.Join(root, "..", "other.md"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Link(root, tt.file)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Link() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLauncher(t *testing.T) {
	tests := []struct {
		goos     string
		wantArgs []string
		wantErr  bool
	}{
		{goos: "darwin", wantArgs: []string{"open", "obsidian://x"}},
		{goos: "linux", wantArgs: []string{"xdg-open", "obsidian://x"}},
		{goos: "windows", wantArgs: []string{"cmd", "/c", "start", "", "obsidian://x"}},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			var ran []string
			l := &Launcher{goos: tt.goos, run: func(cmd *exec.Cmd) error {
				ran = cmd.Args
				return nil
			}}

			err := l.Launch("obsidian://x")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(ran, tt.wantArgs) {
				t.Errorf("ran %q, want %q", ran, tt.wantArgs)
			}
		})
	}
}

func TestLauncher_HandlerFails(t *testing.T) {
	l := &Launcher{goos: "linux", run: func(*exec.Cmd) error { return errors.New("exit status 4") }}
	if err := l.Launch("obsidian://x"); err == nil {
		t.Fatal("expected error when the handler fails")
	}
}
