// Package editor edits page content in the user's terminal editor
package editor

import (
	"fmt"
	"os"
	"os/exec"

	"diario/internal/ports"
)

// Editor implements ports.ContentEditor by round-tripping content through a
// temporary file opened in $EDITOR
type Editor struct {
	// Ext is the temp file extension, which lets editors pick a syntax
	Ext string
}

// Ensure Editor implements ContentEditor
var _ ports.ContentEditor = (*Editor)(nil)

// New creates an editor for markdown content
func New() *Editor {
	return &Editor{Ext: ".md"}
}

// Edit writes content to a temp file, waits for the editor to exit and
// returns the file's new content
func (e *Editor) Edit(content string) (string, error) {
	f, err := os.CreateTemp("", "diario-*"+e.Ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	cmd, err := e.Command(path)
	if err != nil {
		return "", err
	}
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited content: %w", err)
	}
	return string(edited), nil
}

// Command returns an exec.Cmd for opening path in the editor
func (e *Editor) Command(path string) (*exec.Cmd, error) {
	editor := findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
