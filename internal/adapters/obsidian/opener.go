// Package obsidian opens exported journals in Obsidian. An export folder is
// a valid vault as-is; Obsidian names a vault after its folder.
package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Link returns the obsidian:// URI that opens file inside the vault at root
func Link(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file is outside the export: %s", file)
	}

	q := url.Values{}
	q.Set("vault", filepath.Base(filepath.Clean(root)))
	q.Set("file", filepath.ToSlash(rel))
	return "obsidian://open?" + q.Encode(), nil
}

// Launcher hands URIs to the platform's URL handler
type Launcher struct {
	goos string
	run  func(*exec.Cmd) error
}

// NewLauncher creates a launcher for the running platform
func NewLauncher() *Launcher {
	return &Launcher{goos: runtime.GOOS, run: (*exec.Cmd).Run}
}

// Launch opens uri and waits for the handler to exit
func (l *Launcher) Launch(uri string) error {
	var cmd *exec.Cmd
	switch l.goos {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux", "freebsd", "openbsd":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", l.goos)
	}
	if err := l.run(cmd); err != nil {
		return fmt.Errorf("failed to launch %s: %w", cmd.Args[0], err)
	}
	return nil
}
