package diskv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKV_GetMissing(t *testing.T) {
	kv := New(t.TempDir())

	val, ok, err := kv.Get("travel-journal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || val != "" {
		t.Errorf("expected missing key, got %q (ok=%v)", val, ok)
	}
}

func TestKV_SetThenGet(t *testing.T) {
	dir := t.TempDir()
	kv := New(dir)

	tests := []struct {
		name  string
		value string
	}{
		{name: "initial", value: `{"countries":[]}`},
		{name: "overwrite", value: `{"countries":[],"activeCountry":"fr"}`},
		{name: "empty", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := kv.Set("travel-journal", tt.value); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, ok, err := kv.Get("travel-journal")
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if got != tt.value {
				t.Errorf("expected %q, got %q", tt.value, got)
			}
		})
	}

	// a second store over the same directory sees the value
	got, ok, err := New(dir).Get("travel-journal")
	if err != nil || !ok || got != "" {
		t.Errorf("expected persisted empty value, got %q ok=%v err=%v", got, ok, err)
	}
}

func TestKV_FlatLayout(t *testing.T) {
	dir := t.TempDir()
	if err := New(dir).Set("travel-journal", "{}"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "travel-journal")); err != nil {
		t.Errorf("expected file at the base path: %v", err)
	}
}
