package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromValue(t *testing.T) {
	secret, err := Load(Source{Name: "api key", Value: "  s3cr3t  "})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if secret != "s3cr3t" {
		t.Fatalf("expected trimmed secret, got %q", secret)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("s3cr3t\n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	secret, err := Load(Source{Name: "api key", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if secret != "s3cr3t" {
		t.Fatalf("expected trimmed file secret, got %q", secret)
	}
}

func TestLoadFilePrecedesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("from-file"), 0o600); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	secret, err := Load(Source{Name: "api key", Value: "inline", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if secret != "from-file" {
		t.Fatalf("expected the file to win, got %q", secret)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		_, err := Load(Source{Name: "api key"})
		if err == nil || !strings.Contains(err.Error(), "api key") {
			t.Fatalf("expected a named error, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Source{Name: "api key", File: filepath.Join(t.TempDir(), "missing")})
		if err == nil {
			t.Fatalf("expected an error for a missing file")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "key")
		if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		_, err := Load(Source{Name: "api key", File: path})
		if err == nil || !strings.Contains(err.Error(), "empty") {
			t.Fatalf("expected an empty-file error, got %v", err)
		}
	})

	t.Run("unnamed secret", func(t *testing.T) {
		_, err := Load(Source{})
		if err == nil || !strings.Contains(err.Error(), "secret") {
			t.Fatalf("expected the fallback name in the error, got %v", err)
		}
	})
}
