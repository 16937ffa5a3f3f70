package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mailcorpus/internal/dirstore"
	"mailcorpus/internal/mailstore"
	"mailcorpus/internal/storage"
)

func TestRegistry_Open(t *testing.T) {
	dir := t.TempDir()

	dbPath := filepath.Join(dir, "store.db")
	db, err := storage.New(dbPath)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}
	_ = db.Close()

	mailDir := filepath.Join(dir, "maildir")
	if err := os.Mkdir(mailDir, 0o755); err != nil {
		t.Fatal(err)
	}
	pst := filepath.Join(dir, "outlook.pst")
	if err := os.WriteFile(pst, []byte("!BDN"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		wantFormat string
		wantErr    error
	}{
		{name: "sqlite file", path: dbPath, wantFormat: storage.Format},
		{name: "directory", path: mailDir, wantFormat: dirstore.Format},
		{name: "unknown format", path: pst, wantErr: mailstore.ErrUnsupported},
		{name: "missing", path: filepath.Join(dir, "missing.db"), wantErr: mailstore.ErrNotFound},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := r.Open(context.Background(), tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer func() {
				_ = s.Close()
			}()
			if got := s.Info().Format; got != tt.wantFormat {
				t.Errorf("Info().Format = %q, want %q", got, tt.wantFormat)
			}
		})
	}
}

func TestRegistry_Handles(t *testing.T) {
	dir := t.TempDir()
	r := Default()

	if !r.Handles(dir) {
		t.Error("Handles(dir) = false, want true")
	}
	if !r.Handles(filepath.Join(dir, "x.sqlite")) {
		t.Error("Handles(x.sqlite) = false, want true")
	}
	if r.Handles(filepath.Join(dir, "x.pst")) {
		t.Error("Handles(x.pst) = true, want false")
	}
	if New().Handles(dir) {
		t.Error("empty registry handles a path")
	}
}
