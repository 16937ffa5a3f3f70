// Package dirstore exposes a directory tree of RFC 5322 messages as a mail
// store.
//
// Each directory is a folder. Files ending in .eml are the folder's
// messages, in file name order. Each .mbox file is a sub-folder named after
// the file, holding the messages it contains in file order. Sub-directories
// and mbox files are listed together in name order. Hidden entries are
// ignored.
package dirstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/emersion/go-mbox"

	"mailcorpus/internal/mailstore"
)

// Format names this back-end in mailstore.StoreInfo.
const Format = "directory"

const (
	emlExt  = ".eml"
	mboxExt = ".mbox"
)

// Opener opens directory stores. It implements mailstore.Opener.
type Opener struct{}

// Handles reports whether path is a directory.
func (Opener) Handles(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Open opens the directory at path.
func (Opener) Open(ctx context.Context, path string) (mailstore.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("open %s: %w", path, mailstore.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", path, mailstore.ErrCorrupt, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("open %s: not a directory: %w", path, mailstore.ErrUnsupported)
	}
	if _, err := os.ReadDir(path); err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", path, mailstore.ErrCorrupt, err)
	}

	return &Store{path: path, size: treeSize(path)}, nil
}

// treeSize sums the sizes of the message files under root. Unreadable
// entries are not counted.
func treeSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isMessageFile(d.Name()) {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}

func isMessageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == emlExt || ext == mboxExt
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Store is an opened directory store.
type Store struct {
	path string
	size int64
}

// Info implements mailstore.Store.
func (s *Store) Info() mailstore.StoreInfo {
	return mailstore.StoreInfo{Format: Format, Path: s.path, Size: s.size}
}

// RootFolder returns the top directory itself. Like a container root it
// has an empty name.
func (s *Store) RootFolder() (mailstore.Folder, error) {
	return &dirFolder{path: s.path}, nil
}

// Close implements mailstore.Store. Files are only held open while a folder
// is being listed.
func (s *Store) Close() error {
	return nil
}

type dirFolder struct {
	path string
	name string
}

func (f *dirFolder) Name() (mailstore.Optional[mailstore.Text], error) {
	return mailstore.SomeString(f.name), nil
}

func (f *dirFolder) SubFolders() ([]mailstore.Folder, error) {
	entries, err := os.ReadDir(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", f.path, err)
	}

	out := []mailstore.Folder{}
	for _, e := range entries {
		name := e.Name()
		if hidden(name) {
			continue
		}
		full := filepath.Join(f.path, name)
		switch {
		case e.IsDir():
			out = append(out, &dirFolder{path: full, name: name})
		case strings.EqualFold(filepath.Ext(name), mboxExt):
			out = append(out, &mboxFolder{path: full, name: strings.TrimSuffix(name, filepath.Ext(name))})
		}
	}
	return out, nil
}

func (f *dirFolder) Messages() ([]mailstore.Message, error) {
	entries, err := os.ReadDir(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", f.path, err)
	}

	out := []mailstore.Message{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || hidden(name) || !strings.EqualFold(filepath.Ext(name), emlExt) {
			continue
		}
		out = append(out, readEML(filepath.Join(f.path, name)))
	}
	return out, nil
}

// readEML loads one message file. A file that cannot be read still yields a
// message; its accessors report the read error.
func readEML(path string) mailstore.Message {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &item{err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	m := parse(raw)
	if info, err := os.Stat(path); err == nil {
		m.modified = mailstore.Some(info.ModTime().UTC())
	}
	return m
}

type mboxFolder struct {
	path string
	name string
}

func (f *mboxFolder) Name() (mailstore.Optional[mailstore.Text], error) {
	return mailstore.SomeString(f.name), nil
}

func (f *mboxFolder) SubFolders() ([]mailstore.Folder, error) {
	return []mailstore.Folder{}, nil
}

// Messages splits the mbox file. A file that cannot be opened or split is a
// listing failure for the whole folder.
func (f *mboxFolder) Messages() ([]mailstore.Message, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	out := []mailstore.Message{}
	r := mbox.NewReader(file)
	for {
		mr, err := r.NextMessage()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to split %s: %w", f.path, err)
		}
		raw, err := io.ReadAll(mr)
		if err != nil {
			return nil, fmt.Errorf("failed to read message %d of %s: %w", len(out), f.path, err)
		}
		out = append(out, parse(raw))
	}
	return out, nil
}
