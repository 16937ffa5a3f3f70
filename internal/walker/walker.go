// Package walker drives depth-first traversal of a store's folder tree.
//
// Traversal is pre-order: a folder's own messages are normalized before any
// of its sub-folders are entered, and sub-folders are visited in the order
// the store returns them. Failures are contained at two levels. A folder
// whose listing fails contributes nothing from its subtree; a message whose
// normalization fails or panics is skipped on its own.
package walker

import (
	"fmt"
	"log/slog"
	"strings"

	"mailcorpus/internal/mailstore"
)

// NormalizeFunc converts one message found under folder path into a record.
// It returns false when the message must be skipped.
type NormalizeFunc[T any] func(msg mailstore.Message, folder string) (T, bool)

// Tally counts what a Walker has visited so far.
type Tally struct {
	Folders        int `json:"folders"`
	FoldersSkipped int `json:"folders_skipped"`
	Items          int `json:"items"`
	ItemsSkipped   int `json:"items_skipped"`
}

// Walker holds the logger and running tally for one run. It is not safe for
// concurrent use.
type Walker struct {
	logger *slog.Logger
	tally  Tally
}

// New creates a Walker.
func New(logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{logger: logger}
}

// Tally returns the counts accumulated across every Walk call.
func (w *Walker) Tally() Tally {
	return w.tally
}

// Walk normalizes every message in the subtree rooted at folder. path is the
// folder's own path, "" for the store root. The result is never nil.
//
// The folder graph must be a tree; cycles are not detected.
func Walk[T any](w *Walker, folder mailstore.Folder, path string, normalize NormalizeFunc[T]) []T {
	out := []T{}
	walk(w, folder, path, normalize, &out)
	return out
}

func walk[T any](w *Walker, folder mailstore.Folder, path string, normalize NormalizeFunc[T], out *[]T) {
	msgs, subs, err := list(folder)
	if err != nil {
		w.tally.FoldersSkipped++
		w.logger.Warn("skipping folder", "folder", path, "error", err)
		return
	}
	w.tally.Folders++
	w.logger.Debug("processing folder", "folder", path, "messages", len(msgs), "subfolders", len(subs))

	for i, msg := range msgs {
		item, ok := visit(w, msg, path, i, normalize)
		if !ok {
			w.tally.ItemsSkipped++
			continue
		}
		*out = append(*out, item)
		w.tally.Items++
	}

	for _, sub := range subs {
		walk(w, sub, ChildPath(path, FolderName(sub)), normalize, out)
	}
}

// list reads both listings of folder up front so that a failure in either
// one skips the folder before any of its items are emitted.
func list(folder mailstore.Folder) (msgs []mailstore.Message, subs []mailstore.Folder, err error) {
	defer func() {
		if r := recover(); r != nil {
			msgs, subs, err = nil, nil, fmt.Errorf("folder listing panicked: %v", r)
		}
	}()

	msgs, err = folder.Messages()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list messages: %w", err)
	}
	subs, err = folder.SubFolders()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sub-folders: %w", err)
	}
	return msgs, subs, nil
}

func visit[T any](w *Walker, msg mailstore.Message, path string, index int, normalize NormalizeFunc[T]) (item T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn("item processing panicked", "folder", path, "index", index, "panic", r)
			var zero T
			item, ok = zero, false
		}
	}()
	return normalize(msg, path)
}

// ChildPath joins a folder name onto its parent's path.
func ChildPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// FolderName returns the display name of folder, or "" when it cannot be
// read.
func FolderName(folder mailstore.Folder) (name string) {
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()
	o, err := folder.Name()
	if err != nil {
		return ""
	}
	if t, ok := o.Get(); ok {
		return t.String()
	}
	return ""
}

// Find searches the tree under root depth-first for the first folder whose
// name matches one of names, ignoring case. root itself is a candidate. It
// returns the folder and its path. Folders whose sub-folders cannot be
// listed are not descended into.
func Find(root mailstore.Folder, names ...string) (mailstore.Folder, string, bool) {
	return find(root, "", names)
}

func find(folder mailstore.Folder, path string, names []string) (mailstore.Folder, string, bool) {
	if matches(FolderName(folder), names) {
		return folder, path, true
	}
	for _, sub := range subFolders(folder) {
		if f, p, ok := find(sub, ChildPath(path, FolderName(sub)), names); ok {
			return f, p, true
		}
	}
	return nil, "", false
}

func subFolders(folder mailstore.Folder) (subs []mailstore.Folder) {
	defer func() {
		if recover() != nil {
			subs = nil
		}
	}()
	subs, err := folder.SubFolders()
	if err != nil {
		return nil
	}
	return subs
}

func matches(name string, names []string) bool {
	if name == "" {
		return false
	}
	for _, n := range names {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}
