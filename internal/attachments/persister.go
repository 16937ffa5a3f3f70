// Package attachments writes attachment payloads under a run's output
// directory.
package attachments

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"mailcorpus/internal/fsutil"
	"mailcorpus/internal/mailstore"
)

// DirName is the directory under the output root that holds payloads.
const DirName = "attachments"

// Persister saves attachment payloads to <root>/attachments/<owner>/<name>.
// A Persister belongs to one run and is not safe for concurrent use.
type Persister struct {
	root    string
	logger  *slog.Logger
	claimed map[string]struct{}
}

// NewPersister creates a Persister rooted at outputRoot.
func NewPersister(outputRoot string, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{
		root:    outputRoot,
		logger:  logger,
		claimed: make(map[string]struct{}),
	}
}

// Persist writes the payload of att and returns the written path. It returns
// false when there is no payload or the write fails; it never leaves a
// partially written file behind.
func (p *Persister) Persist(att mailstore.Attachment, ownerID string, index int) (string, bool) {
	declared := ""
	if name, err := att.Name(); err == nil {
		if v, ok := name.Get(); ok {
			declared = v.String()
		}
	}

	data, err := att.Data()
	if err != nil {
		p.logger.Warn("attachment payload unreadable", "email_id", ownerID, "index", index, "error", err)
		return "", false
	}
	if len(data) == 0 {
		p.logger.Debug("attachment has no payload", "email_id", ownerID, "index", index)
		return "", false
	}

	dir := filepath.Join(p.root, DirName, ownerID)
	target := filepath.Join(dir, p.claim(dir, SanitizeFilename(declared, index), index))

	if err := fsutil.WriteFileAtomic(target, data, 0o644); err != nil {
		p.logger.Warn("failed to save attachment", "email_id", ownerID, "index", index, "path", target, "error", err)
		return "", false
	}
	return target, true
}

// claim reserves a file name inside dir for this run. A name already taken by
// an earlier attachment gets the index inserted before its extension, then a
// counter until the name is free.
func (p *Persister) claim(dir, name string, index int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for n := 0; ; n++ {
		switch n {
		case 0:
		case 1:
			candidate = stem + "_" + strconv.Itoa(index) + ext
		default:
			candidate = stem + "_" + strconv.Itoa(index) + "_" + strconv.Itoa(n-1) + ext
		}
		key := filepath.Join(dir, candidate)
		if _, taken := p.claimed[key]; !taken {
			p.claimed[key] = struct{}{}
			return candidate
		}
	}
}

// SanitizeFilename keeps letters, digits, space, '-', '_' and '.', trims
// trailing spaces, and falls back to attachment_<index> when nothing usable
// remains.
func SanitizeFilename(name string, index int) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '-' || r == '_' || r == '.' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimRight(b.String(), " ")
	if strings.Trim(safe, ".") == "" {
		return fmt.Sprintf("attachment_%d", index)
	}
	return safe
}
