package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"mailcorpus/internal/contextutil"
)

// outputSuffix marks the per-store output directories ScanDirectory creates
// next to the stores when no output root is given.
const outputSuffix = "_analysis"

// Matcher reports whether a path is a store an Opener can read.
type Matcher interface {
	Handles(path string) bool
}

// ScanDirectory analyzes every store directly inside dir, one after the
// other, and returns the paths that succeeded. When the Analyzer's opener is
// a Matcher only the entries it handles are tried; otherwise every
// non-hidden entry is.
//
// Each store gets its own output directory: outputRoot/<name> or, when
// outputRoot is empty, dir/<name>_analysis. Those output directories, and
// outputRoot itself when it sits inside dir, are never scanned as stores.
// A failed run does not stop the scan.
func (a *Analyzer) ScanDirectory(ctx context.Context, dir, outputRoot string) []string {
	logger := contextutil.LoggerFromContext(ctx)
	processed := []string{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read directory", "dir", dir, "error", err)
		return processed
	}

	matcher, _ := a.opener.(Matcher)
	var candidates []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if e.IsDir() && (strings.HasSuffix(e.Name(), outputSuffix) || samePath(path, outputRoot)) {
			logger.DebugContext(ctx, "skipping output directory", "path", path)
			continue
		}
		if matcher != nil && !matcher.Handles(path) {
			continue
		}
		candidates = append(candidates, path)
	}
	if len(candidates) == 0 {
		logger.WarnContext(ctx, "no stores found", "dir", dir)
		return processed
	}
	logger.InfoContext(ctx, "stores found", "dir", dir, "count", len(candidates))

	for _, path := range candidates {
		out := outputDirFor(path, outputRoot)
		if a.Analyze(ctx, path, out) {
			processed = append(processed, path)
			logger.InfoContext(ctx, "store processed", "source", path, "output", out)
		} else {
			logger.WarnContext(ctx, "store failed", "source", path)
		}
	}
	return processed
}

func outputDirFor(path, outputRoot string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if outputRoot == "" {
		return filepath.Join(filepath.Dir(path), stem+outputSuffix)
	}
	return filepath.Join(outputRoot, stem)
}

func samePath(a, b string) bool {
	if b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
