// Package export serializes a corpus as a JSON tree document and an emails
// CSV table.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"mailcorpus/internal/corpus"
	"mailcorpus/internal/fsutil"
	"mailcorpus/internal/textutil"
)

// ErrSerialize is wrapped by every error Write returns.
var ErrSerialize = errors.New("serialization failed")

// StampLayout formats the timestamp embedded in output file names.
const StampLayout = "20060102_150405"

// CSVColumns is the header of the emails table.
var CSVColumns = []string{
	"id", "folder", "subject", "sender_name", "sender_email",
	"delivery_time", "size", "attachments_count",
}

// Stamp renders t for use in output file names.
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// Paths lists the files a Write produced. A field is empty when that output
// failed.
type Paths struct {
	JSON string
	CSV  string
}

// Writer writes the outputs of one run into a directory.
type Writer struct {
	dir    string
	stamp  string
	logger *slog.Logger
}

// NewWriter creates a Writer for dir. stamp is embedded in file names.
func NewWriter(dir, stamp string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, stamp: stamp, logger: logger}
}

// JSONPath returns the path of the tree document.
func (w *Writer) JSONPath() string {
	return filepath.Join(w.dir, "analysis_"+w.stamp+".json")
}

// CSVPath returns the path of the emails table.
func (w *Writer) CSVPath() string {
	return filepath.Join(w.dir, "emails_"+w.stamp+".csv")
}

// Write produces both outputs. A failure of one does not prevent the other;
// the returned error joins every failure. Both files are written even for an
// empty corpus.
func (w *Writer) Write(r *corpus.Result) (Paths, error) {
	var paths Paths
	var errs []error

	if err := w.WriteJSON(r); err != nil {
		w.logger.Error("failed to write tree document", "path", w.JSONPath(), "error", err)
		errs = append(errs, err)
	} else {
		paths.JSON = w.JSONPath()
		w.logger.Info("tree document written", "path", paths.JSON)
	}

	if err := w.WriteCSV(r.Emails); err != nil {
		w.logger.Error("failed to write emails table", "path", w.CSVPath(), "error", err)
		errs = append(errs, err)
	} else {
		paths.CSV = w.CSVPath()
		w.logger.Info("emails table written", "path", paths.CSV, "rows", len(r.Emails))
	}

	return paths, errors.Join(errs...)
}

// WriteJSON writes the tree document.
func (w *Writer) WriteJSON(r *corpus.Result) error {
	data, err := EncodeJSON(r)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(w.JSONPath(), data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return nil
}

// WriteCSV writes the emails table.
func (w *Writer) WriteCSV(emails []corpus.Email) error {
	data, err := EncodeCSV(emails)
	if err != nil {
		return err
	}
	if err := fsutil.WriteFileAtomic(w.CSVPath(), data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return nil
}

// EncodeJSON renders r as an indented JSON document with non-ASCII text
// kept literal.
func EncodeJSON(r *corpus.Result) ([]byte, error) {
	clean := Sanitize(*r)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(clean); err != nil {
		return nil, fmt.Errorf("%w: failed to encode tree: %w", ErrSerialize, err)
	}
	return buf.Bytes(), nil
}

// EncodeCSV renders one row per email under CSVColumns. attachments_count
// is derived from the email's attachment list.
func EncodeCSV(emails []corpus.Email) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(CSVColumns); err != nil {
		return nil, fmt.Errorf("%w: failed to write header: %w", ErrSerialize, err)
	}
	for _, e := range emails {
		row := []string{
			e.ID,
			textutil.Clean(e.Folder),
			textutil.Clean(e.Subject),
			textutil.Clean(e.SenderName),
			textutil.Clean(e.SenderEmail),
			e.DeliveryTime,
			strconv.FormatInt(e.Size, 10),
			strconv.Itoa(len(e.Attachments)),
		}
		if err := cw.Write(row); err != nil {
			return nil, fmt.Errorf("%w: failed to write row %s: %w", ErrSerialize, e.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return buf.Bytes(), nil
}
