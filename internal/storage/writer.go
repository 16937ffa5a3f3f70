package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"mailcorpus/internal/mailstore"
)

// DumpStats counts the rows a Dump wrote.
type DumpStats struct {
	Folders     int `json:"folders"`
	Messages    int `json:"messages"`
	Recipients  int `json:"recipients"`
	Attachments int `json:"attachments"`
	// Skipped counts messages left out because an identity attribute could
	// not be read.
	Skipped int `json:"skipped"`
}

// Writer copies stores into a database created by Migrate.
type Writer struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewWriter creates a Writer.
func NewWriter(db *sqlx.DB, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{db: db, logger: logger}
}

// Dump copies every folder, message, recipient and attachment of src in a
// single transaction. The root itself is not stored; its sub-folders become
// top-level rows. Attributes that cannot be read are written as NULL.
// A folder whose listing fails is written without the part that failed.
func (w *Writer) Dump(ctx context.Context, src mailstore.Store) (DumpStats, error) {
	var stats DumpStats

	root, err := src.RootFolder()
	if err != nil {
		return stats, fmt.Errorf("failed to read root folder: %w", err)
	}

	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	d := dump{tx: tx, ctx: ctx, logger: w.logger, stats: &stats}
	if err := d.rootMessages(root); err != nil {
		return stats, err
	}
	subs, err := root.SubFolders()
	if err != nil {
		return stats, fmt.Errorf("failed to list top-level folders: %w", err)
	}
	for i, sub := range subs {
		if err := d.folder(sub, nil, i); err != nil {
			return stats, err
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit: %w", err)
	}
	return stats, nil
}

type dump struct {
	tx     *sqlx.Tx
	ctx    context.Context
	logger *slog.Logger
	stats  *DumpStats
}

func (d dump) folder(f mailstore.Folder, parent *int64, position int) error {
	name := d.text(f.Name())
	res, err := d.tx.ExecContext(d.ctx,
		"INSERT INTO folders (parent_id, name, position) VALUES (?, ?, ?)", parent, name, position)
	if err != nil {
		return fmt.Errorf("failed to insert folder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get folder id: %w", err)
	}
	d.stats.Folders++

	msgs, err := f.Messages()
	if err != nil {
		d.logger.Warn("skipping folder messages", "folder", name, "error", err)
	}
	for i, m := range msgs {
		if err := d.message(m, id, i); err != nil {
			return err
		}
	}

	subs, err := f.SubFolders()
	if err != nil {
		d.logger.Warn("skipping sub-folders", "folder", name, "error", err)
	}
	for i, sub := range subs {
		if err := d.folder(sub, &id, i); err != nil {
			return err
		}
	}
	return nil
}

// rootMessages stores messages held by the root itself in an unnamed
// top-level folder placed before every other one. Items read back from it
// keep the root path.
func (d dump) rootMessages(root mailstore.Folder) error {
	msgs, err := root.Messages()
	if err != nil {
		d.logger.Warn("skipping root messages", "error", err)
		return nil
	}
	if len(msgs) == 0 {
		return nil
	}

	res, err := d.tx.ExecContext(d.ctx,
		"INSERT INTO folders (parent_id, name, position) VALUES (NULL, '', -1)")
	if err != nil {
		return fmt.Errorf("failed to insert root folder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get folder id: %w", err)
	}
	d.stats.Folders++

	for i, m := range msgs {
		if err := d.message(m, id, i); err != nil {
			return err
		}
	}
	return nil
}

func (d dump) message(m mailstore.Message, folderID int64, position int) error {
	if err := identityErr(m); err != nil {
		d.logger.Warn("skipping message with unreadable identity", "folder_id", folderID, "position", position, "error", err)
		d.stats.Skipped++
		return nil
	}

	res, err := d.tx.ExecContext(d.ctx, `INSERT INTO messages (
			folder_id, position, subject, sender_name, sender_email, body_plain, body_html,
			delivery_time, creation_time, modification_time, size,
			message_class, priority, importance, categories, is_read
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		folderID, position,
		d.text(m.Subject()),
		d.text(m.SenderName()),
		d.text(m.SenderEmail()),
		d.blob(m.PlainTextBody()),
		d.blob(m.HTMLBody()),
		d.time(m.DeliveryTime()),
		d.time(m.CreationTime()),
		d.time(m.ModificationTime()),
		value(m.Size()),
		d.text(m.MessageClass()),
		d.text(m.Priority()),
		d.text(m.Importance()),
		d.text(m.Categories()),
		value(m.IsRead()),
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get message id: %w", err)
	}
	d.stats.Messages++

	recips, err := m.Recipients()
	if err != nil {
		d.logger.Debug("recipients unreadable", "message_id", id, "error", err)
	}
	for i, r := range recips {
		_, err := d.tx.ExecContext(d.ctx,
			"INSERT INTO recipients (message_id, position, name, address, type) VALUES (?, ?, ?, ?, ?)",
			id, i, d.text(r.Name()), d.text(r.Address()), d.text(r.Type()))
		if err != nil {
			return fmt.Errorf("failed to insert recipient: %w", err)
		}
		d.stats.Recipients++
	}

	atts, err := m.Attachments()
	if err != nil {
		d.logger.Debug("attachments unreadable", "message_id", id, "error", err)
	}
	for i, a := range atts {
		data, err := a.Data()
		if err != nil {
			d.logger.Debug("attachment payload unreadable", "message_id", id, "index", i, "error", err)
			data = nil
		}
		_, err = d.tx.ExecContext(d.ctx,
			"INSERT INTO attachments (message_id, position, name, size, mime_type, data) VALUES (?, ?, ?, ?, ?, ?)",
			id, i, d.text(a.Name()), value(a.Size()), d.text(a.Type()), data)
		if err != nil {
			return fmt.Errorf("failed to insert attachment: %w", err)
		}
		d.stats.Attachments++
	}
	return nil
}

// identityErr returns the first error among the attributes an item id is
// derived from.
func identityErr(m mailstore.Message) error {
	if _, err := m.Subject(); err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	if _, err := m.SenderEmail(); err != nil {
		return fmt.Errorf("sender email: %w", err)
	}
	if _, err := m.CreationTime(); err != nil {
		return fmt.Errorf("creation time: %w", err)
	}
	return nil
}

// text returns the decoded string, or nil for NULL.
func (d dump) text(v mailstore.Optional[mailstore.Text], err error) any {
	t, ok := v.Get()
	if err != nil || !ok {
		return nil
	}
	return t.String()
}

// blob keeps raw bytes undecoded so the reader sees exactly what the
// source held.
func (d dump) blob(v mailstore.Optional[mailstore.Text], err error) any {
	t, ok := v.Get()
	if err != nil || !ok {
		return nil
	}
	if t.IsRaw() {
		return t.Raw()
	}
	return t.String()
}

func (d dump) time(v mailstore.Optional[time.Time], err error) any {
	t, ok := v.Get()
	if err != nil || !ok {
		return nil
	}
	return FormatTime(t)
}

func value[T int64 | bool](v mailstore.Optional[T], err error) any {
	x, ok := v.Get()
	if err != nil || !ok {
		return nil
	}
	return x
}
