package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"mailcorpus/internal/mailstore"
)

// Format names this back-end in mailstore.StoreInfo.
const Format = "sqlite"

// Opener opens SQLite stores. It implements mailstore.Opener.
type Opener struct{}

// Handles reports whether path looks like a SQLite store.
func (Opener) Handles(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Open opens the store at path read-only.
func (Opener) Open(ctx context.Context, path string) (mailstore.Store, error) {
	fi, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("open %s: %w", path, mailstore.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("open %s: is a directory: %w", path, mailstore.ErrUnsupported)
	}

	db, err := OpenReadOnly(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", path, mailstore.ErrCorrupt, err)
	}
	return &Store{db: db, ctx: ctx, path: path, size: fi.Size()}, nil
}

// Store is an opened SQLite store.
//
// The mailstore accessors take no context, so the context given to Open is
// kept and used for every query the store issues.
type Store struct {
	db   *sqlx.DB
	ctx  context.Context
	path string
	size int64
}

// Info implements mailstore.Store.
func (s *Store) Info() mailstore.StoreInfo {
	return mailstore.StoreInfo{Format: Format, Path: s.path, Size: s.size}
}

// RootFolder returns a virtual root whose sub-folders are the rows with no
// parent. The root holds no messages.
func (s *Store) RootFolder() (mailstore.Folder, error) {
	return &folder{store: s, root: true}, nil
}

// Close implements mailstore.Store.
func (s *Store) Close() error {
	return s.db.Close()
}

type folderRow struct {
	ID   int64 `db:"id"`
	Name any   `db:"name"`
}

type folder struct {
	store *Store
	root  bool
	row   folderRow
}

func (f *folder) Name() (mailstore.Optional[mailstore.Text], error) {
	if f.root {
		return mailstore.SomeString(""), nil
	}
	return textValue(f.row.Name)
}

func (f *folder) SubFolders() ([]mailstore.Folder, error) {
	var rows []folderRow
	var err error
	if f.root {
		err = f.store.db.SelectContext(f.store.ctx, &rows,
			"SELECT id, name FROM folders WHERE parent_id IS NULL ORDER BY position, id")
	} else {
		err = f.store.db.SelectContext(f.store.ctx, &rows,
			"SELECT id, name FROM folders WHERE parent_id = ? ORDER BY position, id", f.row.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-folders: %w", err)
	}

	out := make([]mailstore.Folder, len(rows))
	for i, r := range rows {
		out[i] = &folder{store: f.store, row: r}
	}
	return out, nil
}

const messageColumns = `id, subject, sender_name, sender_email, body_plain, body_html,
	delivery_time, creation_time, modification_time, size,
	message_class, priority, importance, categories, is_read`

type messageRow struct {
	ID               int64 `db:"id"`
	Subject          any   `db:"subject"`
	SenderName       any   `db:"sender_name"`
	SenderEmail      any   `db:"sender_email"`
	BodyPlain        any   `db:"body_plain"`
	BodyHTML         any   `db:"body_html"`
	DeliveryTime     any   `db:"delivery_time"`
	CreationTime     any   `db:"creation_time"`
	ModificationTime any   `db:"modification_time"`
	Size             any   `db:"size"`
	MessageClass     any   `db:"message_class"`
	Priority         any   `db:"priority"`
	Importance       any   `db:"importance"`
	Categories       any   `db:"categories"`
	IsRead           any   `db:"is_read"`
}

func (f *folder) Messages() ([]mailstore.Message, error) {
	if f.root {
		return []mailstore.Message{}, nil
	}

	var rows []messageRow
	err := f.store.db.SelectContext(f.store.ctx, &rows,
		"SELECT "+messageColumns+" FROM messages WHERE folder_id = ? ORDER BY position, id", f.row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	out := make([]mailstore.Message, len(rows))
	for i, r := range rows {
		out[i] = &message{store: f.store, row: r}
	}
	return out, nil
}

type message struct {
	store *Store
	row   messageRow
}

func (m *message) Subject() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.Subject)
}

func (m *message) SenderName() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.SenderName)
}

func (m *message) SenderEmail() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.SenderEmail)
}

func (m *message) PlainTextBody() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.BodyPlain)
}

func (m *message) HTMLBody() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.BodyHTML)
}

func (m *message) DeliveryTime() (mailstore.Optional[time.Time], error) {
	return timeValue(m.row.DeliveryTime)
}

func (m *message) CreationTime() (mailstore.Optional[time.Time], error) {
	return timeValue(m.row.CreationTime)
}

func (m *message) ModificationTime() (mailstore.Optional[time.Time], error) {
	return timeValue(m.row.ModificationTime)
}

func (m *message) Size() (mailstore.Optional[int64], error) {
	return intValue(m.row.Size)
}

func (m *message) MessageClass() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.MessageClass)
}

func (m *message) Priority() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.Priority)
}

func (m *message) Importance() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.Importance)
}

func (m *message) Categories() (mailstore.Optional[mailstore.Text], error) {
	return textValue(m.row.Categories)
}

func (m *message) IsRead() (mailstore.Optional[bool], error) {
	return boolValue(m.row.IsRead)
}

type recipientRow struct {
	Name    any `db:"name"`
	Address any `db:"address"`
	Type    any `db:"type"`
}

func (m *message) Recipients() ([]mailstore.Recipient, error) {
	var rows []recipientRow
	err := m.store.db.SelectContext(m.store.ctx, &rows,
		"SELECT name, address, type FROM recipients WHERE message_id = ? ORDER BY position, id", m.row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipients: %w", err)
	}

	out := make([]mailstore.Recipient, len(rows))
	for i, r := range rows {
		out[i] = recipient{row: r}
	}
	return out, nil
}

type recipient struct {
	row recipientRow
}

func (r recipient) Name() (mailstore.Optional[mailstore.Text], error) { return textValue(r.row.Name) }
func (r recipient) Address() (mailstore.Optional[mailstore.Text], error) {
	return textValue(r.row.Address)
}
func (r recipient) Type() (mailstore.Optional[mailstore.Text], error) { return textValue(r.row.Type) }

type attachmentRow struct {
	ID       int64 `db:"id"`
	Name     any   `db:"name"`
	Size     any   `db:"size"`
	MimeType any   `db:"mime_type"`
}

// Attachments lists the attachment metadata. Payloads are read on demand by
// Data.
func (m *message) Attachments() ([]mailstore.Attachment, error) {
	var rows []attachmentRow
	err := m.store.db.SelectContext(m.store.ctx, &rows,
		"SELECT id, name, size, mime_type FROM attachments WHERE message_id = ? ORDER BY position, id", m.row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments: %w", err)
	}

	out := make([]mailstore.Attachment, len(rows))
	for i, r := range rows {
		out[i] = &attachment{store: m.store, row: r}
	}
	return out, nil
}

type attachment struct {
	store *Store
	row   attachmentRow
}

func (a *attachment) Name() (mailstore.Optional[mailstore.Text], error) { return textValue(a.row.Name) }
func (a *attachment) Size() (mailstore.Optional[int64], error)          { return intValue(a.row.Size) }
func (a *attachment) Type() (mailstore.Optional[mailstore.Text], error) {
	return textValue(a.row.MimeType)
}

func (a *attachment) Data() ([]byte, error) {
	var data []byte
	err := a.store.db.GetContext(a.store.ctx, &data, "SELECT data FROM attachments WHERE id = ?", a.row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment %d: %w", a.row.ID, err)
	}
	return data, nil
}
