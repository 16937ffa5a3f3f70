package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mailcorpus/internal/mailstore"
	"mailcorpus/internal/mailstore/memstore"
)

func fixtureStore() *memstore.Store {
	created := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

	first := memstore.NewMessage("Quarterly report", "alice@example.com", created)
	first.Fields[memstore.SenderName] = "Alice"
	first.Fields[memstore.PlainTextBody] = []byte("caf\xe9 body")
	first.Fields[memstore.Size] = int64(2048)
	first.Fields[memstore.IsRead] = true
	first.To = []*memstore.Recipient{
		memstore.NewRecipient("Bob", "bob@example.com", "to"),
		memstore.NewRecipient("Carol", "carol@example.com", "cc"),
	}
	first.Files = []*memstore.Attachment{memstore.NewAttachment("report.pdf", "application/pdf", []byte("%PDF-1.7"))}

	second := memstore.NewMessage("Follow up", "bob@example.com", created.Add(time.Hour))

	inbox := memstore.NewFolder("Inbox", []*memstore.Message{first, second},
		memstore.NewFolder("Projects", nil),
	)
	top := memstore.NewFolder("Top of Personal Folders", nil, inbox, memstore.NewFolder("Sent Items", nil))
	return &memstore.Store{Path: "fixture", Root: &memstore.Folder{Children: []*memstore.Folder{top}}}
}

// writeStore dumps src into a fresh database file and returns its path.
func writeStore(t *testing.T, src mailstore.Store) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.db")
	db, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if _, err := NewWriter(db, nil).Dump(context.Background(), src); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	return path
}

func openStore(t *testing.T, path string) mailstore.Store {
	t.Helper()

	s, err := Opener{}.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func names(t *testing.T, folders []mailstore.Folder) []string {
	t.Helper()

	out := make([]string, len(folders))
	for i, f := range folders {
		v, err := f.Name()
		if err != nil {
			t.Fatalf("Name() error = %v", err)
		}
		out[i] = v.Or(mailstore.String("")).String()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWriter_DumpStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	db, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	got, err := NewWriter(db, nil).Dump(context.Background(), fixtureStore())
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	want := DumpStats{Folders: 4, Messages: 2, Recipients: 2, Attachments: 1}
	if got != want {
		t.Errorf("Dump() = %+v, want %+v", got, want)
	}
}

func TestWriter_SkipsUnreadableIdentity(t *testing.T) {
	created := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	boom := errors.New("unparseable")

	broken := memstore.NewMessage("", "", created)
	broken.Fail = boom
	noSender := memstore.NewMessage("No sender", "x@example.com", created)
	noSender.Errs = map[string]error{memstore.SenderEmail: boom}
	noBody := memstore.NewMessage("Fine", "alice@example.com", created)
	noBody.Errs = map[string]error{memstore.PlainTextBody: boom}

	inbox := memstore.NewFolder("Inbox", []*memstore.Message{broken, noSender, noBody})
	src := &memstore.Store{Path: "fixture", Root: &memstore.Folder{Children: []*memstore.Folder{inbox}}}

	path := filepath.Join(t.TempDir(), "store.db")
	db, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	got, err := NewWriter(db, nil).Dump(context.Background(), src)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if want := (DumpStats{Folders: 1, Messages: 1, Skipped: 2}); got != want {
		t.Errorf("Dump() = %+v, want %+v", got, want)
	}

	root, err := openStore(t, path).RootFolder()
	if err != nil {
		t.Fatalf("RootFolder() error = %v", err)
	}
	subs, err := root.SubFolders()
	if err != nil || len(subs) != 1 {
		t.Fatalf("SubFolders() = %d, %v", len(subs), err)
	}
	msgs, err := subs[0].Messages()
	if err != nil || len(msgs) != 1 {
		t.Fatalf("Messages() = %d, %v, want 1", len(msgs), err)
	}
	subject, _ := msgs[0].Subject()
	if v, _ := subject.Get(); v.String() != "Fine" {
		t.Errorf("kept subject = %q, want Fine", v.String())
	}
	body, err := msgs[0].PlainTextBody()
	if err != nil || body.Present() {
		t.Errorf("PlainTextBody() = %v, %v, want absent", body, err)
	}
}

func TestWriter_RootError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	db, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	src := &memstore.Store{RootErr: errors.New("boom")}
	if _, err := NewWriter(db, nil).Dump(context.Background(), src); err == nil {
		t.Error("Dump() expected error, got nil")
	}
}

func TestStore_Tree(t *testing.T) {
	s := openStore(t, writeStore(t, fixtureStore()))

	if got := s.Info().Format; got != Format {
		t.Errorf("Info().Format = %q, want %q", got, Format)
	}

	root, err := s.RootFolder()
	if err != nil {
		t.Fatalf("RootFolder() error = %v", err)
	}
	msgs, err := root.Messages()
	if err != nil || len(msgs) != 0 {
		t.Errorf("root Messages() = %d, %v; want 0, nil", len(msgs), err)
	}

	top, err := root.SubFolders()
	if err != nil {
		t.Fatalf("SubFolders() error = %v", err)
	}
	if got := names(t, top); !equal(got, []string{"Top of Personal Folders"}) {
		t.Fatalf("root sub-folders = %v", got)
	}

	children, err := top[0].SubFolders()
	if err != nil {
		t.Fatalf("SubFolders() error = %v", err)
	}
	if got := names(t, children); !equal(got, []string{"Inbox", "Sent Items"}) {
		t.Errorf("top sub-folders = %v, want [Inbox Sent Items]", got)
	}

	grand, err := children[0].SubFolders()
	if err != nil {
		t.Fatalf("SubFolders() error = %v", err)
	}
	if got := names(t, grand); !equal(got, []string{"Projects"}) {
		t.Errorf("Inbox sub-folders = %v, want [Projects]", got)
	}
}

func TestStore_Message(t *testing.T) {
	s := openStore(t, writeStore(t, fixtureStore()))

	root, _ := s.RootFolder()
	top, _ := root.SubFolders()
	children, _ := top[0].SubFolders()
	msgs, err := children[0].Messages()
	if err != nil {
		t.Fatalf("Messages() error = %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("Messages() = %d, want 2", len(msgs))
	}
	m := msgs[0]

	subject, err := m.Subject()
	if err != nil || subject.Or(mailstore.String("")).String() != "Quarterly report" {
		t.Errorf("Subject() = %v, %v", subject, err)
	}

	body, err := m.PlainTextBody()
	if err != nil {
		t.Fatalf("PlainTextBody() error = %v", err)
	}
	text, _ := body.Get()
	if got := text.String(); got != "caf\uFFFD body" {
		t.Errorf("PlainTextBody() = %q, want lossy decode", got)
	}

	created, err := m.CreationTime()
	if err != nil {
		t.Fatalf("CreationTime() error = %v", err)
	}
	want := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	if got, ok := created.Get(); !ok || !got.Equal(want) {
		t.Errorf("CreationTime() = %v, want %v", got, want)
	}

	size, err := m.Size()
	if got, _ := size.Get(); err != nil || got != 2048 {
		t.Errorf("Size() = %d, %v; want 2048", got, err)
	}
	read, err := m.IsRead()
	if got, _ := read.Get(); err != nil || !got {
		t.Errorf("IsRead() = %v, %v; want true", got, err)
	}

	html, err := m.HTMLBody()
	if err != nil || html.Present() {
		t.Errorf("HTMLBody() = %v, %v; want absent", html, err)
	}
	class, err := m.MessageClass()
	if err != nil || class.Present() {
		t.Errorf("MessageClass() = %v, %v; want absent", class, err)
	}

	recips, err := m.Recipients()
	if err != nil {
		t.Fatalf("Recipients() error = %v", err)
	}
	if len(recips) != 2 {
		t.Fatalf("Recipients() = %d, want 2", len(recips))
	}
	typ, _ := recips[1].Type()
	addr, _ := recips[1].Address()
	if typ.Or(mailstore.String("")).String() != "cc" || addr.Or(mailstore.String("")).String() != "carol@example.com" {
		t.Errorf("second recipient = %v %v", typ, addr)
	}

	atts, err := m.Attachments()
	if err != nil {
		t.Fatalf("Attachments() error = %v", err)
	}
	if len(atts) != 1 {
		t.Fatalf("Attachments() = %d, want 1", len(atts))
	}
	data, err := atts[0].Data()
	if err != nil || string(data) != "%PDF-1.7" {
		t.Errorf("Data() = %q, %v", data, err)
	}

	other, err := msgs[1].Attachments()
	if err != nil || len(other) != 0 {
		t.Errorf("second message Attachments() = %d, %v; want 0, nil", len(other), err)
	}
}

func TestStore_ColumnTypeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	db, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	stmts := []string{
		"INSERT INTO folders (id, name) VALUES (1, 'Inbox')",
		"INSERT INTO messages (id, folder_id, body_plain, size, delivery_time, is_read) VALUES (1, 1, 42, 'big', 'yesterday', 'yes')",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Exec(%q) error = %v", stmt, err)
		}
	}
	_ = db.Close()

	s := openStore(t, path)
	root, _ := s.RootFolder()
	folders, _ := root.SubFolders()
	msgs, err := folders[0].Messages()
	if err != nil || len(msgs) != 1 {
		t.Fatalf("Messages() = %d, %v", len(msgs), err)
	}
	m := msgs[0]

	if _, err := m.PlainTextBody(); err == nil {
		t.Error("PlainTextBody() on integer value: expected error")
	}
	if _, err := m.Size(); err == nil {
		t.Error("Size() on text column: expected error")
	}
	if _, err := m.DeliveryTime(); err == nil {
		t.Error("DeliveryTime() on unparseable text: expected error")
	}
	if _, err := m.IsRead(); err == nil {
		t.Error("IsRead() on text column: expected error")
	}
	if v, err := m.SenderEmail(); err != nil || v.Present() {
		t.Errorf("SenderEmail() = %v, %v; want absent", v, err)
	}
}

func TestOpener_Open(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.db")
	if err := os.WriteFile(garbage, []byte("definitely not sqlite, only some padding bytes to fill a header"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing", path: filepath.Join(dir, "missing.db"), want: mailstore.ErrNotFound},
		{name: "corrupt", path: garbage, want: mailstore.ErrCorrupt},
		{name: "directory", path: dir, want: mailstore.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Opener{}.Open(context.Background(), tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Open() error = %v, want %v", err, tt.want)
			}
			if s != nil {
				_ = s.Close()
				t.Error("Open() returned a store on failure")
			}
		})
	}
}

func TestOpener_Handles(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "mail.db", want: true},
		{path: "mail.SQLITE", want: true},
		{path: "mail.sqlite3", want: true},
		{path: "mail.pst", want: false},
		{path: "maildir", want: false},
	}
	for _, tt := range tests {
		if got := (Opener{}).Handles(tt.path); got != tt.want {
			t.Errorf("Handles(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
