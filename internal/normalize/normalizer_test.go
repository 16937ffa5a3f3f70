package normalize

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"mailcorpus/internal/identity"
	"mailcorpus/internal/mailstore"
	"mailcorpus/internal/mailstore/memstore"
	"mailcorpus/internal/mailstore/mocks"
)

type fakeSaver struct {
	calls []string
	fail  bool
}

func (s *fakeSaver) Persist(att mailstore.Attachment, ownerID string, index int) (string, bool) {
	if s.fail {
		return "", false
	}
	path := "/out/attachments/" + ownerID + "/" + string(rune('a'+index))
	s.calls = append(s.calls, path)
	return path, true
}

var created = time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

func fullMessage() *memstore.Message {
	m := memstore.NewMessage("Quarterly report", "alice@example.com", created)
	m.Fields[memstore.SenderName] = "Alice"
	m.Fields[memstore.DeliveryTime] = time.Date(2024, 3, 5, 16, 45, 10, 0, time.FixedZone("TRT", 3*3600))
	m.Fields[memstore.ModificationTime] = created.Add(time.Hour)
	m.Fields[memstore.Size] = int64(2048)
	m.Fields[memstore.PlainTextBody] = "See attached."
	m.Fields[memstore.HTMLBody] = []byte("<p>See attached.</p>")
	m.Fields[memstore.MessageClass] = "IPM.Note"
	m.Fields[memstore.Priority] = "1"
	m.Fields[memstore.Importance] = "high"
	m.Fields[memstore.Categories] = "Finance"
	m.Fields[memstore.IsRead] = true
	m.To = []*memstore.Recipient{
		memstore.NewRecipient("Bob", "bob@example.com", mailstore.RecipientTo),
		memstore.NewRecipient("Carol", "carol@example.com", mailstore.RecipientCc),
	}
	m.Files = []*memstore.Attachment{
		memstore.NewAttachment("report.pdf", "application/pdf", []byte("%PDF")),
		memstore.NewAttachment("", "image/png", []byte{0x89}),
	}
	return m
}

func TestNormalizer_Email(t *testing.T) {
	saver := &fakeSaver{}
	n := New(saver, 0, nil)

	got, ok := n.Email(fullMessage(), "Inbox/Reports")
	if !ok {
		t.Fatal("Email() ok = false, want true")
	}

	wantID := identity.Identify("Quarterly report", "alice@example.com", "2024-03-05 14:30:00")
	if got.ID != wantID {
		t.Errorf("ID = %q, want %q", got.ID, wantID)
	}

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"Folder", got.Folder, "Inbox/Reports"},
		{"Subject", got.Subject, "Quarterly report"},
		{"SenderName", got.SenderName, "Alice"},
		{"SenderEmail", got.SenderEmail, "alice@example.com"},
		{"DeliveryTime", got.DeliveryTime, "2024-03-05 13:45:10"},
		{"CreationTime", got.CreationTime, "2024-03-05 14:30:00"},
		{"ModificationTime", got.ModificationTime, "2024-03-05 15:30:00"},
		{"BodyPlain", got.BodyPlain, "See attached."},
		{"BodyHTML", got.BodyHTML, "<p>See attached.</p>"},
		{"MessageClass", got.MessageClass, "IPM.Note"},
		{"Priority", got.Priority, "1"},
		{"Importance", got.Importance, "high"},
		{"Categories", got.Categories, "Finance"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}

	if got.Size != 2048 {
		t.Errorf("Size = %d, want 2048", got.Size)
	}
	if !got.ReadFlag {
		t.Error("ReadFlag = false, want true")
	}

	if len(got.Recipients) != 2 {
		t.Fatalf("len(Recipients) = %d, want 2", len(got.Recipients))
	}
	if r := got.Recipients[1]; r.Name != "Carol" || r.Email != "carol@example.com" || r.Type != "cc" {
		t.Errorf("Recipients[1] = %+v", r)
	}

	if len(got.Attachments) != 2 {
		t.Fatalf("len(Attachments) = %d, want 2", len(got.Attachments))
	}
	first, second := got.Attachments[0], got.Attachments[1]
	if first.EmailID != got.ID || first.Index != 0 || first.Name != "report.pdf" || first.Size != 4 || first.Type != "application/pdf" {
		t.Errorf("Attachments[0] = %+v", first)
	}
	if first.SavedPath == nil || *first.SavedPath != saver.calls[0] {
		t.Errorf("Attachments[0].SavedPath = %v, want %q", first.SavedPath, saver.calls[0])
	}
	if second.Name != "attachment_1" {
		t.Errorf("Attachments[1].Name = %q, want attachment_1", second.Name)
	}
}

func TestNormalizer_Email_Deterministic(t *testing.T) {
	n := New(nil, 0, nil)
	a, _ := n.Email(fullMessage(), "Inbox")
	b, _ := n.Email(fullMessage(), "Archive")
	if a.ID != b.ID {
		t.Errorf("ids differ for identical content: %q vs %q", a.ID, b.ID)
	}
}

func TestNormalizer_Email_Defaults(t *testing.T) {
	n := New(nil, 0, nil)

	got, ok := n.Email(&memstore.Message{Fields: memstore.Fields{}}, "")
	if !ok {
		t.Fatal("Email() ok = false, want true")
	}
	if got.ID != identity.Identify("", "", "") {
		t.Errorf("ID = %q, want id of empty triple", got.ID)
	}
	if got.Subject != "" || got.DeliveryTime != "" || got.Size != 0 || got.ReadFlag {
		t.Errorf("defaults not applied: %+v", got)
	}
	if got.Recipients == nil || got.Attachments == nil {
		t.Error("Recipients and Attachments must be non-nil")
	}
}

func TestNormalizer_Email_FieldFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *memstore.Message)
		check func(t *testing.T, n *Normalizer, m *memstore.Message)
	}{
		{
			name: "wrong type defaults size",
			setup: func(m *memstore.Message) {
				m.Fields[memstore.Size] = "large"
			},
			check: func(t *testing.T, n *Normalizer, m *memstore.Message) {
				got, ok := n.Email(m, "")
				if !ok || got.Size != 0 {
					t.Errorf("Email() = (size %d, %v), want (0, true)", got.Size, ok)
				}
			},
		},
		{
			name: "erroring delivery time defaults",
			setup: func(m *memstore.Message) {
				m.Errs = map[string]error{memstore.DeliveryTime: errors.New("bad property")}
			},
			check: func(t *testing.T, n *Normalizer, m *memstore.Message) {
				got, ok := n.Email(m, "")
				if !ok || got.DeliveryTime != "" {
					t.Errorf("Email() = (delivery %q, %v), want (\"\", true)", got.DeliveryTime, ok)
				}
			},
		},
		{
			name: "recipient listing failure",
			setup: func(m *memstore.Message) {
				m.RecipErr = errors.New("table corrupt")
			},
			check: func(t *testing.T, n *Normalizer, m *memstore.Message) {
				got, ok := n.Email(m, "")
				if !ok || len(got.Recipients) != 0 || got.Recipients == nil {
					t.Errorf("Email() recipients = %v, ok %v; want empty, true", got.Recipients, ok)
				}
				if len(got.Attachments) != 2 {
					t.Errorf("attachments lost with recipients: %d", len(got.Attachments))
				}
			},
		},
		{
			name: "attachment listing failure",
			setup: func(m *memstore.Message) {
				m.AttachErr = errors.New("table corrupt")
			},
			check: func(t *testing.T, n *Normalizer, m *memstore.Message) {
				got, ok := n.Email(m, "")
				if !ok || len(got.Attachments) != 0 || got.Attachments == nil {
					t.Errorf("Email() attachments = %v, ok %v; want empty, true", got.Attachments, ok)
				}
			},
		},
		{
			name: "single recipient attribute failure",
			setup: func(m *memstore.Message) {
				m.To[0].Errs = map[string]error{memstore.Address: errors.New("unreadable")}
			},
			check: func(t *testing.T, n *Normalizer, m *memstore.Message) {
				got, _ := n.Email(m, "")
				if len(got.Recipients) != 2 || got.Recipients[0].Email != "" || got.Recipients[0].Name != "Bob" {
					t.Errorf("Recipients = %+v", got.Recipients)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fullMessage()
			tt.setup(m)
			tt.check(t, New(nil, 0, nil), m)
		})
	}
}

func TestNormalizer_Email_IdentityFailure(t *testing.T) {
	for _, field := range []string{memstore.Subject, memstore.SenderEmail, memstore.CreationTime} {
		t.Run(field, func(t *testing.T) {
			m := fullMessage()
			m.Errs = map[string]error{field: errors.New("unreadable")}

			saver := &fakeSaver{}
			if _, ok := New(saver, 0, nil).Email(m, "Inbox"); ok {
				t.Error("Email() ok = true, want false")
			}
			if len(saver.calls) != 0 {
				t.Errorf("skipped item persisted %d attachments", len(saver.calls))
			}
		})
	}
}

func TestNormalizer_Email_LossyText(t *testing.T) {
	m := memstore.NewMessage("", "x@example.com", created)
	m.Fields[memstore.Subject] = []byte("Fiyat\xfflistesi")

	got, ok := New(nil, 0, nil).Email(m, "")
	if !ok {
		t.Fatal("Email() ok = false")
	}
	if got.Subject != "Fiyat�listesi" {
		t.Errorf("Subject = %q", got.Subject)
	}
}

func TestNormalizer_BodyTruncation(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		body  string
		want  int
	}{
		{name: "default limit", limit: 0, body: strings.Repeat("ş", 1500), want: 1000},
		{name: "short body untouched", limit: 0, body: "short", want: 5},
		{name: "custom limit", limit: 10, body: strings.Repeat("x", 50), want: 10},
		{name: "unlimited", limit: -1, body: strings.Repeat("x", 5000), want: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := memstore.NewMessage("s", "a@example.com", created)
			m.Fields[memstore.PlainTextBody] = tt.body

			got, _ := New(nil, tt.limit, nil).Email(m, "")
			if n := len([]rune(got.BodyPlain)); n != tt.want {
				t.Errorf("body length = %d runes, want %d", n, tt.want)
			}
		})
	}
}

func TestNormalizer_AttachmentSaveFailure(t *testing.T) {
	got, ok := New(&fakeSaver{fail: true}, 0, nil).Email(fullMessage(), "")
	if !ok {
		t.Fatal("Email() ok = false")
	}
	for i, a := range got.Attachments {
		if a.SavedPath != nil {
			t.Errorf("Attachments[%d].SavedPath = %q, want nil", i, *a.SavedPath)
		}
	}
}

func TestNormalizer_AccessorPanics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msg := mocks.NewMockMessage(ctrl)
	msg.EXPECT().Subject().Return(mailstore.SomeString("hello"), nil).AnyTimes()
	msg.EXPECT().SenderEmail().Return(mailstore.SomeString("a@example.com"), nil).AnyTimes()
	msg.EXPECT().CreationTime().Return(mailstore.Some(created), nil).AnyTimes()
	msg.EXPECT().SenderName().DoAndReturn(func() (mailstore.Optional[mailstore.Text], error) {
		panic("decoder bug")
	}).AnyTimes()
	msg.EXPECT().PlainTextBody().Return(mailstore.None[mailstore.Text](), nil).AnyTimes()
	msg.EXPECT().HTMLBody().Return(mailstore.None[mailstore.Text](), nil).AnyTimes()
	msg.EXPECT().DeliveryTime().Return(mailstore.None[time.Time](), nil).AnyTimes()
	msg.EXPECT().ModificationTime().Return(mailstore.None[time.Time](), nil).AnyTimes()
	msg.EXPECT().Size().Return(mailstore.None[int64](), nil).AnyTimes()
	msg.EXPECT().MessageClass().Return(mailstore.None[mailstore.Text](), nil).AnyTimes()
	msg.EXPECT().Priority().Return(mailstore.None[mailstore.Text](), nil).AnyTimes()
	msg.EXPECT().Importance().Return(mailstore.None[mailstore.Text](), nil).AnyTimes()
	msg.EXPECT().Categories().Return(mailstore.None[mailstore.Text](), nil).AnyTimes()
	msg.EXPECT().IsRead().Return(mailstore.None[bool](), nil).AnyTimes()
	msg.EXPECT().Recipients().DoAndReturn(func() ([]mailstore.Recipient, error) {
		panic("nil table")
	}).AnyTimes()
	msg.EXPECT().Attachments().Return(nil, nil).AnyTimes()

	got, ok := New(nil, 0, nil).Email(msg, "Inbox")
	if !ok {
		t.Fatal("Email() ok = false, want true")
	}
	if got.SenderName != "" || len(got.Recipients) != 0 {
		t.Errorf("panicking fields not defaulted: %+v", got)
	}
	if got.Subject != "hello" {
		t.Errorf("Subject = %q, want hello", got.Subject)
	}
}

func TestNormalizer_IdentityPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	msg := mocks.NewMockMessage(ctrl)
	msg.EXPECT().Subject().DoAndReturn(func() (mailstore.Optional[mailstore.Text], error) {
		panic("boom")
	})

	if _, ok := New(nil, 0, nil).Note(msg, "Notes"); ok {
		t.Error("Note() ok = true, want false")
	}
}

func TestNormalizer_OtherKinds(t *testing.T) {
	n := New(nil, 0, nil)
	m := fullMessage()
	wantID := identity.Identify("Quarterly report", "alice@example.com", "2024-03-05 14:30:00")

	t.Run("contact", func(t *testing.T) {
		c, ok := n.Contact(m, "Contacts")
		if !ok {
			t.Fatal("Contact() ok = false")
		}
		if c.ID != wantID || c.Folder != "Contacts" || c.DisplayName != "Quarterly report" || c.EmailAddress != "alice@example.com" {
			t.Errorf("Contact() = %+v", c)
		}
		if c.BusinessPhone != "" || c.ModificationTime != "2024-03-05 15:30:00" {
			t.Errorf("Contact() = %+v", c)
		}
	})

	t.Run("calendar", func(t *testing.T) {
		e, ok := n.Calendar(m, "Calendar")
		if !ok {
			t.Fatal("Calendar() ok = false")
		}
		if e.StartTime != "2024-03-05 14:30:00" || e.Organizer != "Alice" || e.Importance != "high" || e.Body != "See attached." {
			t.Errorf("Calendar() = %+v", e)
		}
		if len(e.Attendees) != 2 || e.Attendees[0] != "bob@example.com" {
			t.Errorf("Attendees = %v", e.Attendees)
		}
	})

	t.Run("calendar without recipients", func(t *testing.T) {
		e, _ := n.Calendar(memstore.NewMessage("Standup", "", created), "Calendar")
		if e.Attendees == nil || len(e.Attendees) != 0 {
			t.Errorf("Attendees = %#v, want empty non-nil", e.Attendees)
		}
	})

	t.Run("task", func(t *testing.T) {
		task, ok := n.Task(m, "Tasks")
		if !ok || task.Priority != "1" || task.Subject != "Quarterly report" || task.PercentComplete != 0 {
			t.Errorf("Task() = %+v, %v", task, ok)
		}
	})

	t.Run("note", func(t *testing.T) {
		note, ok := n.Note(m, "Notes")
		if !ok || note.Size != 2048 || note.Body != "See attached." || note.Color != "" {
			t.Errorf("Note() = %+v, %v", note, ok)
		}
	})

	t.Run("journal", func(t *testing.T) {
		j, ok := n.Journal(m, "Journal")
		if !ok || j.StartTime != j.CreationTime || j.Duration != 0 {
			t.Errorf("Journal() = %+v, %v", j, ok)
		}
	})
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	if got := FormatTime(time.Date(2023, 12, 31, 22, 0, 0, 0, loc)); got != "2024-01-01 03:00:00" {
		t.Errorf("FormatTime() = %q", got)
	}
	if got := FormatTime(time.Time{}); got != "" {
		t.Errorf("FormatTime(zero) = %q, want empty", got)
	}
}
