// Package normalize maps raw store items into fixed-shape corpus records.
//
// Every field is read through a helper that substitutes the field's default
// when the store does not carry the attribute, when the accessor returns an
// error, or when it panics. Only the identity attributes (subject, sender
// address, creation time) are load-bearing: if one of them fails to read, the
// item is skipped because no stable id can be derived for it.
package normalize

import (
	"fmt"
	"log/slog"
	"time"

	"mailcorpus/internal/corpus"
	"mailcorpus/internal/identity"
	"mailcorpus/internal/mailstore"
	"mailcorpus/internal/textutil"
)

// DefaultBodyLimit is the number of characters kept from each body field.
const DefaultBodyLimit = 1000

// AttachmentSaver persists one attachment payload and reports where it went.
type AttachmentSaver interface {
	Persist(att mailstore.Attachment, ownerID string, index int) (string, bool)
}

// Normalizer converts store messages into corpus records. It holds no
// per-item state; one Normalizer serves a whole run.
type Normalizer struct {
	saver     AttachmentSaver
	bodyLimit int
	logger    *slog.Logger
}

// New creates a Normalizer. A nil saver disables attachment persistence, and
// a bodyLimit of zero selects DefaultBodyLimit. A negative bodyLimit keeps
// bodies whole.
func New(saver AttachmentSaver, bodyLimit int, logger *slog.Logger) *Normalizer {
	if bodyLimit == 0 {
		bodyLimit = DefaultBodyLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{
		saver:     saver,
		bodyLimit: bodyLimit,
		logger:    logger,
	}
}

// key is the identity triple of an item in its rendered form.
type key struct {
	subject     string
	senderEmail string
	created     string
}

func (k key) id() string {
	return identity.Identify(k.subject, k.senderEmail, k.created)
}

// identify reads the identity attributes of msg. It fails only when one of
// the accessors errors or panics; absent values fall back to "".
func identify(msg mailstore.Message) (k key, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("identity accessor panicked: %v", r)
		}
	}()

	subject, err := msg.Subject()
	if err != nil {
		return key{}, fmt.Errorf("failed to read subject: %w", err)
	}
	sender, err := msg.SenderEmail()
	if err != nil {
		return key{}, fmt.Errorf("failed to read sender email: %w", err)
	}
	created, err := msg.CreationTime()
	if err != nil {
		return key{}, fmt.Errorf("failed to read creation time: %w", err)
	}

	return key{
		subject:     textOf(subject),
		senderEmail: textOf(sender),
		created:     timeOf(created),
	}, nil
}

// begin resolves the identity of msg, logging and reporting false when the
// item has to be skipped.
func (n *Normalizer) begin(msg mailstore.Message, kind corpus.Kind, folder string) (key, bool) {
	k, err := identify(msg)
	if err != nil {
		n.logger.Warn("skipping item", "kind", kind, "folder", folder, "error", err)
		return key{}, false
	}
	return k, true
}

// Email normalizes msg as an email. Attachments are persisted as a side
// effect and returned on the record.
func (n *Normalizer) Email(msg mailstore.Message, folder string) (corpus.Email, bool) {
	k, ok := n.begin(msg, corpus.KindEmail, folder)
	if !ok {
		return corpus.Email{}, false
	}
	id := k.id()
	f := fields{n: n, kind: corpus.KindEmail, id: id}

	email := corpus.Email{
		ID:               id,
		Folder:           folder,
		Subject:          k.subject,
		SenderName:       f.text("sender_name", msg.SenderName),
		SenderEmail:      k.senderEmail,
		Recipients:       n.recipients(msg, id),
		DeliveryTime:     f.timestamp("delivery_time", msg.DeliveryTime),
		CreationTime:     k.created,
		ModificationTime: f.timestamp("modification_time", msg.ModificationTime),
		Size:             f.number("size", msg.Size),
		BodyPlain:        f.body("body_plain", msg.PlainTextBody),
		BodyHTML:         f.body("body_html", msg.HTMLBody),
		MessageClass:     f.text("message_class", msg.MessageClass),
		Priority:         f.text("priority", msg.Priority),
		Importance:       f.text("importance", msg.Importance),
		Categories:       f.text("categories", msg.Categories),
		ReadFlag:         f.flag("read_flag", msg.IsRead),
	}
	email.Attachments = n.attachments(msg, id)
	return email, true
}

// Contact normalizes msg as an address-book entry. The display name is taken
// from the subject and the address from the sender.
func (n *Normalizer) Contact(msg mailstore.Message, folder string) (corpus.Contact, bool) {
	k, ok := n.begin(msg, corpus.KindContact, folder)
	if !ok {
		return corpus.Contact{}, false
	}
	id := k.id()
	f := fields{n: n, kind: corpus.KindContact, id: id}

	return corpus.Contact{
		ID:               id,
		Folder:           folder,
		DisplayName:      k.subject,
		EmailAddress:     k.senderEmail,
		CreationTime:     k.created,
		ModificationTime: f.timestamp("modification_time", msg.ModificationTime),
	}, true
}

// Calendar normalizes msg as an appointment. Stores expose no dedicated start
// time, so the creation time stands in for it; attendees come from the
// recipient list.
func (n *Normalizer) Calendar(msg mailstore.Message, folder string) (corpus.CalendarEvent, bool) {
	k, ok := n.begin(msg, corpus.KindCalendar, folder)
	if !ok {
		return corpus.CalendarEvent{}, false
	}
	id := k.id()
	f := fields{n: n, kind: corpus.KindCalendar, id: id}

	return corpus.CalendarEvent{
		ID:           id,
		Folder:       folder,
		Subject:      k.subject,
		StartTime:    k.created,
		Organizer:    f.text("organizer", msg.SenderName),
		Attendees:    n.attendees(msg, id),
		Body:         f.body("body", msg.PlainTextBody),
		Importance:   f.text("importance", msg.Importance),
		CreationTime: k.created,
	}, true
}

// Task normalizes msg as a to-do item.
func (n *Normalizer) Task(msg mailstore.Message, folder string) (corpus.Task, bool) {
	k, ok := n.begin(msg, corpus.KindTask, folder)
	if !ok {
		return corpus.Task{}, false
	}
	id := k.id()
	f := fields{n: n, kind: corpus.KindTask, id: id}

	return corpus.Task{
		ID:           id,
		Folder:       folder,
		Subject:      k.subject,
		Body:         f.body("body", msg.PlainTextBody),
		Priority:     f.text("priority", msg.Priority),
		CreationTime: k.created,
	}, true
}

// Note normalizes msg as a sticky note.
func (n *Normalizer) Note(msg mailstore.Message, folder string) (corpus.Note, bool) {
	k, ok := n.begin(msg, corpus.KindNote, folder)
	if !ok {
		return corpus.Note{}, false
	}
	id := k.id()
	f := fields{n: n, kind: corpus.KindNote, id: id}

	return corpus.Note{
		ID:               id,
		Folder:           folder,
		Subject:          k.subject,
		Body:             f.body("body", msg.PlainTextBody),
		CreationTime:     k.created,
		ModificationTime: f.timestamp("modification_time", msg.ModificationTime),
		Size:             f.number("size", msg.Size),
	}, true
}

// Journal normalizes msg as a journal entry.
func (n *Normalizer) Journal(msg mailstore.Message, folder string) (corpus.JournalEntry, bool) {
	k, ok := n.begin(msg, corpus.KindJournal, folder)
	if !ok {
		return corpus.JournalEntry{}, false
	}
	id := k.id()
	f := fields{n: n, kind: corpus.KindJournal, id: id}

	return corpus.JournalEntry{
		ID:           id,
		Folder:       folder,
		Subject:      k.subject,
		Body:         f.body("body", msg.PlainTextBody),
		StartTime:    k.created,
		CreationTime: k.created,
	}, true
}

func textOf(o mailstore.Optional[mailstore.Text]) string {
	if v, ok := o.Get(); ok {
		return v.String()
	}
	return ""
}

// timeOf renders a timestamp in the canonical form. The zero time is treated
// as absent.
func timeOf(o mailstore.Optional[time.Time]) string {
	if v, ok := o.Get(); ok && !v.IsZero() {
		return v.UTC().Format(corpus.TimeLayout)
	}
	return ""
}

// FormatTime renders t in the canonical timestamp form.
func FormatTime(t time.Time) string {
	return timeOf(mailstore.Some(t))
}

// truncate applies the configured body limit.
func (n *Normalizer) truncate(s string) string {
	return textutil.Truncate(s, n.bodyLimit)
}
