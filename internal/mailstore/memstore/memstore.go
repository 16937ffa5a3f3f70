// Package memstore is an in-memory mail store used for fixtures and tests.
package memstore

import (
	"context"
	"fmt"
	"time"

	"mailcorpus/internal/mailstore"
)

// Attribute keys understood by Fields.
const (
	Subject          = "subject"
	SenderName       = "sender_name"
	SenderEmail      = "sender_email"
	PlainTextBody    = "body_plain"
	HTMLBody         = "body_html"
	DeliveryTime     = "delivery_time"
	CreationTime     = "creation_time"
	ModificationTime = "modification_time"
	Size             = "size"
	MessageClass     = "message_class"
	Priority         = "priority"
	Importance       = "importance"
	Categories       = "categories"
	IsRead           = "is_read"

	Name    = "name"
	Address = "address"
	Type    = "type"
)

// Fields holds attribute values by key. Supported value types are string,
// []byte, time.Time, int, int64 and bool. A key that is missing is reported
// as absent; a value of the wrong type is reported as a read error, as is
// any key present in Errs.
type Fields map[string]any

func text(f Fields, errs map[string]error, key string) (mailstore.Optional[mailstore.Text], error) {
	if err := errs[key]; err != nil {
		return mailstore.None[mailstore.Text](), err
	}
	v, ok := f[key]
	if !ok {
		return mailstore.None[mailstore.Text](), nil
	}
	switch x := v.(type) {
	case string:
		return mailstore.Some(mailstore.String(x)), nil
	case []byte:
		return mailstore.Some(mailstore.Bytes(x)), nil
	default:
		return mailstore.None[mailstore.Text](), fmt.Errorf("attribute %s has type %T, want text", key, v)
	}
}

func timestamp(f Fields, errs map[string]error, key string) (mailstore.Optional[time.Time], error) {
	if err := errs[key]; err != nil {
		return mailstore.None[time.Time](), err
	}
	v, ok := f[key]
	if !ok {
		return mailstore.None[time.Time](), nil
	}
	t, ok := v.(time.Time)
	if !ok {
		return mailstore.None[time.Time](), fmt.Errorf("attribute %s has type %T, want time", key, v)
	}
	return mailstore.Some(t), nil
}

func integer(f Fields, errs map[string]error, key string) (mailstore.Optional[int64], error) {
	if err := errs[key]; err != nil {
		return mailstore.None[int64](), err
	}
	v, ok := f[key]
	if !ok {
		return mailstore.None[int64](), nil
	}
	switch x := v.(type) {
	case int:
		return mailstore.Some(int64(x)), nil
	case int64:
		return mailstore.Some(x), nil
	default:
		return mailstore.None[int64](), fmt.Errorf("attribute %s has type %T, want integer", key, v)
	}
}

func boolean(f Fields, errs map[string]error, key string) (mailstore.Optional[bool], error) {
	if err := errs[key]; err != nil {
		return mailstore.None[bool](), err
	}
	v, ok := f[key]
	if !ok {
		return mailstore.None[bool](), nil
	}
	b, ok := v.(bool)
	if !ok {
		return mailstore.None[bool](), fmt.Errorf("attribute %s has type %T, want bool", key, v)
	}
	return mailstore.Some(b), nil
}

// Store is an in-memory mailstore.Store.
type Store struct {
	Path    string
	Root    *Folder
	RootErr error
	Closed  bool
}

// Info implements mailstore.Store.
func (s *Store) Info() mailstore.StoreInfo {
	return mailstore.StoreInfo{Format: "memory", Path: s.Path}
}

// RootFolder implements mailstore.Store.
func (s *Store) RootFolder() (mailstore.Folder, error) {
	if s.RootErr != nil {
		return nil, s.RootErr
	}
	if s.Root == nil {
		return &Folder{}, nil
	}
	return s.Root, nil
}

// Close implements mailstore.Store.
func (s *Store) Close() error {
	s.Closed = true
	return nil
}

// Opener serves stores from a map keyed by path.
type Opener struct {
	Stores map[string]*Store
}

// Open implements mailstore.Opener.
func (o *Opener) Open(_ context.Context, path string) (mailstore.Store, error) {
	s, ok := o.Stores[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, mailstore.ErrNotFound)
	}
	return s, nil
}

// Folder is an in-memory mailstore.Folder.
type Folder struct {
	FolderName    string
	Children      []*Folder
	Items         []*Message
	SubFoldersErr error
	MessagesErr   error
}

// NewFolder builds a folder with the given children.
func NewFolder(name string, items []*Message, children ...*Folder) *Folder {
	return &Folder{FolderName: name, Items: items, Children: children}
}

// Name implements mailstore.Folder.
func (f *Folder) Name() (mailstore.Optional[mailstore.Text], error) {
	return mailstore.SomeString(f.FolderName), nil
}

// SubFolders implements mailstore.Folder.
func (f *Folder) SubFolders() ([]mailstore.Folder, error) {
	if f.SubFoldersErr != nil {
		return nil, f.SubFoldersErr
	}
	out := make([]mailstore.Folder, len(f.Children))
	for i, c := range f.Children {
		out[i] = c
	}
	return out, nil
}

// Messages implements mailstore.Folder.
func (f *Folder) Messages() ([]mailstore.Message, error) {
	if f.MessagesErr != nil {
		return nil, f.MessagesErr
	}
	out := make([]mailstore.Message, len(f.Items))
	for i, m := range f.Items {
		out[i] = m
	}
	return out, nil
}

// Message is an in-memory mailstore.Message. When Fail is set every
// accessor returns it.
type Message struct {
	Fields    Fields
	Errs      map[string]error
	To        []*Recipient
	Files     []*Attachment
	RecipErr  error
	AttachErr error
	Fail      error
}

// NewMessage builds a message with the three identity attributes set.
func NewMessage(subject, senderEmail string, created time.Time) *Message {
	return &Message{Fields: Fields{
		Subject:      subject,
		SenderEmail:  senderEmail,
		CreationTime: created,
		DeliveryTime: created,
	}}
}

func (m *Message) text(key string) (mailstore.Optional[mailstore.Text], error) {
	if m.Fail != nil {
		return mailstore.None[mailstore.Text](), m.Fail
	}
	return text(m.Fields, m.Errs, key)
}

func (m *Message) time(key string) (mailstore.Optional[time.Time], error) {
	if m.Fail != nil {
		return mailstore.None[time.Time](), m.Fail
	}
	return timestamp(m.Fields, m.Errs, key)
}

func (m *Message) Subject() (mailstore.Optional[mailstore.Text], error) { return m.text(Subject) }
func (m *Message) SenderName() (mailstore.Optional[mailstore.Text], error) {
	return m.text(SenderName)
}
func (m *Message) SenderEmail() (mailstore.Optional[mailstore.Text], error) {
	return m.text(SenderEmail)
}
func (m *Message) PlainTextBody() (mailstore.Optional[mailstore.Text], error) {
	return m.text(PlainTextBody)
}
func (m *Message) HTMLBody() (mailstore.Optional[mailstore.Text], error) { return m.text(HTMLBody) }
func (m *Message) DeliveryTime() (mailstore.Optional[time.Time], error) {
	return m.time(DeliveryTime)
}
func (m *Message) CreationTime() (mailstore.Optional[time.Time], error) {
	return m.time(CreationTime)
}
func (m *Message) ModificationTime() (mailstore.Optional[time.Time], error) {
	return m.time(ModificationTime)
}
func (m *Message) MessageClass() (mailstore.Optional[mailstore.Text], error) {
	return m.text(MessageClass)
}
func (m *Message) Priority() (mailstore.Optional[mailstore.Text], error) { return m.text(Priority) }
func (m *Message) Importance() (mailstore.Optional[mailstore.Text], error) {
	return m.text(Importance)
}
func (m *Message) Categories() (mailstore.Optional[mailstore.Text], error) {
	return m.text(Categories)
}

func (m *Message) Size() (mailstore.Optional[int64], error) {
	if m.Fail != nil {
		return mailstore.None[int64](), m.Fail
	}
	return integer(m.Fields, m.Errs, Size)
}

func (m *Message) IsRead() (mailstore.Optional[bool], error) {
	if m.Fail != nil {
		return mailstore.None[bool](), m.Fail
	}
	return boolean(m.Fields, m.Errs, IsRead)
}

func (m *Message) Recipients() ([]mailstore.Recipient, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	if m.RecipErr != nil {
		return nil, m.RecipErr
	}
	out := make([]mailstore.Recipient, len(m.To))
	for i, r := range m.To {
		out[i] = r
	}
	return out, nil
}

func (m *Message) Attachments() ([]mailstore.Attachment, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	if m.AttachErr != nil {
		return nil, m.AttachErr
	}
	out := make([]mailstore.Attachment, len(m.Files))
	for i, a := range m.Files {
		out[i] = a
	}
	return out, nil
}

// Recipient is an in-memory mailstore.Recipient.
type Recipient struct {
	Fields Fields
	Errs   map[string]error
}

// NewRecipient builds a recipient.
func NewRecipient(name, address, typ string) *Recipient {
	return &Recipient{Fields: Fields{Name: name, Address: address, Type: typ}}
}

func (r *Recipient) Name() (mailstore.Optional[mailstore.Text], error) {
	return text(r.Fields, r.Errs, Name)
}
func (r *Recipient) Address() (mailstore.Optional[mailstore.Text], error) {
	return text(r.Fields, r.Errs, Address)
}
func (r *Recipient) Type() (mailstore.Optional[mailstore.Text], error) {
	return text(r.Fields, r.Errs, Type)
}

// Attachment is an in-memory mailstore.Attachment.
type Attachment struct {
	Fields  Fields
	Errs    map[string]error
	Payload []byte
	DataErr error
}

// NewAttachment builds an attachment whose size is the payload length.
func NewAttachment(name, mimeType string, payload []byte) *Attachment {
	return &Attachment{
		Fields:  Fields{Name: name, Type: mimeType, Size: int64(len(payload))},
		Payload: payload,
	}
}

func (a *Attachment) Name() (mailstore.Optional[mailstore.Text], error) {
	return text(a.Fields, a.Errs, Name)
}
func (a *Attachment) Size() (mailstore.Optional[int64], error) {
	return integer(a.Fields, a.Errs, Size)
}
func (a *Attachment) Type() (mailstore.Optional[mailstore.Text], error) {
	return text(a.Fields, a.Errs, Type)
}
func (a *Attachment) Data() ([]byte, error) {
	if a.DataErr != nil {
		return nil, a.DataErr
	}
	return a.Payload, nil
}
