package dirstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	gomessage "github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"

	"mailcorpus/internal/mailstore"
)

// messageClass is reported for every parsed file; RFC 5322 messages carry
// no item class of their own.
const messageClass = "IPM.Note"

// item is one parsed message. Header values that cannot be decoded are
// returned as raw bytes, address headers that cannot be parsed read as
// absent, and a body that fails to decode part way keeps what was read.
type item struct {
	err      error
	hdr      mail.Header
	size     int64
	modified mailstore.Optional[time.Time]

	plain    []byte
	html     []byte
	hasPlain bool
	hasHTML  bool
	bodyErr  error

	files []mailstore.Attachment
}

// parse decodes raw. It never fails; an unparseable message reports the
// parse error from every accessor.
func parse(raw []byte) *item {
	m := &item{size: int64(len(raw))}

	e, err := gomessage.Read(bytes.NewReader(raw))
	if e == nil {
		m.err = fmt.Errorf("failed to parse message: %w", err)
		return m
	}
	m.hdr = mail.Header{Header: e.Header}
	m.readParts(mail.NewReader(e))
	return m
}

func (m *item) readParts(mr *mail.Reader) {
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return
		}
		if p == nil {
			m.bodyErr = fmt.Errorf("failed to read part: %w", err)
			return
		}

		switch h := p.Header.(type) {
		case *mail.InlineHeader:
			ct, params, _ := h.ContentType()
			if ct != "" && !strings.HasPrefix(ct, "text/") {
				m.addFile(params["name"], ct, p.Body)
				continue
			}
			body, err := io.ReadAll(p.Body)
			if err != nil {
				m.bodyErr = fmt.Errorf("failed to read body: %w", err)
				continue
			}
			switch {
			case ct == "text/html" && !m.hasHTML:
				m.html, m.hasHTML = body, true
			case (ct == "" || ct == "text/plain") && !m.hasPlain:
				m.plain, m.hasPlain = body, true
			}
		case *mail.AttachmentHeader:
			name, _ := h.Filename()
			ct, _, _ := h.ContentType()
			m.addFile(name, ct, p.Body)
		}
	}
}

func (m *item) addFile(name, ct string, body io.Reader) {
	data, err := io.ReadAll(body)
	m.files = append(m.files, &file{name: name, mimeType: ct, data: data, err: err})
}

// text reads a header that may be RFC 2047 encoded.
func (m *item) text(key string) (mailstore.Optional[mailstore.Text], error) {
	if m.err != nil {
		return mailstore.None[mailstore.Text](), m.err
	}
	if !m.hdr.Has(key) {
		return mailstore.None[mailstore.Text](), nil
	}
	s, err := m.hdr.Text(key)
	if err != nil {
		return mailstore.Some(mailstore.Bytes([]byte(m.hdr.Get(key)))), nil
	}
	return mailstore.SomeString(s), nil
}

func (m *item) from() (*mail.Address, error) {
	if m.err != nil {
		return nil, m.err
	}
	list, err := m.hdr.AddressList("From")
	if err != nil || len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (m *item) Subject() (mailstore.Optional[mailstore.Text], error) {
	return m.text("Subject")
}

func (m *item) SenderName() (mailstore.Optional[mailstore.Text], error) {
	addr, err := m.from()
	if err != nil || addr == nil || addr.Name == "" {
		return mailstore.None[mailstore.Text](), err
	}
	return mailstore.SomeString(addr.Name), nil
}

func (m *item) SenderEmail() (mailstore.Optional[mailstore.Text], error) {
	addr, err := m.from()
	if err != nil || addr == nil {
		return mailstore.None[mailstore.Text](), err
	}
	return mailstore.SomeString(addr.Address), nil
}

func (m *item) body(data []byte, ok bool) (mailstore.Optional[mailstore.Text], error) {
	if m.err != nil {
		return mailstore.None[mailstore.Text](), m.err
	}
	if !ok {
		return mailstore.None[mailstore.Text](), m.bodyErr
	}
	return mailstore.Some(mailstore.Bytes(data)), nil
}

func (m *item) PlainTextBody() (mailstore.Optional[mailstore.Text], error) {
	return m.body(m.plain, m.hasPlain)
}

func (m *item) HTMLBody() (mailstore.Optional[mailstore.Text], error) {
	return m.body(m.html, m.hasHTML)
}

// DeliveryTime reports a malformed Date header as an error.
func (m *item) DeliveryTime() (mailstore.Optional[time.Time], error) {
	if m.err != nil {
		return mailstore.None[time.Time](), m.err
	}
	if !m.hdr.Has("Date") {
		return mailstore.None[time.Time](), nil
	}
	t, err := m.hdr.Date()
	if err != nil {
		return mailstore.None[time.Time](), fmt.Errorf("malformed Date header: %w", err)
	}
	return mailstore.Some(t), nil
}

// CreationTime is the Date header too, but a malformed one reads as absent
// so the message keeps a stable identity instead of being dropped.
func (m *item) CreationTime() (mailstore.Optional[time.Time], error) {
	if m.err != nil {
		return mailstore.None[time.Time](), m.err
	}
	t, err := m.DeliveryTime()
	if err != nil {
		return mailstore.None[time.Time](), nil
	}
	return t, nil
}

func (m *item) ModificationTime() (mailstore.Optional[time.Time], error) {
	if m.err != nil {
		return mailstore.None[time.Time](), m.err
	}
	return m.modified, nil
}

func (m *item) Size() (mailstore.Optional[int64], error) {
	if m.err != nil {
		return mailstore.None[int64](), m.err
	}
	return mailstore.Some(m.size), nil
}

func (m *item) MessageClass() (mailstore.Optional[mailstore.Text], error) {
	if m.err != nil {
		return mailstore.None[mailstore.Text](), m.err
	}
	return mailstore.SomeString(messageClass), nil
}

func (m *item) Priority() (mailstore.Optional[mailstore.Text], error) {
	return m.text("X-Priority")
}

func (m *item) Importance() (mailstore.Optional[mailstore.Text], error) {
	return m.text("Importance")
}

func (m *item) Categories() (mailstore.Optional[mailstore.Text], error) {
	return m.text("Keywords")
}

// IsRead follows the mbox Status header convention: an R flag means read.
func (m *item) IsRead() (mailstore.Optional[bool], error) {
	if m.err != nil {
		return mailstore.None[bool](), m.err
	}
	if !m.hdr.Has("Status") {
		return mailstore.None[bool](), nil
	}
	return mailstore.Some(strings.ContainsRune(m.hdr.Get("Status"), 'R')), nil
}

var recipientHeaders = []struct {
	key string
	typ string
}{
	{key: "To", typ: mailstore.RecipientTo},
	{key: "Cc", typ: mailstore.RecipientCc},
	{key: "Bcc", typ: mailstore.RecipientBcc},
}

// Recipients lists To, Cc and Bcc addressees in that order. A header that
// cannot be parsed contributes nobody.
func (m *item) Recipients() ([]mailstore.Recipient, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []mailstore.Recipient{}
	for _, rh := range recipientHeaders {
		list, err := m.hdr.AddressList(rh.key)
		if err != nil {
			continue
		}
		for _, a := range list {
			out = append(out, recipient{name: a.Name, address: a.Address, typ: rh.typ})
		}
	}
	return out, nil
}

func (m *item) Attachments() ([]mailstore.Attachment, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]mailstore.Attachment, len(m.files))
	copy(out, m.files)
	return out, nil
}

type recipient struct {
	name    string
	address string
	typ     string
}

func optionalString(s string) mailstore.Optional[mailstore.Text] {
	if s == "" {
		return mailstore.None[mailstore.Text]()
	}
	return mailstore.SomeString(s)
}

func (r recipient) Name() (mailstore.Optional[mailstore.Text], error) {
	return optionalString(r.name), nil
}

func (r recipient) Address() (mailstore.Optional[mailstore.Text], error) {
	return optionalString(r.address), nil
}

func (r recipient) Type() (mailstore.Optional[mailstore.Text], error) {
	return mailstore.SomeString(r.typ), nil
}

type file struct {
	name     string
	mimeType string
	data     []byte
	err      error
}

func (f *file) Name() (mailstore.Optional[mailstore.Text], error) {
	return optionalString(f.name), nil
}

func (f *file) Size() (mailstore.Optional[int64], error) {
	return mailstore.Some(int64(len(f.data))), nil
}

func (f *file) Type() (mailstore.Optional[mailstore.Text], error) {
	return optionalString(f.mimeType), nil
}

func (f *file) Data() ([]byte, error) {
	if f.err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", f.err)
	}
	return f.data, nil
}
