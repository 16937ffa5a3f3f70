package normalize

import (
	"strconv"

	"mailcorpus/internal/corpus"
	"mailcorpus/internal/mailstore"
)

// recipients extracts the addressees of msg. A failure to list them yields
// an empty slice; a failure on one recipient's attribute only defaults that
// attribute.
func (n *Normalizer) recipients(msg mailstore.Message, ownerID string) (out []corpus.Recipient) {
	out = []corpus.Recipient{}
	defer func() {
		if r := recover(); r != nil {
			n.logger.Debug("recipient extraction panicked", "id", ownerID, "panic", r)
			out = []corpus.Recipient{}
		}
	}()

	list, err := msg.Recipients()
	if err != nil {
		n.logger.Debug("recipients unreadable", "id", ownerID, "error", err)
		return out
	}

	f := fields{n: n, kind: corpus.KindEmail, id: ownerID}
	for _, r := range list {
		out = append(out, corpus.Recipient{
			Name:  f.text("recipient.name", r.Name),
			Email: f.text("recipient.email", r.Address),
			Type:  f.text("recipient.type", r.Type),
		})
	}
	return out
}

// attendees renders the recipient list of an appointment as plain strings,
// preferring the address over the display name.
func (n *Normalizer) attendees(msg mailstore.Message, ownerID string) []string {
	out := []string{}
	for _, r := range n.recipients(msg, ownerID) {
		switch {
		case r.Email != "":
			out = append(out, r.Email)
		case r.Name != "":
			out = append(out, r.Name)
		}
	}
	return out
}

// attachments describes the attachments of msg and persists their payloads.
// A failure to list them yields an empty slice. A payload that cannot be
// saved leaves SavedPath nil without dropping the record.
func (n *Normalizer) attachments(msg mailstore.Message, ownerID string) (out []corpus.Attachment) {
	out = []corpus.Attachment{}
	defer func() {
		if r := recover(); r != nil {
			n.logger.Debug("attachment extraction panicked", "id", ownerID, "panic", r)
			out = []corpus.Attachment{}
		}
	}()

	list, err := msg.Attachments()
	if err != nil {
		n.logger.Debug("attachments unreadable", "id", ownerID, "error", err)
		return out
	}

	f := fields{n: n, kind: corpus.KindEmail, id: ownerID}
	for i, att := range list {
		rec := corpus.Attachment{
			EmailID: ownerID,
			Index:   i,
			Name:    f.text("attachment.name", att.Name),
			Size:    f.number("attachment.size", att.Size),
			Type:    f.text("attachment.type", att.Type),
		}
		if rec.Name == "" {
			rec.Name = "attachment_" + strconv.Itoa(i)
		}
		if path, ok := n.persist(att, ownerID, i); ok {
			rec.SavedPath = &path
		}
		out = append(out, rec)
	}
	return out
}

// persist hands one payload to the saver, containing any panic it raises.
func (n *Normalizer) persist(att mailstore.Attachment, ownerID string, index int) (path string, ok bool) {
	if n.saver == nil {
		return "", false
	}
	defer func() {
		if r := recover(); r != nil {
			n.logger.Warn("attachment persistence panicked", "email_id", ownerID, "index", index, "panic", r)
			path, ok = "", false
		}
	}()
	return n.saver.Persist(att, ownerID, index)
}
