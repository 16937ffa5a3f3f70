// Package mailstore defines the capability interfaces the extraction engine
// consumes. A back-end exposes an already-decoded mail store as a tree of
// folders and messages.
//
// Every attribute accessor returns (Optional, error). A None value means the
// back-end does not carry the attribute for this item; a non-nil error means
// the attribute exists but could not be read. Callers must treat both as
// normal and substitute defaults.
//
// The folder graph is assumed to be a tree. Back-ends that can present the
// same folder under two parents must not be used with the walker.
package mailstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_mailstore.go -package=mocks mailcorpus/internal/mailstore Opener,Store,Folder,Message,Recipient,Attachment

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by an Opener when the path does not exist.
	ErrNotFound = errors.New("store not found")
	// ErrCorrupt is returned by an Opener when the container cannot be read.
	ErrCorrupt = errors.New("store unreadable")
	// ErrUnsupported is returned by an Opener that does not handle the path.
	ErrUnsupported = errors.New("unsupported store format")
)

// Opener opens a store at a path.
type Opener interface {
	Open(ctx context.Context, path string) (Store, error)
}

// StoreInfo describes an opened store.
type StoreInfo struct {
	Format string
	Path   string
	Size   int64
}

// Store is an opened mail store.
type Store interface {
	Info() StoreInfo
	RootFolder() (Folder, error)
	Close() error
}

// Folder is a node of the store tree.
type Folder interface {
	Name() (Optional[Text], error)
	SubFolders() ([]Folder, error)
	Messages() ([]Message, error)
}

// Message is a single store item. The same accessor set is used for every
// item kind; back-ends leave unsupported attributes as None.
type Message interface {
	Subject() (Optional[Text], error)
	SenderName() (Optional[Text], error)
	SenderEmail() (Optional[Text], error)
	PlainTextBody() (Optional[Text], error)
	HTMLBody() (Optional[Text], error)
	DeliveryTime() (Optional[time.Time], error)
	CreationTime() (Optional[time.Time], error)
	ModificationTime() (Optional[time.Time], error)
	Size() (Optional[int64], error)
	MessageClass() (Optional[Text], error)
	Priority() (Optional[Text], error)
	Importance() (Optional[Text], error)
	Categories() (Optional[Text], error)
	IsRead() (Optional[bool], error)
	Recipients() ([]Recipient, error)
	Attachments() ([]Attachment, error)
}

// Recipient is one addressee of a message.
type Recipient interface {
	Name() (Optional[Text], error)
	Address() (Optional[Text], error)
	Type() (Optional[Text], error)
}

// Attachment is one attachment of a message.
type Attachment interface {
	Name() (Optional[Text], error)
	Size() (Optional[int64], error)
	Type() (Optional[Text], error)
	// Data returns the raw payload. A nil or empty payload means there is
	// nothing to persist.
	Data() ([]byte, error)
}

// Recipient types as rendered in normalized records.
const (
	RecipientTo  = "to"
	RecipientCc  = "cc"
	RecipientBcc = "bcc"
)
