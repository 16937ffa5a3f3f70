package memstore

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"mailcorpus/internal/identity"
)

// GenerateOptions controls Generate.
type GenerateOptions struct {
	Seed           uint64
	Folders        int
	PerFolder      int
	Senders        int
	AttachmentRate float64
	Start          time.Time
}

var folderPool = []string{"Inbox", "Sent Items", "Drafts", "Deleted Items", "Archive", "Projects", "Customers"}

// Generate builds a synthetic store: one top-level folder holding Folders
// sub-folders with PerFolder messages each. Output is fully determined by the
// options. Subjects carry a salted suffix so no two messages share an id.
func Generate(opts GenerateOptions) *Store {
	if opts.Senders < 1 {
		opts.Senders = 1
	}
	if opts.Start.IsZero() {
		opts.Start = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	top := &Folder{FolderName: "Top of Personal Folders"}
	seq := 0
	for f := 0; f < opts.Folders; f++ {
		name := folderPool[f%len(folderPool)]
		if f >= len(folderPool) {
			name += " " + strconv.Itoa(f/len(folderPool))
		}
		folder := &Folder{FolderName: name}
		for i := 0; i < opts.PerFolder; i++ {
			seq++
			// Skewed sender choice so tallies are uneven.
			s := int(float64(opts.Senders) * rng.Float64() * rng.Float64())
			sender := fmt.Sprintf("sender%02d@example.com", s)
			created := opts.Start.Add(time.Duration(rng.IntN(365*24*60)) * time.Minute)
			base := fmt.Sprintf("Message %d", seq)
			salt := strconv.FormatUint(rng.Uint64(), 16)
			subject := base + " " + identity.Salted(base, sender, created.Format(time.DateTime), salt)[:6]

			m := NewMessage(subject, sender, created)
			m.Fields[SenderName] = fmt.Sprintf("Sender %02d", s)
			m.Fields[PlainTextBody] = "Body of " + subject
			m.Fields[Size] = int64(1000 + rng.IntN(49000))
			m.Fields[MessageClass] = "IPM.Note"
			m.To = []*Recipient{NewRecipient("Owner", "owner@example.com", "to")}
			if rng.Float64() < opts.AttachmentRate {
				m.Files = []*Attachment{NewAttachment(fmt.Sprintf("file-%d.txt", seq), "text/plain", []byte(subject))}
			}
			folder.Items = append(folder.Items, m)
		}
		top.Children = append(top.Children, folder)
	}

	return &Store{Path: fmt.Sprintf("synthetic-%d", opts.Seed), Root: &Folder{Children: []*Folder{top}}}
}
