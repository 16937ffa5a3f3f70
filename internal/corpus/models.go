// Package corpus holds the normalized records produced by one extraction run.
package corpus

// Kind identifies the kind of a normalized item.
type Kind string

const (
	KindEmail    Kind = "email"
	KindContact  Kind = "contact"
	KindCalendar Kind = "calendar"
	KindTask     Kind = "task"
	KindNote     Kind = "note"
	KindJournal  Kind = "journal"
)

// Kinds lists every item kind in extraction order.
var Kinds = []Kind{KindEmail, KindContact, KindCalendar, KindTask, KindNote, KindJournal}

// TimeLayout is the canonical timestamp format for every emitted time.
const TimeLayout = "2006-01-02 15:04:05"

// Item is implemented by every normalized record type.
type Item interface {
	Kind() Kind
	ItemID() string
}

// Recipient is one addressee of an email.
type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

// Attachment describes one email attachment. SavedPath is nil when the
// payload could not be persisted.
type Attachment struct {
	EmailID   string  `json:"email_id"`
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Size      int64   `json:"size"`
	Type      string  `json:"type"`
	SavedPath *string `json:"saved_path"`
}

// Email is a normalized mail message.
type Email struct {
	ID               string       `json:"id"`
	Folder           string       `json:"folder"`
	Subject          string       `json:"subject"`
	SenderName       string       `json:"sender_name"`
	SenderEmail      string       `json:"sender_email"`
	Recipients       []Recipient  `json:"recipients"`
	DeliveryTime     string       `json:"delivery_time"`
	CreationTime     string       `json:"creation_time"`
	ModificationTime string       `json:"modification_time"`
	Size             int64        `json:"size"`
	BodyPlain        string       `json:"body_plain"`
	BodyHTML         string       `json:"body_html"`
	MessageClass     string       `json:"message_class"`
	Priority         string       `json:"priority"`
	Importance       string       `json:"importance"`
	Attachments      []Attachment `json:"attachments"`
	Categories       string       `json:"categories"`
	ReadFlag         bool         `json:"read_flag"`
}

// Contact is a normalized address-book entry.
type Contact struct {
	ID               string `json:"id"`
	Folder           string `json:"folder"`
	DisplayName      string `json:"display_name"`
	EmailAddress     string `json:"email_address"`
	BusinessPhone    string `json:"business_phone"`
	HomePhone        string `json:"home_phone"`
	MobilePhone      string `json:"mobile_phone"`
	Company          string `json:"company"`
	JobTitle         string `json:"job_title"`
	CreationTime     string `json:"creation_time"`
	ModificationTime string `json:"modification_time"`
}

// CalendarEvent is a normalized appointment.
type CalendarEvent struct {
	ID           string   `json:"id"`
	Folder       string   `json:"folder"`
	Subject      string   `json:"subject"`
	Location     string   `json:"location"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	Organizer    string   `json:"organizer"`
	Attendees    []string `json:"attendees"`
	Body         string   `json:"body"`
	Importance   string   `json:"importance"`
	CreationTime string   `json:"creation_time"`
}

// Task is a normalized to-do item.
type Task struct {
	ID              string `json:"id"`
	Folder          string `json:"folder"`
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	DueDate         string `json:"due_date"`
	StartDate       string `json:"start_date"`
	CompletionDate  string `json:"completion_date"`
	PercentComplete int    `json:"percent_complete"`
	CreationTime    string `json:"creation_time"`
}

// Note is a normalized sticky note.
type Note struct {
	ID               string `json:"id"`
	Folder           string `json:"folder"`
	Subject          string `json:"subject"`
	Body             string `json:"body"`
	CreationTime     string `json:"creation_time"`
	ModificationTime string `json:"modification_time"`
	Color            string `json:"color"`
	Size             int64  `json:"size"`
}

// JournalEntry is a normalized journal record.
type JournalEntry struct {
	ID           string `json:"id"`
	Folder       string `json:"folder"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	EntryType    string `json:"entry_type"`
	StartTime    string `json:"start_time"`
	Duration     int    `json:"duration"`
	Companies    string `json:"companies"`
	Contacts     string `json:"contacts"`
	CreationTime string `json:"creation_time"`
}

func (Email) Kind() Kind         { return KindEmail }
func (Contact) Kind() Kind       { return KindContact }
func (CalendarEvent) Kind() Kind { return KindCalendar }
func (Task) Kind() Kind          { return KindTask }
func (Note) Kind() Kind          { return KindNote }
func (JournalEntry) Kind() Kind  { return KindJournal }

func (e Email) ItemID() string         { return e.ID }
func (c Contact) ItemID() string       { return c.ID }
func (c CalendarEvent) ItemID() string { return c.ID }
func (t Task) ItemID() string          { return t.ID }
func (n Note) ItemID() string          { return n.ID }
func (j JournalEntry) ItemID() string  { return j.ID }
