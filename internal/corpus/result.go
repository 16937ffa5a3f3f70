package corpus

// DateRange is the earliest and latest canonical delivery timestamp.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// SenderCount is one entry of the top-senders list.
type SenderCount struct {
	Sender string `json:"sender"`
	Count  int    `json:"count"`
}

// Statistics are corpus-wide aggregates computed once per run.
type Statistics struct {
	TotalEmails         int            `json:"total_emails"`
	TotalContacts       int            `json:"total_contacts"`
	TotalCalendarEvents int            `json:"total_calendar_events"`
	TotalTasks          int            `json:"total_tasks"`
	TotalNotes          int            `json:"total_notes"`
	TotalJournalEntries int            `json:"total_journal_entries"`
	TotalAttachments    int            `json:"total_attachments"`
	Accounts            map[string]int `json:"accounts"`
	Senders             map[string]int `json:"senders"`
	TopSenders          []SenderCount  `json:"top_senders"`
	EmailDateRange      *DateRange     `json:"email_date_range,omitempty"`
	AnalysisDate        string         `json:"analysis_date"`
	SourceFile          string         `json:"source_file"`
	SourceFileSize      int64          `json:"source_file_size"`
}

// RunInfo is the run metadata folded into Statistics.
type RunInfo struct {
	Source       string
	SourceSize   int64
	AnalysisDate string
}

// Result is the complete corpus of one run.
type Result struct {
	Emails      []Email         `json:"emails"`
	Contacts    []Contact       `json:"contacts"`
	Calendar    []CalendarEvent `json:"calendar"`
	Tasks       []Task          `json:"tasks"`
	Notes       []Note          `json:"notes"`
	Journal     []JournalEntry  `json:"journal"`
	Attachments []Attachment    `json:"attachments"`
	Statistics  Statistics      `json:"statistics"`
}

// NewResult returns a Result with every collection non-nil, so empty
// collections serialize as [] rather than null.
func NewResult() *Result {
	return &Result{
		Emails:      []Email{},
		Contacts:    []Contact{},
		Calendar:    []CalendarEvent{},
		Tasks:       []Task{},
		Notes:       []Note{},
		Journal:     []JournalEntry{},
		Attachments: []Attachment{},
		Statistics: Statistics{
			Accounts:   map[string]int{},
			Senders:    map[string]int{},
			TopSenders: []SenderCount{},
		},
	}
}

// Count returns the number of items of the given kind.
func (r *Result) Count(k Kind) int {
	switch k {
	case KindEmail:
		return len(r.Emails)
	case KindContact:
		return len(r.Contacts)
	case KindCalendar:
		return len(r.Calendar)
	case KindTask:
		return len(r.Tasks)
	case KindNote:
		return len(r.Notes)
	case KindJournal:
		return len(r.Journal)
	}
	return 0
}
