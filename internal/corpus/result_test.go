package corpus

import "testing"

func TestResult_Count(t *testing.T) {
	r := NewResult()
	r.Emails = append(r.Emails, Email{ID: "a"}, Email{ID: "b"})
	r.Calendar = append(r.Calendar, CalendarEvent{ID: "c"})
	r.Journal = append(r.Journal, JournalEntry{ID: "d"})

	tests := []struct {
		kind Kind
		want int
	}{
		{KindEmail, 2},
		{KindContact, 0},
		{KindCalendar, 1},
		{KindTask, 0},
		{KindNote, 0},
		{KindJournal, 1},
		{Kind("unknown"), 0},
	}
	for _, tt := range tests {
		if got := r.Count(tt.kind); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
