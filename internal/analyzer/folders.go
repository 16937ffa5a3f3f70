package analyzer

import "mailcorpus/internal/corpus"

// DefaultFolders are the well-known folder names searched for each item
// kind other than email, with the Turkish names Outlook uses in that locale.
var DefaultFolders = map[corpus.Kind][]string{
	corpus.KindContact:  {"Contacts", "Kişiler"},
	corpus.KindCalendar: {"Calendar", "Takvim"},
	corpus.KindTask:     {"Tasks", "Görevler"},
	corpus.KindNote:     {"Notes", "Notlar"},
	corpus.KindJournal:  {"Journal", "Günlük"},
}
