// Package stats computes corpus-wide aggregates over a normalized result.
package stats

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"mailcorpus/internal/corpus"
)

// DefaultTopSenders is the length bound of Statistics.TopSenders.
const DefaultTopSenders = 10

// Aggregator computes Statistics. The zero value uses DefaultTopSenders and
// the default logger. TopN outside 1..DefaultTopSenders is clamped.
type Aggregator struct {
	TopN   int
	Logger *slog.Logger
}

// Aggregate computes Statistics with the default settings.
func Aggregate(r *corpus.Result, run corpus.RunInfo) corpus.Statistics {
	return Aggregator{}.Aggregate(r, run)
}

// Aggregate computes Statistics for r. It only reads r.
func (a Aggregator) Aggregate(r *corpus.Result, run corpus.RunInfo) corpus.Statistics {
	topN := a.TopN
	if topN <= 0 || topN > DefaultTopSenders {
		topN = DefaultTopSenders
	}
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}

	st := corpus.Statistics{
		TotalEmails:         r.Count(corpus.KindEmail),
		TotalContacts:       r.Count(corpus.KindContact),
		TotalCalendarEvents: r.Count(corpus.KindCalendar),
		TotalTasks:          r.Count(corpus.KindTask),
		TotalNotes:          r.Count(corpus.KindNote),
		TotalJournalEntries: r.Count(corpus.KindJournal),
		TotalAttachments:    len(r.Attachments),
		Accounts:            map[string]int{},
		Senders:             map[string]int{},
		TopSenders:          []corpus.SenderCount{},
		AnalysisDate:        run.AnalysisDate,
		SourceFile:          run.Source,
		SourceFileSize:      run.SourceSize,
	}

	// Tally senders in traversal order so ties resolve to first occurrence.
	var order []string
	var earliest, latest string
	excluded := 0
	for _, e := range r.Emails {
		if acct := Account(e.Folder); acct != "" {
			st.Accounts[acct]++
		}

		if e.SenderEmail != "" {
			if st.Senders[e.SenderEmail] == 0 {
				order = append(order, e.SenderEmail)
			}
			st.Senders[e.SenderEmail]++
		}

		if e.DeliveryTime == "" {
			continue
		}
		if !IsCanonical(e.DeliveryTime) {
			excluded++
			continue
		}
		if earliest == "" || e.DeliveryTime < earliest {
			earliest = e.DeliveryTime
		}
		if latest == "" || e.DeliveryTime > latest {
			latest = e.DeliveryTime
		}
	}

	if earliest != "" {
		st.EmailDateRange = &corpus.DateRange{Earliest: earliest, Latest: latest}
	}
	if excluded > 0 {
		logger.Warn("delivery times not in canonical form excluded from date range", "count", excluded)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return st.Senders[order[i]] > st.Senders[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}
	for _, s := range order {
		st.TopSenders = append(st.TopSenders, corpus.SenderCount{Sender: s, Count: st.Senders[s]})
	}

	return st
}

// Account returns the account an email belongs to: the first segment of its
// folder path.
func Account(folder string) string {
	acct, _, _ := strings.Cut(folder, "/")
	return acct
}

// IsCanonical reports whether s is a timestamp in corpus.TimeLayout. Only
// canonical values order correctly as strings.
func IsCanonical(s string) bool {
	if len(s) != len(corpus.TimeLayout) {
		return false
	}
	_, err := time.Parse(corpus.TimeLayout, s)
	return err == nil
}
