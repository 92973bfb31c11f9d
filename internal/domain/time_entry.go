package domain

import "time"

// TimeEntry is one tracked interval of work on a project. StartTime and
// EndTime are epoch milliseconds. EndTime is nil while the timer is
// running; Running is true only for an entry without an end time, and at
// most one entry in the whole store may be running at any moment.
type TimeEntry struct {
	ID        string
	ProjectID string
	StartTime int64
	EndTime   *int64
	Running   bool
	CreatedAt time.Time
}

// Worktime returns EndTime minus StartTime in milliseconds, treating a
// missing value as 0. A running entry therefore reports 0 minus its start,
// not an "ongoing" duration; callers that want live durations must compute
// them against the clock themselves.
func (e *TimeEntry) Worktime() int64 {
	var start, end int64
	if e != nil {
		start = e.StartTime
		if e.EndTime != nil {
			end = *e.EndTime
		}
	}
	return end - start
}

// Ended reports whether the entry has a recorded end time.
func (e *TimeEntry) Ended() bool {
	return e.EndTime != nil
}

// CombineBounds computes the spanning interval for a merge: the minimum
// start time and the maximum end time across the entries, where an absent
// end time counts as 0 rather than being excluded. A running entry thus
// never raises the combined end time; its start time still participates in
// the minimum. Returns ok=false for an empty slice.
func CombineBounds(entries []*TimeEntry) (start, end int64, ok bool) {
	if len(entries) == 0 {
		return 0, 0, false
	}

	start = entries[0].StartTime
	for _, e := range entries[1:] {
		if e.StartTime < start {
			start = e.StartTime
		}
	}

	for _, e := range entries {
		var v int64
		if e.EndTime != nil {
			v = *e.EndTime
		}
		if v > end {
			end = v
		}
	}

	return start, end, true
}
