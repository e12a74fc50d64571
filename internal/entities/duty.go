// Package entities contains core business entities.
package entities

import "time"

// DutyStatus describes the active shift. Members keeps selection order,
// lead first. DaysRemaining is nil until a first draw sets the schedule.
type DutyStatus struct {
	Members       []Member
	NextDutyAt    *time.Time
	DaysRemaining *int
}

// HistoryEntry is an immutable record of a past assignment. Officers are
// snapshots taken at assignment time, not references into the roster.
type HistoryEntry struct {
	Date     time.Time
	Officers []Member
}

// Reminder is a notification intent for one on-duty member.
type Reminder struct {
	MemberID int64
	Message  string
}
