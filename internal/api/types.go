// Package api holds the transport DTOs exchanged with the chat gateway.
package api

import "time"

// Member is the transport shape of a roster member.
type Member struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	JoinedDate time.Time `json:"joined_date"`
}

// JoinRequest registers the calling user into the roster.
type JoinRequest struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

// JoinResponse reports whether a new member was created.
type JoinResponse struct {
	Created bool   `json:"created"`
	Member  Member `json:"member"`
}

// LeaveRequest removes the calling user from the roster.
type LeaveRequest struct {
	ID int64 `json:"id"`
}

// RenameRequest changes a member's display name.
type RenameRequest struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
}

// RemoveRequest deletes an arbitrary member.
type RemoveRequest struct {
	ID int64 `json:"id"`
}

// DutyStatus is the current shift with schedule information.
type DutyStatus struct {
	Members       []Member   `json:"members"`
	NextDutyDate  *time.Time `json:"next_duty_date,omitempty"`
	DaysRemaining *int       `json:"days_remaining,omitempty"`
}

// DutySelection is the outcome of a draw or manual assignment.
type DutySelection struct {
	Members []Member `json:"members"`
}

// HistoryEntry is one past assignment.
type HistoryEntry struct {
	Date     time.Time `json:"date"`
	Officers []Member  `json:"officers"`
}

// Reminder is one notification intent for the gateway to deliver.
type Reminder struct {
	MemberID int64  `json:"member_id"`
	Message  string `json:"message"`
}

// PickRequest adds one member to an open manual-pick session.
type PickRequest struct {
	MemberID int64 `json:"member_id"`
}

// DurationRequest changes the rotation interval.
type DurationRequest struct {
	Days int `json:"days"`
}

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	// NOTFOUND marks a missing roster member.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// PERMISSIONDENIED marks a non-admin calling an admin operation.
	PERMISSIONDENIED ErrorResponseErrorCode = "PERMISSION_DENIED"
	// INVALIDARGUMENT marks failed input validation.
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	// EMPTYROSTER marks a draw over an empty roster.
	EMPTYROSTER ErrorResponseErrorCode = "EMPTY_ROSTER"
	// NOSESSION marks a missing or expired manual-pick session.
	NOSESSION ErrorResponseErrorCode = "NO_SESSION"
	// INTERNAL marks persistence and other unexpected failures.
	INTERNAL ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}
