package jsonfile

import (
	"time"

	"duty-rotation-service/internal/entities"
)

// document is the persisted state shape. Field names follow the on-disk
// JSON schema; timestamps are RFC 3339.
type document struct {
	Users          []memberDoc  `json:"users"`
	AvailableUsers []memberDoc  `json:"available_users"`
	CurrentDuty    []memberDoc  `json:"current_duty"`
	NextDutyDate   *time.Time   `json:"next_duty_date"`
	DutyHistory    []historyDoc `json:"duty_history"`
}

type memberDoc struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	JoinedDate time.Time `json:"joined_date"`
}

type historyDoc struct {
	Date     time.Time   `json:"date"`
	Officers []memberDoc `json:"officers"`
}

// settingsDoc is the persisted admin configuration shape.
type settingsDoc struct {
	Admins           []int64 `json:"admins"`
	DutyDurationDays int     `json:"duty_duration_days"`
}

func defaultDocument() document {
	return document{
		Users:          []memberDoc{},
		AvailableUsers: []memberDoc{},
		CurrentDuty:    []memberDoc{},
		DutyHistory:    []historyDoc{},
	}
}

func defaultSettings() settingsDoc {
	return settingsDoc{
		Admins:           []int64{},
		DutyDurationDays: entities.DefaultDutyDurationDays,
	}
}

// migrate fills defaults for fields absent on load, so the rest of the
// store never has to deal with nil collections or a zero interval.
func (d *document) migrate() {
	if d.Users == nil {
		d.Users = []memberDoc{}
	}
	if d.AvailableUsers == nil {
		d.AvailableUsers = []memberDoc{}
	}
	if d.CurrentDuty == nil {
		d.CurrentDuty = []memberDoc{}
	}
	if d.DutyHistory == nil {
		d.DutyHistory = []historyDoc{}
	}
}

func (s *settingsDoc) migrate() {
	if s.Admins == nil {
		s.Admins = []int64{}
	}
	if s.DutyDurationDays <= 0 {
		s.DutyDurationDays = entities.DefaultDutyDurationDays
	}
}

// clone deep-copies the document so a failed flush can roll the
// in-memory state back to its pre-operation value.
func (d document) clone() document {
	c := document{
		Users:          append([]memberDoc(nil), d.Users...),
		AvailableUsers: append([]memberDoc(nil), d.AvailableUsers...),
		CurrentDuty:    append([]memberDoc(nil), d.CurrentDuty...),
		DutyHistory:    make([]historyDoc, 0, len(d.DutyHistory)),
	}
	if d.NextDutyDate != nil {
		t := *d.NextDutyDate
		c.NextDutyDate = &t
	}
	for _, h := range d.DutyHistory {
		c.DutyHistory = append(c.DutyHistory, historyDoc{
			Date:     h.Date,
			Officers: append([]memberDoc(nil), h.Officers...),
		})
	}
	return c
}

func (m memberDoc) toEntity() entities.Member {
	return entities.Member{
		ID:        m.ID,
		Username:  m.Username,
		FirstName: m.FirstName,
		JoinedAt:  m.JoinedDate,
	}
}

func toEntities(docs []memberDoc) []entities.Member {
	members := make([]entities.Member, 0, len(docs))
	for _, d := range docs {
		members = append(members, d.toEntity())
	}
	return members
}
