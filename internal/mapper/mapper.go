// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"duty-rotation-service/internal/api"
	"duty-rotation-service/internal/entities"
)

// ToAPIMember maps entities.Member to transport model.
func ToAPIMember(m entities.Member) api.Member {
	return api.Member{
		ID:         m.ID,
		Username:   m.Username,
		FirstName:  m.FirstName,
		JoinedDate: m.JoinedAt,
	}
}

// ToAPIMemberList maps a slice of entities.Member to transport slice.
func ToAPIMemberList(members []entities.Member) []api.Member {
	res := make([]api.Member, 0, len(members))
	for _, m := range members {
		res = append(res, ToAPIMember(m))
	}
	return res
}

// FromJoinRequest builds an entities.Member from transport DTO.
func FromJoinRequest(src api.JoinRequest) entities.Member {
	return entities.Member{
		ID:        src.ID,
		Username:  src.Username,
		FirstName: src.FirstName,
	}
}

// ToAPIDutyStatus maps the current shift to transport model.
func ToAPIDutyStatus(status entities.DutyStatus) api.DutyStatus {
	return api.DutyStatus{
		Members:       ToAPIMemberList(status.Members),
		NextDutyDate:  status.NextDutyAt,
		DaysRemaining: status.DaysRemaining,
	}
}

// ToAPIHistoryList maps past assignments to transport slice.
func ToAPIHistoryList(entries []entities.HistoryEntry) []api.HistoryEntry {
	res := make([]api.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		res = append(res, api.HistoryEntry{
			Date:     e.Date,
			Officers: ToAPIMemberList(e.Officers),
		})
	}
	return res
}

// ToAPIReminderList maps notification intents to transport slice.
func ToAPIReminderList(reminders []entities.Reminder) []api.Reminder {
	res := make([]api.Reminder, 0, len(reminders))
	for _, r := range reminders {
		res = append(res, api.Reminder{MemberID: r.MemberID, Message: r.Message})
	}
	return res
}
