// Package entities contains core business entities.
package entities

// DefaultDutyDurationDays is the rotation interval applied when the
// admin config document is created or carries no positive value.
const DefaultDutyDurationDays = 7

// AdminSettings holds the administrator allow-list and rotation interval.
type AdminSettings struct {
	Admins           []int64
	DutyDurationDays int
}

// IsAdmin reports whether the identifier is on the allow-list.
func (s AdminSettings) IsAdmin(id int64) bool {
	for _, a := range s.Admins {
		if a == id {
			return true
		}
	}
	return false
}
