// internal/domain/signup/entity.go
package signup

import "time"

// Record is one completed signup submission. The list is append-only;
// records are never updated or deleted. The password is deliberately
// not stored.
type Record struct {
	ID             int64     `json:"id"` // time-derived, unique within the list
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	MembershipPlan string    `json:"membership_plan"`
	JoinedAt       time.Time `json:"joined_at"`
}

// ValidationError reports a signup field or format failure. It is shown
// inline to the user; the form stays editable.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
