package model

import "time"

const (
	EntityName = "passenger"

	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	BerthNoPreference = "no-preference"
	BerthLower        = "lower"
	BerthMiddle       = "middle"
	BerthUpper        = "upper"
	BerthSideLower    = "side-lower"
	BerthSideUpper    = "side-upper"
)

// Passenger is a saved co-traveller on a user's profile, distinct from the
// passenger snapshots embedded in bookings.
type Passenger struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Berth     string    `json:"berthPreference"`
	CreatedAt time.Time `json:"createdAt"`
}
