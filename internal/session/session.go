package session

import "errors"

// Role is the dashboard flavor the signed-in user sees.
type Role string

const (
	RoleTenant   Role = "tenant"
	RoleLandlord Role = "landlord"
)

var (
	ErrNotSignedIn = errors.New("not signed in")
	ErrUnknownRole = errors.New("unknown role")
)

// User is the signed-up user's profile. Demo data only; there are no
// credentials because there is no real authentication.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
