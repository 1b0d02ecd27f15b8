package domain

import "time"

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// StoredUser is the on-disk shape inside the travel_app_users blob. The
// password marker is a reversible encoding kept for compatibility with
// existing records.
type StoredUser struct {
	User
	PasswordMarker string `json:"passwordHash"`
}
