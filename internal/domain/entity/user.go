package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"user_type"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	ProfilePicture string    `json:"profile_picture"`
	Bio            string    `json:"bio"`
	DateJoined     time.Time `json:"date_joined"`
	UpdatedAt      time.Time `json:"-"`
}

// IsSeller reports whether the user holds a seller-type role.
func (u *User) IsSeller() bool {
	return u != nil && u.Role.IsSeller()
}

// UserProfilePatch holds the optional profile fields a user may edit.
type UserProfilePatch struct {
	Email          *string
	FirstName      *string
	LastName       *string
	Phone          *string
	Address        *string
	ProfilePicture *string
	Bio            *string
}

// Apply copies every non-nil field onto the user.
func (p *UserProfilePatch) Apply(u *User) {
	if p == nil || u == nil {
		return
	}

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	assign(&u.Email, p.Email)
	assign(&u.FirstName, p.FirstName)
	assign(&u.LastName, p.LastName)
	assign(&u.Phone, p.Phone)
	assign(&u.Address, p.Address)
	assign(&u.ProfilePicture, p.ProfilePicture)
	assign(&u.Bio, p.Bio)
}
