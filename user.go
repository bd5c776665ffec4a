package user_management

import "strings"

// User is the local shape of a user record.
type User struct {
	ID         int    `json:"id"` // assigned by the remote; 0 before creation
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// UserFields is a User without an id, as submitted from a form.
type UserFields struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Fields drops the id.
func (u User) Fields() UserFields {
	return UserFields{
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Department: u.Department,
	}
}

// WithID attaches an id to the fields.
func (f UserFields) WithID(id int) User {
	return User{
		ID:         id,
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Department: f.Department,
	}
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (f UserFields) Trimmed() UserFields {
	return UserFields{
		FirstName:  strings.TrimSpace(f.FirstName),
		LastName:   strings.TrimSpace(f.LastName),
		Email:      strings.TrimSpace(f.Email),
		Department: strings.TrimSpace(f.Department),
	}
}

// Missing lists the json names of required fields that are empty. LastName is
// optional: single-token remote names map to an empty last name.
func (f UserFields) Missing() []string {
	var out []string
	for _, c := range []struct {
		name, value string
	}{
		{"firstName", f.FirstName},
		{"email", f.Email},
		{"department", f.Department},
	} {
		if strings.TrimSpace(c.value) == "" {
			out = append(out, c.name)
		}
	}
	return out
}
