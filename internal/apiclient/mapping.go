package apiclient

import (
	"fmt"
	"strings"

	um "user_management"
	"user_management/internal/models"
)

// splitName splits a full name on the first space. The first token is the
// first name; everything after it is the last name.
func splitName(full string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(full), " ")
	return first, strings.TrimSpace(last)
}

// fromRemote validates a raw remote record and converts it to the local shape.
func fromRemote(r models.RemoteUser) (um.User, error) {
	var missing []string
	if r.ID == nil || *r.ID <= 0 {
		missing = append(missing, "id")
	}
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Email == nil {
		missing = append(missing, "email")
	}
	if r.Company == nil || r.Company.Name == nil {
		missing = append(missing, "company.name")
	}
	if len(missing) > 0 {
		return um.User{}, fmt.Errorf("%w: missing %s", ErrMalformedRecord, strings.Join(missing, ", "))
	}

	first, last := splitName(*r.Name)
	return um.User{
		ID:         *r.ID,
		FirstName:  first,
		LastName:   last,
		Email:      *r.Email,
		Department: *r.Company.Name,
	}, nil
}

// fromEcho validates the body returned by create/update.
func fromEcho(e models.EchoUser) (um.User, error) {
	var missing []string
	if e.ID == nil || *e.ID <= 0 {
		missing = append(missing, "id")
	}
	for _, f := range []struct {
		name string
		v    *string
	}{
		{"firstName", e.FirstName},
		{"lastName", e.LastName},
		{"email", e.Email},
		{"department", e.Department},
	} {
		if f.v == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return um.User{}, fmt.Errorf("%w: missing %s", ErrMalformedRecord, strings.Join(missing, ", "))
	}
	return um.User{
		ID:         *e.ID,
		FirstName:  *e.FirstName,
		LastName:   *e.LastName,
		Email:      *e.Email,
		Department: *e.Department,
	}, nil
}
