package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	um "user_management"
	"user_management/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestSplitName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Madonna", "Madonna", ""},
		{"Mrs. Dennis Schulist", "Mrs.", "Dennis Schulist"},
		{"  Leading Space  ", "Leading", "Space"},
		{"", "", ""},
	}
	for _, tc := range cases {
		first, last := splitName(tc.in)
		assert.Equal(t, tc.first, first, "first name of %q", tc.in)
		assert.Equal(t, tc.last, last, "last name of %q", tc.in)
	}
}

func TestFromRemote(t *testing.T) {
	got, err := fromRemote(models.RemoteUser{
		ID:      ptr(1),
		Name:    ptr("Ada Lovelace"),
		Email:   ptr("a@b.com"),
		Company: &models.RemoteCompany{Name: ptr("X")},
	})
	require.NoError(t, err)
	assert.Equal(t, um.User{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "a@b.com", Department: "X"}, got)

	_, err = fromRemote(models.RemoteUser{Name: ptr("Ada")})
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "id, email, company.name")

	_, err = fromRemote(models.RemoteUser{
		ID:      ptr(-3),
		Name:    ptr("Ada"),
		Email:   ptr("a@b.com"),
		Company: &models.RemoteCompany{Name: ptr("X")},
	})
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "missing id")
}

func TestFromEcho(t *testing.T) {
	_, err := fromEcho(models.EchoUser{
		ID:        ptr(0),
		FirstName: ptr("Bo"),
		Email:     ptr("bo@x.com"),
	})
	require.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "id, lastName, department")

	got, err := fromEcho(models.EchoUser{
		ID:         ptr(11),
		FirstName:  ptr("Bo"),
		LastName:   ptr(""),
		Email:      ptr("bo@x.com"),
		Department: ptr("Eng"),
	})
	require.NoError(t, err)
	assert.Equal(t, 11, got.ID)
	assert.Equal(t, "", got.LastName)
}
