package models

// RemoteUser is a user record as the remote collection returns it. Fields are
// pointers so that absent keys can be told apart from empty values.
type RemoteUser struct {
	ID      *int           `json:"id"`
	Name    *string        `json:"name"`
	Email   *string        `json:"email"`
	Company *RemoteCompany `json:"company"`
}

type RemoteCompany struct {
	Name *string `json:"name"`
}

// EchoUser is the body the remote sends back after a create or update. It
// mirrors the submitted local shape plus the assigned id.
type EchoUser struct {
	ID         *int    `json:"id"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}
