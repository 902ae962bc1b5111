/*
Package user implements the credential store: persistence of user accounts with
unique names, password digests, and avatar references.
*/
package user

// ID is the opaque identifier of a stored user. It is assigned by the store
// and must never be confused with a message id.
type ID string

func (id ID) String() string {
	return string(id)
}

// User represents a registered account.
// The password hash is never serialized in responses.
type User struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	ImageRef     string `json:"image"`
}
