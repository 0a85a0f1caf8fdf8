package models

// Credential is the single username/password pair the client authenticates
// with against the campus portal.
//
// Plaintext instances live in memory only transiently: they are built from
// user input or by decrypting the stored vault blob, handed to the portal
// authenticator once, and dropped. The password must never reach logs,
// error messages, or the attempt journal.
type Credential struct {
	// Username is the portal account identifier (e.g. "081bel052").
	Username string `json:"username"`

	// Password is the portal account secret.
	// It is serialized only inside the encrypted vault blob.
	Password string `json:"password"`
}

// IsZero reports whether both fields are empty.
func (c Credential) IsZero() bool {
	return c.Username == "" && c.Password == ""
}

// String implements [fmt.Stringer] with the password redacted, so accidental
// formatting of a Credential can never leak the secret.
func (c Credential) String() string {
	return "Credential{username: " + c.Username + ", password: ***}"
}
