package model

// User is a mail account in the user directory. Lookup works by login or
// email, with login taking precedence. Passwords are held verbatim; this is a
// test service, not a credential store.
type User struct {
	Email    string `json:"email"`
	Login    string `json:"login"`
	Password string `json:"password"`
}
