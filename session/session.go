package session

// Session is the client-local record of whether a user is currently
// authenticated and as whom. Exactly one Session exists per Manager;
// Identity is present if and only if Authenticated is true.
type Session struct {
	Authenticated bool
	Identity      *Identity
}

// Identity identifies the authenticated user. Its JSON form is the
// persisted session record stored under the manager's storage key.
type Identity struct {
	Email string `json:"email"`
}

// Credentials is the transient login input. It is consumed once by
// Manager.Login and never stored.
type Credentials struct {
	Email    string
	Password string
}

// LoginResult is returned by Manager.Login. Message is populated only
// when Success is false.
type LoginResult struct {
	Success bool
	Message string
}
