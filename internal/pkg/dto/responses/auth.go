package responses

type Login struct {
	Token string `json:"token"`
}

type SessionUser struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Session mirrors the auth-state callback of the web client: User is null
// when nobody is signed in.
type Session struct {
	User *SessionUser `json:"user"`
}
