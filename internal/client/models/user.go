package models

// User is the identity returned by the "who am I" endpoint. Onboarded is
// server-owned; the client only reads it and reacts.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Onboarded bool   `json:"onboarded"`
}

// AuthResult is the credential-issuance response of login and signup.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Message     string `json:"message,omitempty"`
}
