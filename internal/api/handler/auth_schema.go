package handler

// signupRequest is the sign-up payload. Emptiness is checked field by field in
// the handler so each missing field gets its own message; lengths, uniqueness,
// and the email pattern are the account service's business.
type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// accountResponse is the public projection of an account. The password hash
// never leaves the service layer.
type accountResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
