package handler

// editUserRequest is the edit payload. Every field is optional; empty fields
// are left untouched. Fields are applied in order: username, email, password,
// role — any failing field aborts the whole edit.
type editUserRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,max=32"`
	Email    string `json:"email,omitempty" validate:"omitempty,max=128"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=CONTRIBUTOR ADMINISTRATOR SUPERADMINISTRATOR"`
}

type listUsersResponse struct {
	Users []accountResponse `json:"users"`
}

type messageResponse struct {
	Message string `json:"message"`
}
