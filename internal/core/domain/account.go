package domain

import "time"

// Account is the persisted user record. Deleted accounts stay in the store
// with Enabled=false so their username and email remain reserved.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the capability view of an authenticated caller: just what
// authorization decisions need, never the stored credentials.
type Principal struct {
	ID       string
	Username string
	Role     Role
}

// Principal derives the caller view from an account.
func (a *Account) Principal() Principal {
	return Principal{ID: a.ID, Username: a.Username, Role: a.Role}
}
