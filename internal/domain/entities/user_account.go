package entities

type Role string

const (
	RoleTecnico Role = "tecnico"
	RoleAdmin   Role = "admin"
)

// UserAccount is one login identity. Senha is stored the way the legacy
// snapshots store it (plaintext); comparison goes through the
// CredentialVerifier seam so a hashing scheme can be introduced without
// touching callers.
type UserAccount struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Senha string `json:"senha,omitempty"`
	Tipo  Role   `json:"tipo"`
}

// Public strips the secret for responses and session state.
func (u UserAccount) Public() UserAccount {
	u.Senha = ""
	return u
}

// Session is an authenticated login resolved from a bearer token.
// Persistent marks sessions created with the "remember" flag.
type Session struct {
	Token      string `json:"token"`
	UserID     int    `json:"user_id"`
	Nome       string `json:"nome"`
	Tipo       Role   `json:"tipo"`
	Persistent bool   `json:"persistent,omitempty"`
}
