package domain

// User is the read-only projection of the user aggregate that auth flows
// consume. The aggregate itself (CRUD, profile, verification) is owned by
// another service.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	CompanyID    string // empty when the user has no company
	Avatar       string
	PasswordHash string // empty for OAuth2-only accounts
	IsActive     bool
}

// PasswordVerifier compares a stored hash with a plaintext candidate.
type PasswordVerifier interface {
	Compare(hash string, password []byte) error
}

// VerifyPassword reports whether plaintext matches the stored hash.
// Always false for accounts without a local password.
func (u *User) VerifyPassword(v PasswordVerifier, plaintext string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return v.Compare(u.PasswordHash, []byte(plaintext)) == nil
}
