package ports

// PasswordService hashes and verifies credentials and checks the password
// strength policy. MeetsPolicy is pure; it never touches storage.
type PasswordService interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
	MeetsPolicy(plaintext string) bool
}
