package utils

import "golang.org/x/crypto/bcrypt"

// bcryptCost stays at the library default; raise it here if login latency
// allows, existing hashes keep verifying either way.
const bcryptCost = bcrypt.DefaultCost

// HashPassword bcrypt-hashes a plaintext password for storage on a user row.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword returns nil when the plaintext matches the stored hash.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
