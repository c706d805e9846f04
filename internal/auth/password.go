package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a registration password with the configured bcrypt
// cost. Hashes are written once; there is no reset flow to rotate them.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a login attempt against the stored hash. The
// comparison is constant time via the bcrypt library.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
