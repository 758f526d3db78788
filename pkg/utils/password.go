package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of pw at the default cost. bcrypt only
// errors on oversized input, which the validators already cap.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword reports whether pw matches the stored hash.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
