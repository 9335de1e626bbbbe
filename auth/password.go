package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword is an explicit encode-before-persist step: callers hash in
// the write path, there are no save hooks doing it behind the scenes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
