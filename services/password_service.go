package services

import "golang.org/x/crypto/bcrypt"

// IPasswordService hides the hashing algorithm from the rest of the
// workflow. Hash salts per call, so equal plaintexts produce distinct
// digests that both verify.
type IPasswordService interface {
	Hash(password string) (string, error)
	Verify(password string, digest string) bool
}

type PasswordService struct{}

func NewPasswordService() IPasswordService {
	return &PasswordService{}
}

func (s *PasswordService) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches digest. A malformed digest is a
// mismatch, not an error.
func (s *PasswordService) Verify(password string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
