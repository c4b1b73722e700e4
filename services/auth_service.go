package services

import (
	"errors"
	"fmt"
	"net/url"

	"gin-accounts/apperrors"
	"gin-accounts/dto"
	"gin-accounts/infra"
	"gin-accounts/models"
	"gin-accounts/repositories"

	"github.com/golang-jwt/jwt/v5"
)

const verificationTemplate = "verification.html"

type IAuthService interface {
	Signup(input dto.SignupInput) error
	VerifyEmail(tokenString string) (string, error)
	Login(email string, password string) (string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	cfg        *infra.Config
	repository repositories.IUserRepository
	passwords  IPasswordService
	tokens     ITokenService
	mail       IMailService
	dispatcher IMailDispatcher
}

func NewAuthService(
	cfg *infra.Config,
	repository repositories.IUserRepository,
	passwords IPasswordService,
	tokens ITokenService,
	mail IMailService,
	dispatcher IMailDispatcher,
) IAuthService {
	return &AuthService{
		cfg:        cfg,
		repository: repository,
		passwords:  passwords,
		tokens:     tokens,
		mail:       mail,
		dispatcher: dispatcher,
	}
}

// Signup creates an unverified user and queues the verification mail. The
// mail is delivered off the request path; its failure never rolls the
// signup back.
func (s *AuthService) Signup(input dto.SignupInput) error {
	hashed, err := s.passwords.Hash(input.Password)
	if err != nil {
		return err
	}

	user, err := s.repository.Create(models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
	})
	if err != nil {
		return err
	}

	token, err := s.tokens.Issue(jwt.MapClaims{"sub": user.Email})
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/users/verify?token=%s", s.cfg.ServerURI, url.QueryEscape(token))
	body, err := s.mail.Render(verificationTemplate, map[string]any{
		"Username":         user.Username,
		"VerificationLink": link,
	})
	if err != nil {
		return err
	}

	s.dispatcher.Enqueue(Mail{
		Recipient: user.Email,
		Subject:   "Verify your account",
		HTMLBody:  body,
		Fallback:  "Open this link to verify your account: " + link,
	})
	return nil
}

// VerifyEmail validates a verification token and flips the user to
// verified. The transition is one-way; an already verified user is left
// untouched.
func (s *AuthService) VerifyEmail(tokenString string) (string, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return "", err
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", apperrors.ErrInvalidToken
	}

	user, err := s.repository.Find(repositories.ByEmail(email))
	if err != nil {
		return "", err
	}

	if !user.Verified {
		user.Verified = true
		if _, err := s.repository.Update(user); err != nil {
			return "", err
		}
	}
	return user.Email, nil
}

// Login checks the credentials and returns a bearer token. Unknown email
// and wrong password both come back as ErrNotAuthenticated so the response
// cannot be used to probe which accounts exist.
func (s *AuthService) Login(email string, password string) (string, error) {
	user, err := s.repository.Find(repositories.ByEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrNotAuthenticated
		}
		return "", err
	}

	if !s.passwords.Verify(password, user.Password) {
		return "", apperrors.ErrNotAuthenticated
	}

	return s.tokens.Issue(jwt.MapClaims{"sub": user.Email})
}

// GetUserFromToken resolves the bearer token to a stored user. Every
// failure in the chain collapses to ErrInvalidToken so a caller cannot
// tell a bad signature from a deleted account.
func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.repository.Find(repositories.ByEmail(email))
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}
