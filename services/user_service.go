package services

import (
	"gin-accounts/dto"
	"gin-accounts/models"
	"gin-accounts/repositories"
)

type IUserService interface {
	Find(ref repositories.UserRef) (*models.User, error)
	Update(ref repositories.UserRef, input dto.UpdateUserInput) (*models.User, error)
	Delete(ref repositories.UserRef) (*models.User, error)
}

type UserService struct {
	repository repositories.IUserRepository
	passwords  IPasswordService
}

func NewUserService(repository repositories.IUserRepository, passwords IPasswordService) IUserService {
	return &UserService{repository: repository, passwords: passwords}
}

func (s *UserService) Find(ref repositories.UserRef) (*models.User, error) {
	return s.repository.Find(ref)
}

// Update writes only the fields present in the input; a payload with no
// fields set returns the record unchanged. A new password is hashed before
// it is stored.
func (s *UserService) Update(ref repositories.UserRef, input dto.UpdateUserInput) (*models.User, error) {
	user, err := s.repository.Find(ref)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := s.passwords.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if input.Verified != nil {
		user.Verified = *input.Verified
	}

	return s.repository.Update(user)
}

func (s *UserService) Delete(ref repositories.UserRef) (*models.User, error) {
	return s.repository.Delete(ref)
}
