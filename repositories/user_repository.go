package repositories

import (
	"errors"
	"strings"

	"gin-accounts/apperrors"
	"gin-accounts/models"

	"gorm.io/gorm"
)

// UserRef is the lookup key for the user store: either a numeric id or an
// email address. Construct one with ByID or ByEmail.
type UserRef struct {
	id      uint
	email   string
	byEmail bool
}

func ByID(id uint) UserRef { return UserRef{id: id} }

func ByEmail(email string) UserRef { return UserRef{email: email, byEmail: true} }

type IUserRepository interface {
	Find(ref UserRef) (*models.User, error)
	Create(user models.User) (*models.User, error)
	Update(user *models.User) (*models.User, error)
	Delete(ref UserRef) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Find(ref UserRef) (*models.User, error) {
	var user models.User
	var result *gorm.DB
	if ref.byEmail {
		result = r.db.First(&user, "email = ?", ref.email)
	} else {
		result = r.db.First(&user, "id = ?", ref.id)
	}
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) Create(user models.User) (*models.User, error) {
	result := r.db.Create(&user)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) Update(user *models.User) (*models.User, error) {
	result := r.db.Save(user)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return nil, apperrors.ErrAlreadyExists
		}
		return nil, result.Error
	}
	return user, nil
}

func (r *UserRepository) Delete(ref UserRef) (*models.User, error) {
	user, err := r.Find(ref)
	if err != nil {
		return nil, err
	}
	// Hard delete: the row must actually go away so the email becomes
	// available again and the items cascade fires.
	if result := r.db.Unscoped().Delete(user); result.Error != nil {
		return nil, result.Error
	}
	return user, nil
}

// isDuplicateKey covers both the postgres and sqlite drivers; the message
// sniffing is needed because the sqlite driver does not return
// gorm.ErrDuplicatedKey on unique-index violations.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "UNIQUE constraint")
}
