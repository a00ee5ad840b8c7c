package user

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]User, error) {
	return s.repo.List()
}

func (s *Service) GetByEmail(email string) (User, error) {
	return s.repo.GetByEmail(email)
}

// Create hashes the password and persists a new user. Email uniqueness is
// enforced by the repository; two racing creates for the same email both
// reach it and the loser gets ErrEmailExists.
func (s *Service) Create(fullName, email, password string) (User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(User{
		ID:       uuid.NewString(),
		FullName: fullName,
		Email:    email,
		Password: string(hashed),
	})
}

// Update applies the provided fields to the user with the given email. An
// empty fullName or password leaves the stored value untouched; a new
// password is hashed before it reaches the repository.
func (s *Service) Update(email, fullName, password string) (User, error) {
	fields := UpdateFields{}
	if fullName != "" {
		fields.FullName = &fullName
	}
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return User{}, err
		}
		h := string(hashed)
		fields.Password = &h
	}

	return s.repo.Update(email, fields)
}

func (s *Service) Delete(email string) error {
	return s.repo.Delete(email)
}

// SetImagePath records the stored location of an uploaded profile image on
// the user's record.
func (s *Service) SetImagePath(email, path string) (User, error) {
	return s.repo.Update(email, UpdateFields{ImagePath: &path})
}
