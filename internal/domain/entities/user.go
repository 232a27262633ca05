package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const DefaultRole = "member"

type User struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
	Password  string
	Role      string
	Industry  string
	Interests string
}

func NewUser(name, email, password string) *User {
	return &User{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      DefaultRole,
	}
}

func (u *User) validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return errors.New("name must not be empty")
	}
	if strings.TrimSpace(u.Email) == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// ProfileComplete reports whether the profile carries everything content
// generation needs: name, role, industry, and interests all populated.
func (u *User) ProfileComplete() bool {
	return len(u.MissingProfileFields()) == 0
}

// MissingProfileFields returns the names of required profile fields that are
// empty or whitespace-only, in a fixed order.
func (u *User) MissingProfileFields() []string {
	var missing []string
	if strings.TrimSpace(u.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(u.Role) == "" {
		missing = append(missing, "role")
	}
	if strings.TrimSpace(u.Industry) == "" {
		missing = append(missing, "industry")
	}
	if strings.TrimSpace(u.Interests) == "" {
		missing = append(missing, "interests")
	}
	return missing
}

// ApplyProfileUpdate applies a partial update. Nil pointers leave the field
// untouched; an explicit empty string clears it (role falls back to the
// default role, matching signup).
func (u *User) ApplyProfileUpdate(name, role, industry, interests *string) error {
	if name != nil {
		u.Name = *name
	}
	if role != nil {
		if *role == "" {
			u.Role = DefaultRole
		} else {
			u.Role = *role
		}
	}
	if industry != nil {
		u.Industry = *industry
	}
	if interests != nil {
		u.Interests = *interests
	}
	u.UpdatedAt = time.Now()
	return u.validate()
}
