package entities

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type User struct {
	Id         uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Username   string
	Email      string
	Password   string
	IsAdmin    bool
	Theme      string
	AvatarPath string
}

func NewUser(username, email, password string) *User {
	return &User{
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Username:  strings.TrimSpace(username),
		Email:     strings.TrimSpace(email),
		Password:  password,
		Theme:     ThemeLight,
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.Theme != ThemeLight && u.Theme != ThemeDark {
		return errors.New("theme must be light or dark")
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

func (u *User) UpdateProfile(email, theme string) error {
	u.Email = strings.TrimSpace(email)
	u.Theme = theme
	u.UpdatedAt = time.Now()
	return u.validate()
}

func (u *User) SetAvatar(path string) {
	u.AvatarPath = path
	u.UpdatedAt = time.Now()
}

func (u *User) SetAdmin(isAdmin bool) {
	u.IsAdmin = isAdmin
	u.UpdatedAt = time.Now()
}
