package repo

import (
	"errors"

	"github.com/rogerio-castellano/pawelier/internal/models"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)

type UserRepository interface {
	// GetByLogin matches either the username or the email address.
	GetByLogin(login string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}
