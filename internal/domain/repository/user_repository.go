package repository

import "github.com/jhoicas/bom-merge-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
