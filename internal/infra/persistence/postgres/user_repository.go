// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"mart/internal/domain/entity"
	domainerrors "mart/internal/domain/errors"
	"mart/internal/domain/repository"
	"mart/internal/errors"
	"mart/internal/infra/persistence/model"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM)
}

// Create persists a new user entity and returns it carrying the generated id.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrDuplicatedEmail.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return user.WithID(userM.ID), nil
}

func toUserDomain(data *model.UserModel) (*entity.User, error) {
	user, err := entity.RestoreUser(data.ID, data.Email, data.Password)
	if err != nil {
		return nil, errors.Wrapf(err, "stored user %d is invalid", data.ID)
	}

	return user, nil
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:       data.ID(),
		Email:    data.Email(),
		Password: data.Password(),
	}
}
