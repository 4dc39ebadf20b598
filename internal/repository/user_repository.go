package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/classes_api/internal/model"
	"github.com/Freeeeeet/classes_api/internal/repository/base"
	"go.uber.org/zap"
)

type UserRepository struct {
	db     base.DBTX
	logger *zap.Logger
}

func NewUserRepository(db base.DBTX, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Create создаёт нового пользователя, q может быть транзакцией
func (r *UserRepository) Create(ctx context.Context, q base.DBTX, user *model.User) error {
	query := `
		INSERT INTO users (name, avatar, whatsapp, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(
		ctx, query,
		user.Name,
		user.Avatar,
		user.Whatsapp,
		user.Bio,
	).Scan(&user.ID)

	if err != nil {
		r.logger.Error("Failed to insert user into DB",
			zap.String("name", user.Name),
			zap.Error(err))
		return fmt.Errorf("create user: %w", err)
	}

	r.logger.Debug("User inserted",
		zap.Int64("user_id", user.ID),
		zap.String("name", user.Name))

	return nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, name, avatar, whatsapp, bio
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Avatar,
		&user.Whatsapp,
		&user.Bio,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}
