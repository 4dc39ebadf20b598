package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/classes_api/internal/model"
	"github.com/Freeeeeet/classes_api/internal/repository/base"
	"go.uber.org/zap"
)

type ClassRepository struct {
	db     base.DBTX
	logger *zap.Logger
}

func NewClassRepository(db base.DBTX, logger *zap.Logger) *ClassRepository {
	return &ClassRepository{
		db:     db,
		logger: logger,
	}
}

// Create создаёт класс, q может быть транзакцией
func (r *ClassRepository) Create(ctx context.Context, q base.DBTX, class *model.Class) error {
	query := `
		INSERT INTO classes (subject, cost, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, class.Subject, class.Cost, class.UserID).Scan(&class.ID)
	if err != nil {
		r.logger.Error("Failed to insert class into DB",
			zap.Int64("user_id", class.UserID),
			zap.String("subject", class.Subject),
			zap.Error(err))
		return fmt.Errorf("create class: %w", err)
	}

	r.logger.Debug("Class inserted",
		zap.Int64("class_id", class.ID),
		zap.Int64("user_id", class.UserID),
		zap.String("subject", class.Subject))

	return nil
}

// Search ищет классы по предмету, у которых есть окно в указанный день,
// покрывающее минуту: from <= minute < to. Каждый класс попадает в выдачу один раз.
func (r *ClassRepository) Search(ctx context.Context, subject string, weekDay, minute int) ([]*model.ClassListing, error) {
	query := `
		SELECT c.id, c.subject, c.cost, c.user_id, u.name, u.avatar, u.whatsapp, u.bio
		FROM classes c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.subject = $1
		  AND EXISTS (
			SELECT 1
			FROM class_schedule cs
			WHERE cs.class_id = c.id
			  AND cs.week_day = $2
			  AND cs."from" <= $3
			  AND cs."to" > $3
		  )
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, subject, weekDay, minute)
	if err != nil {
		r.logger.Error("Failed to search classes",
			zap.String("subject", subject),
			zap.Int("week_day", weekDay),
			zap.Int("minute", minute),
			zap.Error(err))
		return nil, fmt.Errorf("search classes: %w", err)
	}
	defer rows.Close()

	listings := make([]*model.ClassListing, 0)
	for rows.Next() {
		var listing model.ClassListing
		err := rows.Scan(
			&listing.ID,
			&listing.Subject,
			&listing.Cost,
			&listing.UserID,
			&listing.Name,
			&listing.Avatar,
			&listing.Whatsapp,
			&listing.Bio,
		)
		if err != nil {
			return nil, fmt.Errorf("scan class listing: %w", err)
		}
		listings = append(listings, &listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate class listings: %w", err)
	}

	return listings, nil
}

// GetByID получает класс по ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	query := `
		SELECT id, subject, cost, user_id
		FROM classes
		WHERE id = $1
	`

	var class model.Class
	err := r.db.QueryRow(ctx, query, id).Scan(&class.ID, &class.Subject, &class.Cost, &class.UserID)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class by id: %w", err)
	}

	return &class, nil
}
