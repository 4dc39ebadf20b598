package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/classes_api/internal/model"
	"github.com/Freeeeeet/classes_api/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ClassScheduleRepository управляет окнами расписания классов
type ClassScheduleRepository struct {
	db     base.DBTX
	logger *zap.Logger
}

// NewClassScheduleRepository создаёт новый репозиторий
func NewClassScheduleRepository(db base.DBTX, logger *zap.Logger) *ClassScheduleRepository {
	return &ClassScheduleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBatch вставляет все окна одним COPY
func (r *ClassScheduleRepository) CreateBatch(ctx context.Context, q base.DBTX, windows []*model.ScheduleWindow) error {
	if len(windows) == 0 {
		return nil
	}

	copied, err := q.CopyFrom(
		ctx,
		pgx.Identifier{"class_schedule"},
		[]string{"class_id", "week_day", "from", "to"},
		pgx.CopyFromSlice(len(windows), func(i int) ([]any, error) {
			w := windows[i]
			return []any{w.ClassID, w.WeekDay, w.From, w.To}, nil
		}),
	)
	if err != nil {
		r.logger.Error("Failed to insert class schedule",
			zap.Int("windows", len(windows)),
			zap.Error(err))
		return fmt.Errorf("create class schedule: %w", err)
	}

	if copied != int64(len(windows)) {
		return fmt.Errorf("create class schedule: copied %d of %d rows", copied, len(windows))
	}

	return nil
}

// GetByClassID получает все окна класса
func (r *ClassScheduleRepository) GetByClassID(ctx context.Context, classID int64) ([]*model.ScheduleWindow, error) {
	query := `
		SELECT id, class_id, week_day, "from", "to"
		FROM class_schedule
		WHERE class_id = $1
		ORDER BY week_day, "from"
	`

	rows, err := r.db.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("get class schedule: %w", err)
	}
	defer rows.Close()

	var windows []*model.ScheduleWindow
	for rows.Next() {
		w := &model.ScheduleWindow{}
		if err := rows.Scan(&w.ID, &w.ClassID, &w.WeekDay, &w.From, &w.To); err != nil {
			return nil, fmt.Errorf("scan class schedule: %w", err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate class schedule: %w", err)
	}

	return windows, nil
}
