package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/classes_api/internal/model"
	"github.com/Freeeeeet/classes_api/internal/repository/base"
	"github.com/Freeeeeet/classes_api/internal/timeofday"
	"go.uber.org/zap"
)

// Transactor выполняет функцию в транзакции (base.Repository)
type Transactor interface {
	WithTx(ctx context.Context, fn func(q base.DBTX) error) error
}

type UserStore interface {
	Create(ctx context.Context, q base.DBTX, user *model.User) error
}

type ClassStore interface {
	Create(ctx context.Context, q base.DBTX, class *model.Class) error
	Search(ctx context.Context, subject string, weekDay, minute int) ([]*model.ClassListing, error)
}

type ScheduleStore interface {
	CreateBatch(ctx context.Context, q base.DBTX, windows []*model.ScheduleWindow) error
}

// Notifier получает событие о новом классе после коммита
type Notifier interface {
	ClassRegistered(ctx context.Context, user *model.User, class *model.Class, windows []*model.ScheduleWindow) error
}

// SearchFilter фильтры поиска в том виде, в каком пришли в запросе
type SearchFilter struct {
	Subject string
	WeekDay string
	Time    string
}

// WeekDay день недели из JSON: число или строка с числом ("1")
type WeekDay int

func (d *WeekDay) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("week_day %s is not an integer", data)
	}
	*d = WeekDay(value)
	return nil
}

// ScheduleItem окно расписания во входном формате "HH:MM"
type ScheduleItem struct {
	WeekDay WeekDay `json:"week_day"`
	From    string  `json:"from"`
	To      string  `json:"to"`
}

// RegisterClassRequest данные преподавателя, класса и расписания
type RegisterClassRequest struct {
	Name     string         `json:"name"`
	Avatar   string         `json:"avatar"`
	Whatsapp string         `json:"whatsapp"`
	Bio      string         `json:"bio"`
	Subject  string         `json:"subject"`
	Cost     float64        `json:"cost"`
	Schedule []ScheduleItem `json:"schedule"`
}

type ClassService struct {
	tx           Transactor
	userRepo     UserStore
	classRepo    ClassStore
	scheduleRepo ScheduleStore
	notifier     Notifier
	logger       *zap.Logger
}

func NewClassService(
	tx Transactor,
	userRepo UserStore,
	classRepo ClassStore,
	scheduleRepo ScheduleStore,
	notifier Notifier,
	logger *zap.Logger,
) *ClassService {
	return &ClassService{
		tx:           tx,
		userRepo:     userRepo,
		classRepo:    classRepo,
		scheduleRepo: scheduleRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Search возвращает классы по предмету, у которых есть окно в указанный день и время
func (s *ClassService) Search(ctx context.Context, filter SearchFilter) ([]*model.ClassListing, error) {
	if filter.Subject == "" || filter.WeekDay == "" || filter.Time == "" {
		return nil, ErrMissingFilter
	}

	weekDay, err := strconv.Atoi(filter.WeekDay)
	if err != nil || weekDay < 0 || weekDay > 6 {
		return nil, fmt.Errorf("%w: week_day %q", ErrInvalidFilter, filter.WeekDay)
	}

	minute, err := timeofday.ToMinutes(filter.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	listings, err := s.classRepo.Search(ctx, filter.Subject, weekDay, minute)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Classes found",
		zap.String("subject", filter.Subject),
		zap.Int("week_day", weekDay),
		zap.String("time", filter.Time),
		zap.Int("count", len(listings)))

	return listings, nil
}

// Register создаёт пользователя, класс и его расписание одной транзакцией.
// Любая ошибка откатывает всё и возвращается как ErrRegistrationFailed, причина только в логе.
func (s *ClassService) Register(ctx context.Context, req RegisterClassRequest) (*model.Class, error) {
	windows, err := buildWindows(req.Schedule)
	if err != nil {
		s.logger.Warn("Rejected class schedule",
			zap.String("subject", req.Subject),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	user := &model.User{
		Name:     req.Name,
		Avatar:   req.Avatar,
		Whatsapp: req.Whatsapp,
		Bio:      req.Bio,
	}
	class := &model.Class{
		Subject: req.Subject,
		Cost:    req.Cost,
	}

	err = s.tx.WithTx(ctx, func(q base.DBTX) error {
		if err := s.userRepo.Create(ctx, q, user); err != nil {
			return err
		}

		class.UserID = user.ID
		if err := s.classRepo.Create(ctx, q, class); err != nil {
			return err
		}

		for _, w := range windows {
			w.ClassID = class.ID
		}
		return s.scheduleRepo.CreateBatch(ctx, q, windows)
	})
	if err != nil {
		s.logger.Error("Failed to register class, transaction rolled back",
			zap.String("name", req.Name),
			zap.String("subject", req.Subject),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	s.logger.Info("Class registered",
		zap.Int64("class_id", class.ID),
		zap.Int64("user_id", user.ID),
		zap.String("subject", class.Subject),
		zap.Int("windows", len(windows)))

	if s.notifier != nil {
		if err := s.notifier.ClassRegistered(ctx, user, class, windows); err != nil {
			s.logger.Warn("Failed to send class notification",
				zap.Int64("class_id", class.ID),
				zap.Error(err))
		}
	}

	return class, nil
}

// buildWindows переводит входные окна в минуты и проверяет их
func buildWindows(items []ScheduleItem) ([]*model.ScheduleWindow, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("schedule is empty")
	}

	windows := make([]*model.ScheduleWindow, 0, len(items))
	for i, item := range items {
		weekDay := int(item.WeekDay)
		if weekDay < 0 || weekDay > 6 {
			return nil, fmt.Errorf("schedule[%d]: week_day %d out of range", i, weekDay)
		}

		from, err := timeofday.ToMinutes(item.From)
		if err != nil {
			return nil, fmt.Errorf("schedule[%d] from: %w", i, err)
		}

		to, err := timeofday.ToMinutes(item.To)
		if err != nil {
			return nil, fmt.Errorf("schedule[%d] to: %w", i, err)
		}

		if from >= to {
			return nil, fmt.Errorf("schedule[%d]: from %s is not before to %s", i, item.From, item.To)
		}

		windows = append(windows, &model.ScheduleWindow{
			WeekDay: weekDay,
			From:    from,
			To:      to,
		})
	}

	return windows, nil
}
