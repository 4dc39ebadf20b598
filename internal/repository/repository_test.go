package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/Freeeeeet/classes_api/internal/app"
	"github.com/Freeeeeet/classes_api/internal/model"
	"github.com/Freeeeeet/classes_api/internal/repository/base"
	"github.com/Freeeeeet/classes_api/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testStores struct {
	pool      *pgxpool.Pool
	base      *base.Repository
	users     *UserRepository
	classes   *ClassRepository
	schedules *ClassScheduleRepository
}

func setupTestDB(t *testing.T) *testStores {
	t.Helper()

	ctx := context.Background()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is not set")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(ctx); err != nil {
		t.Skipf("Failed to ping test database: %v", err)
	}

	logger := zap.NewNop()
	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	require.NoError(t, err)
	defer migrator.Close()
	require.NoError(t, migrator.Run(ctx))

	_, err = pool.Exec(ctx, `TRUNCATE class_schedule, classes, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return &testStores{
		pool:      pool,
		base:      base.NewRepository(pool),
		users:     NewUserRepository(pool, logger),
		classes:   NewClassRepository(pool, logger),
		schedules: NewClassScheduleRepository(pool, logger),
	}
}

// register вставляет пользователя, класс и окна в одной транзакции
func (s *testStores) register(ctx context.Context, subject string, windows ...*model.ScheduleWindow) (*model.Class, error) {
	class := &model.Class{Subject: subject, Cost: 50}
	err := s.base.WithTx(ctx, func(q base.DBTX) error {
		user := &model.User{Name: "Tutor", Avatar: "a.png", Whatsapp: "123", Bio: "bio"}
		if err := s.users.Create(ctx, q, user); err != nil {
			return err
		}
		class.UserID = user.ID
		if err := s.classes.Create(ctx, q, class); err != nil {
			return err
		}
		for _, w := range windows {
			w.ClassID = class.ID
		}
		return s.schedules.CreateBatch(ctx, q, windows)
	})
	return class, err
}

func (s *testStores) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	err := s.pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func (s *testStores) counts(t *testing.T) (int, int, int) {
	t.Helper()
	return s.count(t, "users"), s.count(t, "classes"), s.count(t, "class_schedule")
}

func TestRegister_Commit(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	class, err := s.register(ctx, "Math",
		&model.ScheduleWindow{WeekDay: 1, From: 480, To: 600},
		&model.ScheduleWindow{WeekDay: 3, From: 840, To: 1080},
	)
	require.NoError(t, err)

	users, classes, windows := s.counts(t)
	assert.Equal(t, 1, users)
	assert.Equal(t, 1, classes)
	assert.Equal(t, 2, windows)

	stored, err := s.classes.GetByID(ctx, class.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, class.UserID, stored.UserID)
	assert.Equal(t, 50.0, stored.Cost)

	owner, err := s.users.GetByID(ctx, class.UserID)
	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, "Tutor", owner.Name)

	saved, err := s.schedules.GetByClassID(ctx, class.ID)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, w := range saved {
		assert.Equal(t, class.ID, w.ClassID)
	}
}

func TestRegister_RollbackOnScheduleFailure(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	// week_day 9 нарушает CHECK, база отвергает вторую строку
	_, err := s.register(ctx, "Math",
		&model.ScheduleWindow{WeekDay: 1, From: 480, To: 600},
		&model.ScheduleWindow{WeekDay: 9, From: 480, To: 600},
	)
	require.Error(t, err)

	users, classes, windows := s.counts(t)
	assert.Zero(t, users)
	assert.Zero(t, classes)
	assert.Zero(t, windows)
}

func TestWithTx_RollbackOnCallbackError(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	errStop := errors.New("stop")
	err := s.base.WithTx(ctx, func(q base.DBTX) error {
		if err := s.users.Create(ctx, q, &model.User{Name: "Ghost"}); err != nil {
			return err
		}
		return errStop
	})
	require.ErrorIs(t, err, errStop)

	users, _, _ := s.counts(t)
	assert.Zero(t, users)
}

func TestClassRepository_Search(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	math, err := s.register(ctx, "Math",
		&model.ScheduleWindow{WeekDay: 1, From: 480, To: 600},
		// второе окно в тот же день не должно дублировать класс
		&model.ScheduleWindow{WeekDay: 1, From: 510, To: 660},
	)
	require.NoError(t, err)
	_, err = s.register(ctx, "Physics", &model.ScheduleWindow{WeekDay: 1, From: 480, To: 600})
	require.NoError(t, err)

	tests := []struct {
		name    string
		subject string
		weekDay int
		minute  int
		want    int
	}{
		{"inside window", "Math", 1, 540, 1},
		{"at from", "Math", 1, 480, 1},
		{"at to of first window, inside second", "Math", 1, 600, 1},
		{"at to of last window", "Math", 1, 660, 0},
		{"other day", "Math", 2, 540, 0},
		{"other subject", "Biology", 1, 540, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings, err := s.classes.Search(ctx, tt.subject, tt.weekDay, tt.minute)
			require.NoError(t, err)
			require.NotNil(t, listings)
			require.Len(t, listings, tt.want)
			if tt.want == 1 {
				assert.Equal(t, math.ID, listings[0].ID)
				assert.Equal(t, math.UserID, listings[0].UserID)
				assert.Equal(t, "Tutor", listings[0].Name)
			}
		})
	}
}

func TestClassRepository_Search_ToIsExclusive(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	_, err := s.register(ctx, "Math", &model.ScheduleWindow{WeekDay: 1, From: 480, To: 600})
	require.NoError(t, err)

	listings, err := s.classes.Search(ctx, "Math", 1, 540)
	require.NoError(t, err)
	assert.Len(t, listings, 1)

	listings, err = s.classes.Search(ctx, "Math", 1, 600)
	require.NoError(t, err)
	assert.Empty(t, listings)
}
