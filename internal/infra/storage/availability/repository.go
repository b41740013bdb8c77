package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FSM-SchedulingService/internal/domain"
	"github.com/m04kA/FSM-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/FSM-SchedulingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var windowColumns = []string{
	"id",
	"professional_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_recurring",
	"valid_from",
	"valid_to",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с окнами доступности профессионалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBulk создает набор окон доступности одним запросом
// Используется и при добавлении слотов, и при полной замене расписания
func (r *Repository) CreateBulk(ctx context.Context, windows []*domain.AvailabilityWindow) ([]*domain.AvailabilityWindow, error) {
	if len(windows) == 0 {
		return []*domain.AvailabilityWindow{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_windows").
		Columns(
			"professional_id",
			"day_of_week",
			"start_time",
			"end_time",
			"is_recurring",
			"valid_from",
			"valid_to",
		)

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(
			w.ProfessionalID,
			dayOfWeekValue(w),
			w.StartTime,
			w.EndTime,
			w.IsRecurring,
			w.ValidFrom,
			w.ValidTo,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBulk - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBulk - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&windows[i].ID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBulk - scan returned row: %v", ErrScanRow, err)
		}
		windows[i].CreatedAt = createdAt.Time
		windows[i].UpdatedAt = updatedAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBulk - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// GetByID получает окно доступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.AvailabilityWindow
	var dayOfWeek sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID,
		&w.ProfessionalID,
		&dayOfWeek,
		&w.StartTime,
		&w.EndTime,
		&w.IsRecurring,
		&w.ValidFrom,
		&w.ValidTo,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %v", ErrScanRow, err)
	}

	w.DayOfWeek = domain.Weekday(dayOfWeek.String)
	w.CreatedAt = createdAt.Time
	w.UpdatedAt = updatedAt.Time

	return &w, nil
}

// ListByProfessional получает все окна доступности профессионала
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("is_recurring DESC, day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ListForDate получает окна доступности профессионала, действующие на дату:
//   - повторяющиеся окна, чей день недели совпадает с днем недели даты
//     и дата попадает в [valid_from, valid_to] (открытые границы - NULL)
//   - разовые окна, чей диапазон [valid_from, valid_to] содержит дату
//
// Окна не объединяются и не дедуплицируются - пересекающиеся окна
// трактуются как объединение доступного времени
func (r *Repository) ListForDate(ctx context.Context, professionalID int64, date time.Time) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	weekday := domain.WeekdayFromTime(date.Weekday())

	recurring := squirrel.And{
		squirrel.Eq{"is_recurring": true},
		squirrel.Eq{"day_of_week": string(weekday)},
		squirrel.Or{
			squirrel.Eq{"valid_from": nil},
			squirrel.LtOrEq{"valid_from": day},
		},
		squirrel.Or{
			squirrel.Eq{"valid_to": nil},
			squirrel.GtOrEq{"valid_to": day},
		},
	}

	oneOff := squirrel.And{
		squirrel.Eq{"is_recurring": false},
		squirrel.NotEq{"valid_from": nil},
		squirrel.LtOrEq{"valid_from": day},
		squirrel.Or{
			squirrel.Eq{"valid_to": nil},
			squirrel.GtOrEq{"valid_to": day},
		},
	}

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Or{recurring, oneOff}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// Delete удаляет окно доступности профессионала
func (r *Repository) Delete(ctx context.Context, id int64, professionalID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// DeleteByProfessional удаляет все окна профессионала
// Используется в операции полной замены расписания (destroy-then-bulk-create)
func (r *Repository) DeleteByProfessional(ctx context.Context, professionalID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByProfessional - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс окон
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		var w domain.AvailabilityWindow
		var dayOfWeek sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&w.ID,
			&w.ProfessionalID,
			&dayOfWeek,
			&w.StartTime,
			&w.EndTime,
			&w.IsRecurring,
			&w.ValidFrom,
			&w.ValidTo,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		w.DayOfWeek = domain.Weekday(dayOfWeek.String)
		w.CreatedAt = createdAt.Time
		w.UpdatedAt = updatedAt.Time

		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// dayOfWeekValue возвращает значение для колонки day_of_week:
// NULL для разовых окон, имя дня недели для повторяющихся
func dayOfWeekValue(w *domain.AvailabilityWindow) interface{} {
	if !w.IsRecurring {
		return nil
	}
	return string(w.DayOfWeek)
}
