package match

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/weplay-team/WePlay-BookingService/internal/domain"
	"github.com/weplay-team/WePlay-BookingService/pkg/dbmetrics"
	"github.com/weplay-team/WePlay-BookingService/pkg/psqlbuilder"
)

var matchColumns = []string{
	"id",
	"facility_id",
	"court_id",
	"match_date",
	"start_hour",
	"end_hour",
	"team_capacity",
	"current_participants",
	"entry_fee",
	"status",
	"cancellation_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с матчами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория матчей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый матч
func (r *Repository) Create(ctx context.Context, m *domain.Match) (*domain.Match, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("matches").
		Columns(
			"facility_id",
			"court_id",
			"match_date",
			"start_hour",
			"end_hour",
			"team_capacity",
			"current_participants",
			"entry_fee",
			"status",
		).
		Values(
			m.FacilityID,
			m.CourtID,
			m.MatchDate,
			m.StartHour,
			m.EndHour,
			m.TeamCapacity,
			m.CurrentParticipants,
			m.EntryFee,
			m.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// GetByID получает матч по ID
// Внутри транзакции блокирует строку (FOR UPDATE) - админские переходы и
// отмена матча читают состояние перед изменением
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Match, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(matchColumns...).
		From("matches").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	m, err := scanMatch(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan match: %v", ErrScanRow, err)
	}

	return m, nil
}

// JoinParticipant атомарный условный инкремент участников
// Классический bounded counter: guard на статус и свободное место входит
// в сам UPDATE, поэтому при конкурентных вступлениях на последнее место
// успевает ровно один - никакого read-then-write.
// Полный состав закрывает набор (applicable -> close_to_deadline)
func (r *Repository) JoinParticipant(ctx context.Context, id int64) (*domain.Match, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `
		UPDATE matches
		SET current_participants = current_participants + 1,
		    status = CASE
		        WHEN current_participants + 1 >= team_capacity AND status = $2 THEN $3
		        ELSE status
		    END,
		    updated_at = NOW()
		WHERE id = $1
		  AND status IN ($2, $3)
		  AND current_participants < team_capacity
		RETURNING ` + columnList()

	row := executor.QueryRowContext(ctx, query, id,
		string(domain.MatchApplicable), string(domain.MatchCloseToDeadline))

	m, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return nil, ErrMatchNotJoinable
	}
	if err != nil {
		return nil, fmt.Errorf("%w: JoinParticipant - scan match: %v", ErrScanRow, err)
	}

	return m, nil
}

// RemoveParticipant декремент счётчика участников, не опускаясь ниже нуля
// Статус матча при этом не меняется
func (r *Repository) RemoveParticipant(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("matches").
		Set("current_participants", squirrel.Expr("GREATEST(current_participants - 1, 0)")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveParticipant - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveParticipant - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveParticipant - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}

// UpdateStatus обновляет статус матча
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.MatchStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("matches").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}

// Cancel отменяет матч с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("matches").
		Set("status", domain.MatchCancelled).
		Set("cancellation_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMatchNotFound
	}

	return nil
}

func columnList() string {
	list := ""
	for i, c := range matchColumns {
		if i > 0 {
			list += ", "
		}
		list += c
	}
	return list
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (*domain.Match, error) {
	var m domain.Match
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&m.ID,
		&m.FacilityID,
		&m.CourtID,
		&m.MatchDate,
		&m.StartHour,
		&m.EndHour,
		&m.TeamCapacity,
		&m.CurrentParticipants,
		&m.EntryFee,
		&m.Status,
		&m.CancellationReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return &m, nil
}
