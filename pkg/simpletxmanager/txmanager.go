package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/weplay-team/WePlay-BookingService/pkg/dbmetrics"
)

// maxSerializationRetries предел повторов сериализуемой транзакции
const maxSerializationRetries = 3

// serializationFailureCode код ошибки Postgres serialization_failure
const serializationFailureCode = "40001"

// isSerializationFailure распознаёт ошибку сериализации Postgres
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == serializationFailureCode
}

// retrySerializable повторяет attempt, пока тот проигрывает сериализацию
// Последняя ошибка возвращается, когда повторы исчерпаны
func retrySerializable(attempt func() error) error {
	var err error
	for i := 0; i < maxSerializationRetries; i++ {
		err = attempt()
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// TransactionManager менеджер транзакций поверх *sql.DB (без метрик)
// Используется, когда сбор метрик выключен в конфигурации
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции.
// Проигравшая сериализацию транзакция (SQLSTATE 40001) повторяется с нуля:
// замыкание перечитывает журнал, и занятый слот репортится доменной ошибкой
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return retrySerializable(func() error {
		return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
	})
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("simpletxmanager: failed to begin transaction: %w", err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("simpletxmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("simpletxmanager: failed to commit transaction: %w", err)
	}

	return nil
}
