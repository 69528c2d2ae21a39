package pg

import (
	"context"
	"log/slog"

	"megaCalc/internal/domain"
)

// OperationRepo реализует ports.IOperationRepository для PostgreSQL.
type OperationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewOperationRepo возвращает репозиторий завершённых вычислений.
func NewOperationRepo(db *DB, log *slog.Logger) *OperationRepo {
	return &OperationRepo{db: db, log: log}
}

// SaveOperation сохраняет вычисление в БД.
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO operations (session_id, operand0, operand1, operator, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		op.SessionID, op.Operand0, op.Operand1, op.Operator, op.Result, op.Timestamp)
	if err != nil {
		r.log.Debug("SaveOperation failed", "error", err)
		return err
	}
	return nil
}

// GetHistory возвращает историю вычислений сессии (последние сначала).
func (r *OperationRepo) GetHistory(ctx context.Context, sessionID string) ([]domain.Operation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, operand0, operand1, operator, result, created_at
		 FROM operations WHERE session_id = $1 ORDER BY created_at DESC`,
		sessionID)
	if err != nil {
		r.log.Debug("GetHistory failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Operation
	for rows.Next() {
		var op domain.Operation
		err := rows.Scan(&op.ID, &op.SessionID, &op.Operand0, &op.Operand1, &op.Operator, &op.Result, &op.Timestamp)
		if err != nil {
			return nil, err
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
