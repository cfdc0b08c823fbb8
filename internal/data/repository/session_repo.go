package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindValidSession returns nil when the token is unknown, revoked or expired.
	FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	Revoke(ctx context.Context, token uuid.UUID) error
	// PurgeExpired deletes sessions whose expiry is older than before.
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

const sessionColumns = `id, user_id, token, user_agent, ip_address, expires_at, revoked_at, created_at`

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	_, err := database.Conn(ctx, r.db).Exec(ctx, `
		INSERT INTO sessions (id, user_id, token, user_agent, ip_address, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, session.UserID, session.Token,
		session.UserAgent, session.IPAddress,
		session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", session.UserID.String()))
		return fmt.Errorf("create session: %w", translate(err))
	}
	return nil
}

func (r *sessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()`, token)
	if err != nil {
		r.log.Error("Failed to query session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	session, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[entity.Session])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to scan session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}
	return session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx,
		`UPDATE sessions SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`, token)
	if err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("session", token.String())
	}
	return nil
}

func (r *sessionRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM sessions WHERE expires_at < $1`, before)
	if err != nil {
		r.log.Error("Failed to purge sessions", zap.Error(err), zap.Time("before", before))
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return result.RowsAffected(), nil
}
