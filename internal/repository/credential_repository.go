package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"stockledger/internal/domain"
)

// CredentialRepositoryImpl implements the CredentialRepository interface
type CredentialRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewCredentialRepository creates a new CredentialRepository
func NewCredentialRepository(db *pgxpool.Pool) domain.CredentialRepository {
	return &CredentialRepositoryImpl{db: db}
}

// Create creates a new credential
func (r *CredentialRepositoryImpl) Create(ctx context.Context, cred *domain.Credential) error {
	query := `
		INSERT INTO credentials (
			id, username, password_hash, role, created_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := r.db.Exec(ctx, query,
		cred.ID,
		cred.Username,
		cred.PasswordHash,
		cred.Role,
		cred.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create credential: %w", err)
	}

	return nil
}

// GetByUsername retrieves a credential by login name
func (r *CredentialRepositoryImpl) GetByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	query := `
		SELECT id, username, password_hash, role, created_at
		FROM credentials
		WHERE username = $1
	`

	cred := &domain.Credential{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&cred.ID,
		&cred.Username,
		&cred.PasswordHash,
		&cred.Role,
		&cred.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get credential by username: %w", err)
	}

	return cred, nil
}
