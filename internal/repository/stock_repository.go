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

// StockRepositoryImpl implements the StockRepository interface
type StockRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewStockRepository creates a new StockRepository
func NewStockRepository(db *pgxpool.Pool) domain.StockRepository {
	return &StockRepositoryImpl{db: db}
}

// Create adds a new stock to the catalog
func (r *StockRepositoryImpl) Create(ctx context.Context, stock *domain.Stock) error {
	query := `
		INSERT INTO stocks (
			id, ticker, price, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := r.db.Exec(ctx, query,
		stock.ID,
		stock.Ticker,
		int64(stock.Price),
		stock.CreatedAt,
		stock.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrTickerExists
		}
		return fmt.Errorf("failed to create stock: %w", err)
	}

	return nil
}

// GetByTicker retrieves a stock by its ticker symbol
func (r *StockRepositoryImpl) GetByTicker(ctx context.Context, ticker string) (*domain.Stock, error) {
	query := `
		SELECT id, ticker, price, created_at, updated_at
		FROM stocks
		WHERE ticker = $1
	`

	stock := &domain.Stock{}
	var price int64
	err := r.db.QueryRow(ctx, query, ticker).Scan(
		&stock.ID,
		&stock.Ticker,
		&price,
		&stock.CreatedAt,
		&stock.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStockNotFound
		}
		return nil, fmt.Errorf("failed to get stock by ticker: %w", err)
	}

	stock.Price = domain.Cents(price)
	return stock, nil
}

// GetAll retrieves all catalog stocks
func (r *StockRepositoryImpl) GetAll(ctx context.Context) ([]*domain.Stock, error) {
	query := `
		SELECT id, ticker, price, created_at, updated_at
		FROM stocks
		ORDER BY ticker ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all stocks: %w", err)
	}
	defer rows.Close()

	var stocks []*domain.Stock
	for rows.Next() {
		stock := &domain.Stock{}
		var price int64
		err := rows.Scan(
			&stock.ID,
			&stock.Ticker,
			&price,
			&stock.CreatedAt,
			&stock.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		stock.Price = domain.Cents(price)
		stocks = append(stocks, stock)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stocks: %w", err)
	}

	return stocks, nil
}
