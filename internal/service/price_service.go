package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"stockledger/internal/domain"
)

// PriceCache is the read-through cache surface used by the price
// service. Satisfied by cache.RedisClient; nil disables caching.
type PriceCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// PriceService is the pricing source for order execution: it returns
// the current catalog price for a ticker. The engine reads the price
// exactly once per order; the cache only shortens that single read.
type PriceService struct {
	stocks domain.StockRepository
	cache  PriceCache
	ttl    time.Duration
}

// Compile-time check that PriceService implements domain.PricingSource
var _ domain.PricingSource = (*PriceService)(nil)

// NewPriceService creates a new PriceService. cache may be nil.
func NewPriceService(stocks domain.StockRepository, cache PriceCache, ttl time.Duration) *PriceService {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &PriceService{
		stocks: stocks,
		cache:  cache,
		ttl:    ttl,
	}
}

// CurrentPrice returns the current price for ticker in cents, or
// domain.ErrStockNotFound if the ticker is not in the catalog.
func (s *PriceService) CurrentPrice(ctx context.Context, ticker string) (domain.Cents, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, priceKey(ticker)); err == nil {
			if cents, err := strconv.ParseInt(raw, 10, 64); err == nil {
				return domain.Cents(cents), nil
			}
		}
	}

	stock, err := s.stocks.GetByTicker(ctx, ticker)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, priceKey(ticker), int64(stock.Price), s.ttl); err != nil {
			// Cache failures never fail the order.
			log.Printf("WARNING: failed to cache price for %s: %v", ticker, err)
		}
	}

	return stock.Price, nil
}

func priceKey(ticker string) string {
	return "price:" + ticker
}
