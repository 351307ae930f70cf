package domain

// Order is a validated buy/sell request, safe to hand to the
// execution engine. Construct one through ValidateOrder.
type Order struct {
	Username string
	Ticker   string
	Type     string
	Volume   int64
}

// maximum handle length, matching the users table column
const maxUsernameLen = 50

// ValidateOrder shape-checks raw order fields before they reach the
// balance-mutating path. It never touches a store. On failure it
// returns a *ValidationError naming the offending field.
func ValidateOrder(username, ticker, orderType string, volume int64) (*Order, error) {
	if username == "" {
		return nil, &ValidationError{Field: "user", Reason: "user reference is required"}
	}
	if len(username) > maxUsernameLen {
		return nil, &ValidationError{Field: "user", Reason: "user reference too long"}
	}
	if ticker == "" {
		return nil, &ValidationError{Field: "ticker", Reason: "ticker is required"}
	}
	if orderType != TypeBuy && orderType != TypeSell {
		return nil, &ValidationError{Field: "type", Reason: "type must be 'buy' or 'sell'"}
	}
	if volume <= 0 {
		return nil, &ValidationError{Field: "volume", Reason: "volume must be a positive integer"}
	}

	return &Order{
		Username: username,
		Ticker:   ticker,
		Type:     orderType,
		Volume:   volume,
	}, nil
}
