// Package api defines the JSON request and response types shared by the HTTP handlers.
package api

// ErrorResponse is the generic error payload returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// LoginRequest is the operator login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PurgeRequest is the payload for the purge endpoint.
// Confirmed defaults to false: without it the operation only backs rows up.
type PurgeRequest struct {
	Symbols   []string `json:"symbols" binding:"required"`
	Confirmed bool     `json:"confirmed"`
}

// PurgeResponse reports the outcome of a purge run.
type PurgeResponse struct {
	RunID     string   `json:"run_id"`
	Symbols   []string `json:"symbols"`
	BackedUp  int64    `json:"backed_up"`
	Deleted   int64    `json:"deleted"`
	Confirmed bool     `json:"confirmed"`
	StartedAt string   `json:"started_at"`
}

// ValidationRunRequest optionally restricts validation to specific symbols.
// When empty, every security flagged by the stale scan is validated.
type ValidationRunRequest struct {
	Symbols []string `json:"symbols"`
}

// RemovalResponse is a single removal log entry.
type RemovalResponse struct {
	Symbol    string  `json:"symbol"`
	Date      string  `json:"date"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
	LastPrice float64 `json:"last_price"`
	Watchlist string  `json:"watchlist"`
}
