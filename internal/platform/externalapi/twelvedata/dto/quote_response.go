// Package dto defines data transfer objects for the Twelve Data API responses.
package dto

// QuoteResponse represents the JSON response from the Twelve Data quote
// endpoint. Numeric fields arrive as strings.
type QuoteResponse struct {
	Status  string `json:"status,omitempty"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Symbol  string `json:"symbol"`
	Close   string `json:"close"`
	Volume  string `json:"volume"`
}
