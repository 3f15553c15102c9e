package models

// BoardCredentials is the stored bearer credential for the collaboration
// API. The OAuth handshake happens outside this service; the token arrives
// through the auth surface and is persisted so a restart keeps the
// connection.
type BoardCredentials struct {
	ID          string `json:"id"`           // Storage key, one record per service
	AccessToken string `json:"access_token"` // Bearer token presented to the vendor API
	TokenType   string `json:"token_type"`   // Normally "Bearer"
	BaseURL     string `json:"base_url"`     // Vendor API base URL the token belongs to
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}
