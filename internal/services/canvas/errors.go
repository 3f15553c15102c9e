package canvas

import "fmt"

// APIError represents an error response from the canvas API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("canvas API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// IngestionError aborts a board retrieval: any page failure discards the
// whole run, no partial boards are returned.
type IngestionError struct {
	BoardID string
	Page    int
	Err     error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("board %s ingestion aborted on page %d: %v", e.BoardID, e.Page, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}
