package status

import (
	"strings"
	"time"
)

// CreateStatusCheckRequest represents a status probe
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required,notblank"`
}

// Normalize trims surrounding whitespace
func (r *CreateStatusCheckRequest) Normalize() {
	r.ClientName = strings.TrimSpace(r.ClientName)
}

// StatusCheckResponse is a stored status probe
type StatusCheckResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
