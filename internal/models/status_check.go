package models

import "time"

// StatusCheck records that a client probed the API
type StatusCheck struct {
	ID         string    `db:"id" json:"id"`
	ClientName string    `db:"client_name" json:"client_name"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
}
