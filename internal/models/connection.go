package models

import "time"

// Connection links two users. A single logical relationship exists per user
// pair regardless of direction; the storage layer enforces that with a
// LEAST/GREATEST unique index over non-rejected rows.
type Connection struct {
	ID          int64            `json:"id" db:"id"`
	RequesterID int64            `json:"requester_id" db:"requester_id"`
	ReceiverID  int64            `json:"receiver_id" db:"receiver_id"`
	Status      ConnectionStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

// Involves reports whether userID is on either side of the connection.
func (c *Connection) Involves(userID int64) bool {
	return c.RequesterID == userID || c.ReceiverID == userID
}

// Other returns the counterpart of userID in the connection.
func (c *Connection) Other(userID int64) int64 {
	if c.RequesterID == userID {
		return c.ReceiverID
	}
	return c.RequesterID
}

// ConnectionWithUser joins a connection with the counterpart's identity,
// relative to the user who asked for the listing.
type ConnectionWithUser struct {
	Connection
	UserID   int64   `json:"user_id"` // the counterpart
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Title    *string `json:"title,omitempty"`
}
