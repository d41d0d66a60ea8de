package worker

import "time"

// Worker is a row of the workers table. The attendance ledger only holds the
// worker_id foreign key; name and phone are resolved from here at render time.
type Worker struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}
