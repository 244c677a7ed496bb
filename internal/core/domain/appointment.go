package domain

import "time"

// DefaultAppointmentStatus is stored when a booking does not specify one.
const DefaultAppointmentStatus = "confirmed"

// Appointment is a salon visit owned by exactly one client. Points is what the
// visit awarded; it is history and is not summed into User.Points.
type Appointment struct {
	ID        int64     `json:"id" db:"id"`
	ClientID  int64     `json:"-" db:"client_id"`
	Service   string    `json:"service" db:"service"`
	Date      string    `json:"date" db:"date"`
	Time      string    `json:"time" db:"time"`
	Points    int64     `json:"points" db:"points"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}
