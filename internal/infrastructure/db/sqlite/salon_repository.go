package sqlite

import (
	"context"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/salonelidia/salon-system/internal/core/domain"
)

// Points are summed per client before the join so a client with several
// appointments is not counted more than once.
const adminStatsQuery = `
	SELECT
		COUNT(u.id)                 AS total_clients,
		COALESCE(SUM(u.points), 0)  AS total_points,
		COALESCE(SUM(a.cnt), 0)     AS total_appointments
	FROM users u
	LEFT JOIN (
		SELECT client_id, COUNT(*) AS cnt
		FROM appointments
		GROUP BY client_id
	) a ON a.client_id = u.id
	WHERE u.role = 'client'`

const listClientsQuery = `
	SELECT id, username, first_name, phone, points, created_at
	FROM users
	WHERE role = 'client'
	ORDER BY created_at DESC, id DESC`

const clientProfileQuery = `
	SELECT id, username, first_name, phone, points
	FROM users
	WHERE id = ? AND role = 'client'`

const clientAppointmentsQuery = `
	SELECT id, client_id, service, date, time, points, status, created_at
	FROM appointments
	WHERE client_id = ?
	ORDER BY date DESC, time ASC`

func (r *Repository) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := sqlscan.Get(ctx, r.db, &stats, adminStatsQuery); err != nil {
		return domain.AdminStats{}, storageErr("admin stats", err)
	}
	return stats, nil
}

// ListClients returns client accounts newest first. Password hashes are never
// selected.
func (r *Repository) ListClients(ctx context.Context) ([]domain.ClientSummary, error) {
	var clients []domain.ClientSummary
	if err := sqlscan.Select(ctx, r.db, &clients, listClientsQuery); err != nil {
		return nil, storageErr("list clients", err)
	}
	return clients, nil
}

func (r *Repository) ClientProfile(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
	var p domain.ClientProfile
	if err := sqlscan.Get(ctx, r.db, &p, clientProfileQuery, userID); err != nil {
		if sqlscan.NotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("client profile", err)
	}
	return &p, nil
}

func (r *Repository) ClientAppointments(ctx context.Context, userID int64) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	if err := sqlscan.Select(ctx, r.db, &appts, clientAppointmentsQuery, userID); err != nil {
		return nil, storageErr("client appointments", err)
	}
	return appts, nil
}

// CreateAppointment records a visit for an existing user. It does not touch
// the owner's points balance.
func (r *Repository) CreateAppointment(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	status := a.Status
	if status == "" {
		status = domain.DefaultAppointmentStatus
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO appointments (client_id, service, date, time, points, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ClientID, a.Service, a.Date, a.Time, a.Points, status, formatTime(a.CreatedAt),
	)
	if err != nil {
		return nil, storageErr("insert appointment", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageErr("insert appointment id", err)
	}

	created := *a
	created.ID = id
	created.Status = status
	return &created, nil
}
