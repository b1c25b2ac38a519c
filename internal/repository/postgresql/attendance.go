package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `id, employee_id, date, status, check_in_time, check_out_time, overtime_hours, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row rowScanner, extra ...interface{}) (attendance.Attendance, error) {
	var att attendance.Attendance
	var status string
	var checkIn, checkOut sql.NullTime

	dest := []interface{}{
		&att.ID, &att.EmployeeID, &att.Date, &status, &checkIn, &checkOut,
		&att.OvertimeHours, &att.CreatedAt, &att.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return attendance.Attendance{}, err
	}

	att.Status = attendance.Status(status)
	if checkIn.Valid {
		t := checkIn.Time
		att.CheckInTime = &t
	}
	if checkOut.Valid {
		t := checkOut.Time
		att.CheckOutTime = &t
	}
	return att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, status, check_in_time, check_out_time, overtime_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		string(newAttendance.Status),
		newAttendance.CheckInTime,
		newAttendance.CheckOutTime,
		newAttendance.OvertimeHours,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyRecorded
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// GetByEmployeeDateAndStatusForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeDateAndStatusForUpdate(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2 AND status = $3
		FOR UPDATE`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// UpdateCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateCheckOut(ctx context.Context, id string, checkOut time.Time, overtimeHours float64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out_time = $1, overtime_hours = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, checkOut, overtimeHours, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update check-out: %w", err)
	}
	return att, nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateStatus(ctx context.Context, id string, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance status: %w", err)
	}
	return att, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// DeleteByEmployeeAndDates implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByEmployeeAndDates(ctx context.Context, employeeID string, dates []time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE employee_id = $1 AND date = ANY($2)`, employeeID, dates)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAll implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SumOvertimeHours implements attendance.AttendanceRepository.
func (a *attendanceRepository) SumOvertimeHours(ctx context.Context, employeeID string) (float64, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT COALESCE(SUM(overtime_hours), 0)::float8 FROM attendances WHERE employee_id = $1`

	var total float64
	if err := q.QueryRow(ctx, query, employeeID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum overtime hours: %w", err)
	}
	return total, nil
}

// ListByEmployeeID implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeID(ctx context.Context, employeeID string, statuses []attendance.Status) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
			a.overtime_hours, a.created_at, a.updated_at, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1`
	args := []interface{}{employeeID}

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		query += ` AND a.status = ANY($2)`
		args = append(args, values)
	}
	query += ` ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var name string
		att, err := scanAttendance(rows, &name)
		if err != nil {
			return nil, err
		}
		att.EmployeeName = &name
		records = append(records, att)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// CountByStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatus(ctx context.Context, employeeID string) (map[attendance.Status]int64, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM attendances WHERE employee_id = $1 GROUP BY status`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[attendance.Status(status)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
