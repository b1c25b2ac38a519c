package memory

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
)

type attendanceRepository struct {
	s *Store
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.attendances {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyRecorded
		}
	}

	att.ID = newID()
	att.CreatedAt = r.s.Now()
	att.UpdatedAt = att.CreatedAt
	r.s.attendances[att.ID] = att
	return att, nil
}

func (r *attendanceRepository) find(employeeID string, date time.Time, match func(attendance.Attendance) bool) (attendance.Attendance, error) {
	for _, att := range r.s.attendances {
		if att.EmployeeID == employeeID && att.Date.Equal(date) && match(att) {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.find(employeeID, date, func(attendance.Attendance) bool { return true })
}

func (r *attendanceRepository) GetByEmployeeDateAndStatusForUpdate(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.find(employeeID, date, func(att attendance.Attendance) bool { return att.Status == status })
}

func (r *attendanceRepository) update(id string, fn func(att *attendance.Attendance)) (attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	att, ok := r.s.attendances[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	fn(&att)
	att.UpdatedAt = r.s.Now()
	r.s.attendances[id] = att
	return att, nil
}

func (r *attendanceRepository) UpdateCheckOut(ctx context.Context, id string, checkOut time.Time, overtimeHours float64) (attendance.Attendance, error) {
	return r.update(id, func(att *attendance.Attendance) {
		att.CheckOutTime = &checkOut
		att.OvertimeHours = overtimeHours
	})
}

func (r *attendanceRepository) UpdateStatus(ctx context.Context, id string, status attendance.Status) (attendance.Attendance, error) {
	return r.update(id, func(att *attendance.Attendance) {
		att.Status = status
	})
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.attendances[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(r.s.attendances, id)
	return nil
}

func (r *attendanceRepository) DeleteByEmployeeAndDates(ctx context.Context, employeeID string, dates []time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var deleted int64
	for id, att := range r.s.attendances {
		if att.EmployeeID != employeeID {
			continue
		}
		for _, d := range dates {
			if att.Date.Equal(d) {
				delete(r.s.attendances, id)
				deleted++
				break
			}
		}
	}
	return deleted, nil
}

func (r *attendanceRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	deleted := int64(len(r.s.attendances))
	r.s.attendances = make(map[string]attendance.Attendance)
	return deleted, nil
}

func (r *attendanceRepository) SumOvertimeHours(ctx context.Context, employeeID string) (float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var total float64
	for _, att := range r.s.attendances {
		if att.EmployeeID == employeeID {
			total += att.OvertimeHours
		}
	}
	return math.Round(total*100) / 100, nil
}

func (r *attendanceRepository) ListByEmployeeID(ctx context.Context, employeeID string, statuses []attendance.Status) ([]attendance.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var records []attendance.Attendance
	for _, att := range r.s.attendances {
		if att.EmployeeID != employeeID || !hasStatus(statuses, att.Status) {
			continue
		}
		name := r.s.employeeName(employeeID)
		att.EmployeeName = &name
		records = append(records, att)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, employeeID string) (map[attendance.Status]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	counts := make(map[attendance.Status]int64)
	for _, att := range r.s.attendances {
		if att.EmployeeID == employeeID {
			counts[att.Status]++
		}
	}
	return counts, nil
}

func hasStatus(statuses []attendance.Status, status attendance.Status) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
