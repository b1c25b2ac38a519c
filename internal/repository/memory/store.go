// Package memory keeps every repository in process memory. It mirrors the
// postgresql package closely enough to drive service tests: archived scoping,
// the one-record-per-day attendance rule and the delete cascade all hold.
package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/review"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/salary"
	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/user"
)

type Store struct {
	mu sync.Mutex

	employees   map[string]employee.Employee
	salaries    []salary.SalaryHistory
	reviews     []review.PerformanceReview
	attendances map[string]attendance.Attendance
	users       map[string]user.User

	// Now stamps created_at/updated_at columns.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees:   make(map[string]employee.Employee),
		attendances: make(map[string]attendance.Attendance),
		users:       make(map[string]user.User),
		Now:         time.Now,
	}
}

func (s *Store) Employees() employee.EmployeeRepository { return &employeeRepository{s} }

func (s *Store) Salaries() salary.SalaryHistoryRepository { return &salaryRepository{s} }

func (s *Store) Reviews() review.ReviewRepository { return &reviewRepository{s} }

func (s *Store) Attendance() attendance.AttendanceRepository { return &attendanceRepository{s} }

func (s *Store) Users() user.UserRepository { return &userRepository{s} }

// SeedEmployee inserts emp as is, keeping its ID when set.
func (s *Store) SeedEmployee(emp employee.Employee) employee.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	if emp.ID == "" {
		emp.ID = newID()
	}
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = s.Now()
		emp.UpdatedAt = emp.CreatedAt
	}
	s.employees[emp.ID] = emp
	return emp
}

// SeedAttendance inserts a raw attendance row.
func (s *Store) SeedAttendance(att attendance.Attendance) attendance.Attendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	if att.ID == "" {
		att.ID = newID()
	}
	s.attendances[att.ID] = att
	return att
}

// EmployeeSnapshot returns the stored row, archived or not.
func (s *Store) EmployeeSnapshot(id string) (employee.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	emp, ok := s.employees[id]
	return emp, ok
}

func (s *Store) AttendanceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attendances)
}

func (s *Store) employeeName(id string) string {
	return s.employees[id].Name
}
