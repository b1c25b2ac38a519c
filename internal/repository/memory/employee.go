package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newID() string {
	return uuid.NewString()
}

type employeeRepository struct {
	s *Store
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	newEmployee.ID = newID()
	newEmployee.CreatedAt = r.s.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	r.s.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	emp, ok := r.s.employees[id]
	if !ok || emp.Archived {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *employeeRepository) GetAnyByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	emp, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

// GetByIDForUpdate has nothing to lock; the store mutex serializes each call.
func (r *employeeRepository) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetAnyByID(ctx, id)
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched []employee.Employee
	for _, emp := range r.s.employees {
		if emp.Archived {
			continue
		}
		if filter.Department != nil && emp.Department != *filter.Department {
			continue
		}
		if filter.Active != nil && emp.Active != *filter.Active {
			continue
		}
		matched = append(matched, emp)
	}
	sortByName(matched)

	total := int64(len(matched))
	start := filter.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *employeeRepository) ListArchived(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var archived []employee.Employee
	for _, emp := range r.s.employees {
		if emp.Archived {
			archived = append(archived, emp)
		}
	}
	sortByName(archived)
	return archived, nil
}

func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.employees[emp.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.CreatedAt = current.CreatedAt
	emp.UpdatedAt = r.s.Now()
	r.s.employees[emp.ID] = emp
	return emp, nil
}

func (r *employeeRepository) UpdateSalary(ctx context.Context, id string, salary decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	emp, ok := r.s.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Salary = salary
	emp.UpdatedAt = r.s.Now()
	r.s.employees[id] = emp
	return nil
}

// Delete cascades to the ledger, reviews and attendance like the foreign keys do.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.employees, id)

	salaries := r.s.salaries[:0]
	for _, h := range r.s.salaries {
		if h.EmployeeID != id {
			salaries = append(salaries, h)
		}
	}
	r.s.salaries = salaries

	reviews := r.s.reviews[:0]
	for _, pr := range r.s.reviews {
		if pr.EmployeeID != id {
			reviews = append(reviews, pr)
		}
	}
	r.s.reviews = reviews

	for attID, att := range r.s.attendances {
		if att.EmployeeID == id {
			delete(r.s.attendances, attID)
		}
	}
	return nil
}

func sortByName(emps []employee.Employee) {
	sort.Slice(emps, func(i, j int) bool {
		if emps[i].Name != emps[j].Name {
			return emps[i].Name < emps[j].Name
		}
		return emps[i].ID < emps[j].ID
	})
}
