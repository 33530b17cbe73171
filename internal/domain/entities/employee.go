package entities

import (
	"fmt"
	"insurance/internal/domain/validation"
	"strings"
)

// Employee pairs a name with a monthly salary.
type Employee struct {
	name   string
	salary float64
}

type employeeParams struct {
	Name   string  `json:"name" validate:"required"`
	Salary float64 `json:"salary" validate:"gte=0"`
}

func NewEmployee(name string, monthlySalary float64) (*Employee, error) {
	p := employeeParams{Name: strings.TrimSpace(name), Salary: monthlySalary}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return &Employee{name: p.Name, salary: p.Salary}, nil
}

func (e *Employee) AnnualSalary() float64 { return e.salary * 12 }

func (e *Employee) Summary() string {
	return fmt.Sprintf("%s earns $%.2f a month, $%.2f a year", e.name, e.salary, e.AnnualSalary())
}
