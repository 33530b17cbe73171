// Package entities holds the supporting domain records: students, coffee
// orders, devices, accounts, inventory and user profiles. Like the vehicle
// package, these structs have no dependencies on HTTP, storage or logging.
//
// Go Learning Note — Validate Parameters, Then Build:
// Constructors here validate their inputs before allocating anything, and
// return (nil, err) on failure. A caller can never hold a half-built Student
// with a negative age, because no Student value exists until validation passes.
package entities

import (
	"fmt"
	"insurance/internal/domain/validation"
	"strings"
)

// Student is an immutable student record.
type Student struct {
	name  string
	age   int
	marks int
}

type studentParams struct {
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age" validate:"gt=0"`
	Marks int    `json:"marks" validate:"gte=0,lte=100"`
}

// NewStudent fails with *validation.ValidationError when age <= 0 or marks
// fall outside [0, 100].
func NewStudent(name string, age, marks int) (*Student, error) {
	p := studentParams{Name: strings.TrimSpace(name), Age: age, Marks: marks}
	if err := validation.Struct(p); err != nil {
		return nil, err
	}
	return &Student{name: p.Name, age: p.Age, marks: p.Marks}, nil
}

func (s *Student) Name() string { return s.name }
func (s *Student) Age() int     { return s.age }
func (s *Student) Marks() int   { return s.marks }

// Details returns a one-line description of the student.
func (s *Student) Details() string {
	return fmt.Sprintf("Name is %s, age is %d and %d marks scored", s.name, s.age, s.marks)
}
