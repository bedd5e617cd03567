// Package org models a management hierarchy as a tree of employees.
//
// A tree is built with NewEmployee and AddSubordinate and queried from any
// node, which acts as the root of its own subtree. Nothing here is safe for
// concurrent use; callers sharing a tree across goroutines must synchronize.
package org

// Employee is one person in the hierarchy.
//
// The subordinates slice is the only owning edge. boss is a lookup pointer
// used for upward traversal.
type Employee struct {
	name   string
	title  string
	salary float64

	boss         *Employee
	subordinates []*Employee
}

// NewEmployee returns an employee with no boss and no subordinates.
func NewEmployee(name, title string, salary float64) *Employee {
	return &Employee{
		name:   name,
		title:  title,
		salary: salary,
	}
}

func (e *Employee) Name() string    { return e.name }
func (e *Employee) Title() string   { return e.title }
func (e *Employee) Salary() float64 { return e.salary }

// Boss returns the direct manager, or nil for a root.
func (e *Employee) Boss() *Employee { return e.boss }

// Subordinates returns a copy of the direct reports in insertion order.
func (e *Employee) Subordinates() []*Employee {
	out := make([]*Employee, len(e.subordinates))
	copy(out, e.subordinates)
	return out
}

// AddSubordinate makes e the boss of s and appends s to e's reports.
//
// There is no duplicate or cycle check. Adding the same employee twice
// lists it twice, and both entries are counted by TotalEmployees. Callers
// must not attach an employee under itself or under one of its own reports.
func (e *Employee) AddSubordinate(s *Employee) {
	s.boss = e
	e.subordinates = append(e.subordinates, s)
}

// BossName returns the manager's name. ok is false for a root.
func (e *Employee) BossName() (name string, ok bool) {
	if e.boss == nil {
		return "", false
	}
	return e.boss.name, true
}

// NumberOfSubordinates counts direct report entries only.
func (e *Employee) NumberOfSubordinates() int {
	return len(e.subordinates)
}

// NumberOfPeopleToRoot counts the upward hops to the first employee without
// a boss. A root returns 0.
func (e *Employee) NumberOfPeopleToRoot() int {
	hops := 0
	for current := e; current.boss != nil; current = current.boss {
		hops++
	}
	return hops
}

// HasSameBoss compares bosses by identity. Two roots share the same (absent) boss.
func (e *Employee) HasSameBoss(other *Employee) bool {
	return e.boss == other.boss
}

// EmployeesEarningOver returns every employee in the subtree rooted at e,
// e included, whose salary is strictly greater than amount, in pre-order.
// The result is never nil.
func (e *Employee) EmployeesEarningOver(amount float64) []*Employee {
	employees := make([]*Employee, 0)
	e.Walk(func(emp *Employee, _ int) bool {
		if emp.salary > amount {
			employees = append(employees, emp)
		}
		return true
	})
	return employees
}

// TotalEmployees counts e plus every subordinate entry below it. An employee
// listed twice is counted twice.
func (e *Employee) TotalEmployees() int {
	total := 0
	e.Walk(func(*Employee, int) bool {
		total++
		return true
	})
	return total
}
