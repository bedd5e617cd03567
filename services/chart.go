package services

import (
	"sync"
	"time"

	"orgchart/org"

	"github.com/google/uuid"
)

// Chart is a named set of employees that share one id space. Employees
// created without a manager are the chart's roots.
//
// The org tree is not safe for concurrent use, so every access to the
// employees of a chart goes through mu. Mutations keep the number of listed
// entries within the service's limit, which bounds every walk taken under mu.
type Chart struct {
	ID        string
	Name      string
	CreatedAt time.Time

	mu        sync.RWMutex
	employees map[string]*org.Employee
	ids       map[*org.Employee]string
	order     []*org.Employee
}

// NewChart creates an empty chart with a fresh id
func NewChart(name string) *Chart {
	return &Chart{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
		employees: make(map[string]*org.Employee),
		ids:       make(map[*org.Employee]string),
	}
}

// add registers e under a new id. Caller holds mu.
func (c *Chart) add(e *org.Employee) string {
	id := uuid.New().String()
	c.employees[id] = e
	c.ids[e] = id
	c.order = append(c.order, e)
	return id
}

func (c *Chart) lookup(id string) (*org.Employee, bool) {
	e, ok := c.employees[id]
	return e, ok
}

func (c *Chart) idOf(e *org.Employee) string {
	return c.ids[e]
}

// roots returns employees without a boss in creation order. Caller holds mu.
func (c *Chart) roots() []*org.Employee {
	var out []*org.Employee
	for _, e := range c.order {
		if e.Boss() == nil {
			out = append(out, e)
		}
	}
	return out
}

// entries walks every root and returns how many entries the chart lists in
// total and how many of them are target. A reused employee counts once per
// entry. Caller holds mu.
func (c *Chart) entries(target *org.Employee) (total, hits int) {
	for _, root := range c.roots() {
		root.Walk(func(e *org.Employee, _ int) bool {
			total++
			if e == target {
				hits++
			}
			return true
		})
	}
	return total, hits
}

// hire registers e and, when manager is set, puts it under manager. Every
// entry of manager gains a copy of e, so the chart grows by manager's entry
// count. Caller holds mu for writing.
func (c *Chart) hire(e, manager *org.Employee, maxEntries int) (string, error) {
	total, hits := c.entries(manager)
	grow := 1
	if manager != nil {
		grow = hits
	}
	if total+grow > maxEntries {
		return "", ErrChartTooLarge
	}

	id := c.add(e)
	if manager != nil {
		manager.AddSubordinate(e)
	}
	return id, nil
}

// attach adds sub under manager unless manager already sits in sub's
// subtree or the chart would list more than maxEntries entries afterwards.
// Duplicate entries are allowed. Caller holds mu for writing.
func (c *Chart) attach(manager, sub *org.Employee, maxEntries int) error {
	found := false
	subSize := 0
	sub.Walk(func(e *org.Employee, _ int) bool {
		subSize++
		if e == manager {
			found = true
		}
		return !found
	})
	if found {
		return ErrWouldCreateCycle
	}

	// Each entry of manager gains a copy of sub's subtree. A root sub stops
	// being listed on its own.
	total, hits := c.entries(manager)
	projected := total + hits*subSize
	if sub.Boss() == nil {
		projected -= subSize
	}
	if projected > maxEntries {
		return ErrChartTooLarge
	}

	manager.AddSubordinate(sub)
	return nil
}
