package org

type frame struct {
	employee *Employee
	depth    int
}

// Walk visits the subtree rooted at e depth-first in pre-order, children in
// insertion order. depth is 0 for e itself. Returning false from fn skips the
// visited employee's subordinates but continues with its siblings.
//
// The traversal keeps its own stack so very deep hierarchies do not grow the
// goroutine stack.
func (e *Employee) Walk(fn func(emp *Employee, depth int) bool) {
	stack := []frame{{employee: e}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(top.employee, top.depth) {
			continue
		}

		subs := top.employee.subordinates
		for i := len(subs) - 1; i >= 0; i-- {
			stack = append(stack, frame{employee: subs[i], depth: top.depth + 1})
		}
	}
}
