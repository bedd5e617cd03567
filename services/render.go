package services

import (
	"bytes"
	"fmt"

	"orgchart/org"

	"github.com/ddddddO/gtree"
)

type renderFrame struct {
	employee *org.Employee
	node     *gtree.Node
}

// RenderTree draws the subtree rooted at e, one line per subordinate entry.
// gtree merges siblings with equal text, so repeats among siblings are
// labelled "#2", "#3" and so on.
func RenderTree(e *org.Employee) (string, error) {
	root := gtree.NewRoot(label(e))

	stack := []renderFrame{{employee: e, node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		seen := make(map[string]int)
		for _, sub := range top.employee.Subordinates() {
			text := label(sub)
			seen[text]++
			if n := seen[text]; n > 1 {
				text = fmt.Sprintf("%s #%d", text, n)
			}
			stack = append(stack, renderFrame{employee: sub, node: top.node.Add(text)})
		}
	}

	var buf bytes.Buffer
	if err := gtree.OutputProgrammably(&buf, root); err != nil {
		return "", fmt.Errorf("failed to render tree: %w", err)
	}
	return buf.String(), nil
}

func label(e *org.Employee) string {
	if e.Title() == "" {
		return e.Name()
	}
	return fmt.Sprintf("%s (%s)", e.Name(), e.Title())
}
