package workflow

import "fmt"

// Plan declares the steps of a scenario and the dependency
// relationships between them.
type Plan struct {
	Steps map[string]Step
	Edges []Edge
}

// Edge represents a dependency: To depends on From.
type Edge struct {
	From string
	To   string
}

// BuildPhases uses Kahn's algorithm to group steps by dependency level.
// Steps within the same phase fan out in parallel; a later phase only
// starts after the previous one fully joined.
// Returns an error if a cycle is detected.
func BuildPhases(p *Plan) ([][]string, error) {
	inDegree := make(map[string]int)
	dependents := make(map[string][]string) // from -> [to...]

	for name := range p.Steps {
		inDegree[name] = 0
	}

	for _, e := range p.Edges {
		if _, ok := p.Steps[e.From]; !ok {
			return nil, fmt.Errorf("workflow: edge references unknown step %q", e.From)
		}
		if _, ok := p.Steps[e.To]; !ok {
			return nil, fmt.Errorf("workflow: edge references unknown step %q", e.To)
		}
		inDegree[e.To]++
		dependents[e.From] = append(dependents[e.From], e.To)
	}

	// Steps with no incoming edges form the first phase
	var queue []string
	for name, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, name)
		}
	}

	var phases [][]string
	visited := 0

	for len(queue) > 0 {
		phases = append(phases, queue)
		visited += len(queue)

		var next []string
		for _, name := range queue {
			for _, dep := range dependents[name] {
				inDegree[dep]--
				if inDegree[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		queue = next
	}

	if visited != len(p.Steps) {
		return nil, fmt.Errorf("workflow: cycle detected, processed %d of %d steps", visited, len(p.Steps))
	}

	return phases, nil
}
