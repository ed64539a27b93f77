package domain

import (
	"path/filepath"
	"strings"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
)

// ReachabilityAnalyzer answers "who depends on this file" over a DependencyGraph.
type ReachabilityAnalyzer interface {
	DirectReferences(graph *m.DependencyGraph, target string) []m.Path
	TransitiveDependents(graph *m.DependencyGraph, seeds []m.Path) []m.Path
	SafeToRemove(graph *m.DependencyGraph, closure []m.Path, target string) []m.Path
	Analyze(graph *m.DependencyGraph, target string) m.ScanReport
}

type reachabilityAnalyzer struct{}

// NewReachabilityAnalyzer returns a stateless analyzer.
func NewReachabilityAnalyzer() ReachabilityAnalyzer {
	return &reachabilityAnalyzer{}
}

// DirectReferences lists, in graph order, files with a dependency whose path
// ends with the target's file name. The match is a plain suffix test, so
// "a-diamond-helpers.js" also matches "diamond-helpers.js".
func (r *reachabilityAnalyzer) DirectReferences(graph *m.DependencyGraph, target string) []m.Path {
	name := filepath.Base(target)
	direct := []m.Path{}

	for _, file := range graph.Files() {
		for _, dep := range graph.Dependencies(file) {
			if strings.HasSuffix(string(dep), name) {
				direct = append(direct, file)
				break
			}
		}
	}

	return direct
}

// TransitiveDependents runs a breadth-first search over reversed edges from
// seeds. The result starts with the seeds and is cycle safe.
func (r *reachabilityAnalyzer) TransitiveDependents(graph *m.DependencyGraph, seeds []m.Path) []m.Path {
	reverse := map[m.Path][]m.Path{}

	for _, file := range graph.Files() {
		for _, dep := range graph.Dependencies(file) {
			reverse[dep] = append(reverse[dep], file)
		}
	}

	visited := make(map[m.Path]struct{}, len(seeds))
	closure := make([]m.Path, 0, len(seeds))
	queue := make([]m.Path, 0, len(seeds))

	for _, seed := range seeds {
		if _, ok := visited[seed]; ok {
			continue
		}

		visited[seed] = struct{}{}
		closure = append(closure, seed)
		queue = append(queue, seed)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, parent := range reverse[current] {
			if _, ok := visited[parent]; ok {
				continue
			}

			visited[parent] = struct{}{}
			closure = append(closure, parent)
			queue = append(queue, parent)
		}
	}

	return closure
}

// SafeToRemove lists graph files outside closure that are not the target itself.
func (r *reachabilityAnalyzer) SafeToRemove(graph *m.DependencyGraph, closure []m.Path, target string) []m.Path {
	name := filepath.Base(target)

	inClosure := make(map[m.Path]struct{}, len(closure))
	for _, file := range closure {
		inClosure[file] = struct{}{}
	}

	candidates := []m.Path{}

	for _, file := range graph.Files() {
		if _, ok := inClosure[file]; ok {
			continue
		}

		if strings.HasSuffix(string(file), name) {
			continue
		}

		candidates = append(candidates, file)
	}

	return candidates
}

// Analyze runs the three queries for target and fills the report totals.
// The reported closure leaves out files named exactly like the target, which
// a cycle through the target would otherwise pull in. Files whose name merely
// ends with the target name stay in.
func (r *reachabilityAnalyzer) Analyze(graph *m.DependencyGraph, target string) m.ScanReport {
	name := filepath.Base(target)
	direct := r.DirectReferences(graph, target)
	closure := r.TransitiveDependents(graph, direct)

	dependents := make([]m.Path, 0, len(closure))
	for _, file := range closure {
		if filepath.Base(string(file)) != name {
			dependents = append(dependents, file)
		}
	}

	return m.ScanReport{
		Target:       target,
		TotalFiles:   graph.Len(),
		TotalEdges:   graph.EdgeCount(),
		Direct:       direct,
		Closure:      dependents,
		SafeToRemove: r.SafeToRemove(graph, closure, target),
	}
}
