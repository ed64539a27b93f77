package domain

import (
	"testing"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/stretchr/testify/assert"
)

func graphOf(edges ...[]m.Path) *m.DependencyGraph {
	g := m.NewDependencyGraph()
	for _, e := range edges {
		g.AddFile(e[0], e[1:])
	}

	return g
}

func TestReachability_CycleScenario(t *testing.T) {
	x, y, z := m.Path("/p/X.js"), m.Path("/p/Y.js"), m.Path("/p/Z.js")
	graph := graphOf([]m.Path{x, y}, []m.Path{y, z}, []m.Path{z, y})

	analyzer := NewReachabilityAnalyzer()

	direct := analyzer.DirectReferences(graph, "Z.js")
	assert.Equal(t, []m.Path{y}, direct)

	closure := analyzer.TransitiveDependents(graph, direct)
	assert.Equal(t, []m.Path{y, x, z}, closure)

	report := analyzer.Analyze(graph, "Z.js")
	assert.Equal(t, []m.Path{y, x}, report.Closure)
	assert.Equal(t, 3, report.TotalFiles)
	assert.Equal(t, 3, report.TotalEdges)
	assert.Empty(t, report.SafeToRemove)
}

func TestReachability_DirectReferences(t *testing.T) {
	target := m.Path("/p/scripts/diamond-helpers.js")
	graph := graphOf(
		[]m.Path{"/p/a.js", target},
		[]m.Path{"/p/b.js", "/p/other-diamond-helpers.js"},
		[]m.Path{"/p/c.js", "/p/helpers.js"},
		[]m.Path{target},
	)

	direct := NewReachabilityAnalyzer().DirectReferences(graph, "diamond-helpers.js")
	assert.Equal(t, []m.Path{"/p/a.js", "/p/b.js"}, direct)
}

func TestReachability_TransitiveDependents(t *testing.T) {
	analyzer := NewReachabilityAnalyzer()

	t.Run("chain", func(t *testing.T) {
		graph := graphOf(
			[]m.Path{"/a", "/b"},
			[]m.Path{"/b", "/c"},
			[]m.Path{"/c", "/t"},
			[]m.Path{"/d"},
		)

		closure := analyzer.TransitiveDependents(graph, []m.Path{"/c"})
		assert.Equal(t, []m.Path{"/c", "/b", "/a"}, closure)
	})

	t.Run("closure is a fixed point", func(t *testing.T) {
		graph := graphOf(
			[]m.Path{"/a", "/b", "/c"},
			[]m.Path{"/b", "/c"},
			[]m.Path{"/c", "/a"},
			[]m.Path{"/e", "/b"},
		)

		closure := analyzer.TransitiveDependents(graph, []m.Path{"/c"})
		again := analyzer.TransitiveDependents(graph, closure)
		assert.ElementsMatch(t, closure, again)
		assert.ElementsMatch(t, []m.Path{"/a", "/b", "/c", "/e"}, closure)
	})

	t.Run("dangling edge seeds", func(t *testing.T) {
		graph := graphOf([]m.Path{"/a", "/ghost"})

		closure := analyzer.TransitiveDependents(graph, []m.Path{"/ghost"})
		assert.Equal(t, []m.Path{"/ghost", "/a"}, closure)
	})

	t.Run("no seeds", func(t *testing.T) {
		assert.Empty(t, analyzer.TransitiveDependents(graphOf([]m.Path{"/a", "/b"}), nil))
	})
}

func TestReachability_SafeToRemove(t *testing.T) {
	analyzer := NewReachabilityAnalyzer()

	t.Run("excludes closure and target", func(t *testing.T) {
		graph := graphOf(
			[]m.Path{"/p/uses.js", "/p/diamond-helpers.js"},
			[]m.Path{"/p/diamond-helpers.js"},
			[]m.Path{"/p/unrelated.js"},
			[]m.Path{"/p/more.ts", "/p/unrelated.js"},
		)

		report := analyzer.Analyze(graph, "diamond-helpers.js")
		assert.Equal(t, []m.Path{"/p/uses.js"}, report.Direct)
		assert.Equal(t, []m.Path{"/p/uses.js"}, report.Closure)
		assert.Equal(t, []m.Path{"/p/unrelated.js", "/p/more.ts"}, report.SafeToRemove)
		assert.Equal(t, "diamond-helpers.js", report.Target)
	})

	t.Run("single target file", func(t *testing.T) {
		graph := graphOf([]m.Path{"/p/diamond-helpers.js"})

		report := analyzer.Analyze(graph, "diamond-helpers.js")
		assert.Empty(t, report.Closure)
		assert.Empty(t, report.SafeToRemove)
	})

	t.Run("dependent whose name ends with the target name", func(t *testing.T) {
		graph := graphOf(
			[]m.Path{"/p/diamond-helpers.js"},
			[]m.Path{"/p/my-diamond-helpers.js", "/p/diamond-helpers.js"},
			[]m.Path{"/p/other.js"},
		)

		report := analyzer.Analyze(graph, "diamond-helpers.js")
		assert.Equal(t, []m.Path{"/p/my-diamond-helpers.js"}, report.Direct)
		assert.Equal(t, []m.Path{"/p/my-diamond-helpers.js"}, report.Closure)
		assert.Subset(t, report.Closure, report.Direct)
		assert.Equal(t, []m.Path{"/p/other.js"}, report.SafeToRemove)
	})

	t.Run("no references", func(t *testing.T) {
		graph := graphOf([]m.Path{"/p/a.js"}, []m.Path{"/p/b.js", "/p/a.js"})

		report := analyzer.Analyze(graph, "diamond-helpers.js")
		assert.Empty(t, report.Direct)
		assert.Empty(t, report.Closure)
		assert.Equal(t, []m.Path{"/p/a.js", "/p/b.js"}, report.SafeToRemove)
	})
}
