package model

// DependencyGraph maps each scanned source file to the files it references.
// Files are kept in insertion order; edges may dangle or form cycles.
type DependencyGraph struct {
	files []Path
	edges map[Path][]Path
}

// NewDependencyGraph returns an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{edges: map[Path][]Path{}}
}

// AddFile records a file and its resolved dependencies. Re-adding a file
// replaces its edge list without changing its position.
func (g *DependencyGraph) AddFile(file Path, deps []Path) {
	if _, ok := g.edges[file]; !ok {
		g.files = append(g.files, file)
	}

	g.edges[file] = append([]Path(nil), deps...)
}

// HasFile reports whether file was scanned.
func (g *DependencyGraph) HasFile(file Path) bool {
	_, ok := g.edges[file]
	return ok
}

// Files returns the scanned files in insertion order.
func (g *DependencyGraph) Files() []Path {
	return append([]Path(nil), g.files...)
}

// Dependencies returns the resolved dependencies of file.
func (g *DependencyGraph) Dependencies(file Path) []Path {
	return g.edges[file]
}

// Len returns the number of scanned files.
func (g *DependencyGraph) Len() int {
	return len(g.files)
}

// EdgeCount returns the total number of recorded edges.
func (g *DependencyGraph) EdgeCount() int {
	total := 0
	for _, deps := range g.edges {
		total += len(deps)
	}

	return total
}

// ScanReport is the outcome of a dependency scan for one target file.
type ScanReport struct {
	Root         Path            `json:"root"`
	Target       string          `json:"target"`
	TotalFiles   int             `json:"totalFiles"`
	TotalEdges   int             `json:"totalEdges"`
	Direct       []Path          `json:"direct"`
	Closure      []Path          `json:"closure"`
	SafeToRemove []Path          `json:"safeToRemove"`
	Skipped      []Path          `json:"skipped,omitempty"`
	Fingerprints map[Path]string `json:"fingerprints,omitempty"`
	Diagnostics  []Diagnostic    `json:"diagnostics,omitempty"`
}
