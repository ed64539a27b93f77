package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_ReportModeBuffersUntilWait(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, tui.Start(ctx, WithReportMode("Cut plan")))
	require.NoError(t, tui.DisplayPlan(ctx, testPlan()))

	assert.Empty(t, buf.String(), "report mode should buffer output")

	// Non-terminal writers have no height, so Wait prints directly.
	tui.Wait(ctx)

	output := buf.String()
	assert.Contains(t, output, "Cut plan")
	assert.Contains(t, output, "OwnershipFacet")
	assert.Contains(t, output, "Plan digest: abc123")

	tui.Close(ctx)
	assert.Equal(t, output, buf.String(), "Close should not print twice")
}

func TestTUI_StreamModePrintsImmediately(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, tui.Start(ctx, WithStreamMode("Deploying to sepolia")))
	tui.DisplayProgress(ctx, "deploying DiamondCutFacet")

	output := buf.String()
	assert.Contains(t, output, "Deploying to sepolia")
	assert.Contains(t, output, "deploying DiamondCutFacet")
}

func TestTUI_CloseFlushesBufferedLines(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, tui.Start(ctx))
	require.NoError(t, tui.DisplayScan(ctx, m.ScanReport{Root: "src", Target: "Z.js"}))
	tui.DisplayDiagnostics(ctx, []m.Diagnostic{{Kind: m.DiagnosticUnreadableFile, Subject: "src/a.js", Message: "denied"}})

	tui.Close(ctx)

	output := buf.String()
	assert.Contains(t, output, "No direct references found to Z.js.")
	assert.Contains(t, output, "unreadable-file src/a.js: denied")
}

func pagerLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}

	return lines
}

func TestPagerModel_Navigation(t *testing.T) {
	model := newPagerModel("Scan", pagerLines(30))
	model.height = 14 // 10 lines per page

	press := func(pm pagerModel, keys string) pagerModel {
		updated, _ := pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
		return updated.(pagerModel)
	}

	assert.True(t, model.needsPagination())
	assert.Equal(t, 20, model.maxOffset())

	model = press(model, "j")
	assert.Equal(t, 1, model.offset)

	model = press(model, "k")
	model = press(model, "k")
	assert.Equal(t, 0, model.offset, "offset should not go negative")

	model = press(model, "d")
	assert.Equal(t, 10, model.offset)

	model = press(model, "G")
	assert.Equal(t, 20, model.offset)

	model = press(model, "d")
	assert.Equal(t, 20, model.offset, "offset should stop at the last page")

	model = press(model, "u")
	assert.Equal(t, 10, model.offset)

	model = press(model, "g")
	assert.Equal(t, 0, model.offset)

	view := model.View()
	assert.Contains(t, view, "line 1")
	assert.Contains(t, view, "line 10")
	assert.NotContains(t, view, "line 11\n")
	assert.Contains(t, view, "lines 1-10 of 30")
}

func TestPagerModel_Quit(t *testing.T) {
	model := newPagerModel("Scan", pagerLines(3))

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)

	pm := updated.(pagerModel)
	assert.True(t, pm.quitting)
	assert.Empty(t, pm.View())
}

func TestPagerModel_WindowResize(t *testing.T) {
	model := newPagerModel("Scan", pagerLines(30))
	model.height = 14
	model.offset = 20

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	pm := updated.(pagerModel)

	assert.Equal(t, 0, pm.offset, "offset is clamped when everything fits")
	assert.False(t, pm.needsPagination())
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{""}, splitLines(""))
	assert.True(t, strings.HasPrefix(strings.Join(splitLines("x\n\ny"), "|"), "x||y"))
}
