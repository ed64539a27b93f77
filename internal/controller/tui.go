package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/term"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI for terminals. Report output is buffered and shown in a
// scrollable pager when it does not fit on screen.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	config  StartConfig
	lines   []string
	flushed bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start resets the buffer for a new run.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.config = newStartConfig(options)
	p.lines = nil
	p.flushed = false

	if p.config.mode == ModeStream && p.config.title != "" {
		_, _ = fmt.Fprintln(p.output, titleStyle.Render(p.config.title))
	}

	return nil
}

// Close prints anything still buffered.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.flushLocked()
}

// Wait shows the buffered report, paging it when it is taller than the terminal.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.flushed || len(p.lines) == 0 {
		return
	}

	model := newPagerModel(p.config.title, p.lines)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		p.flushLocked()
		return
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		p.flushLocked()
		return
	}

	p.flushed = true
}

// DisplayProgress prints immediately in stream mode and buffers otherwise.
func (p *TUI) DisplayProgress(ctx context.Context, message string) {
	if ctx.Err() != nil {
		return
	}

	p.emit(message)
}

// DisplayDiagnostics highlights warnings.
func (p *TUI) DisplayDiagnostics(ctx context.Context, diagnostics []m.Diagnostic) {
	if ctx.Err() != nil {
		return
	}

	for _, d := range diagnostics {
		p.emit(warnStyle.Render(renderDiagnostic(d)))
	}
}

// DisplayPlan buffers the cut plan table.
func (p *TUI) DisplayPlan(ctx context.Context, plan m.CutPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.emit(splitLines(renderPlan(plan))...)

	return nil
}

// DisplayDeployment buffers the deployment summary.
func (p *TUI) DisplayDeployment(ctx context.Context, report m.DeploymentReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.emit(splitLines(renderDeployment(report))...)

	return nil
}

// DisplayLoupe buffers the loupe listing.
func (p *TUI) DisplayLoupe(ctx context.Context, diamond common.Address, facets []m.LoupeFacet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.emit(splitLines(renderLoupe(diamond, facets))...)

	return nil
}

// DisplayMerge buffers the merge summary.
func (p *TUI) DisplayMerge(ctx context.Context, summary m.MergeSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.emit(splitLines(renderMerge(summary))...)

	return nil
}

// DisplayScan buffers the scan report.
func (p *TUI) DisplayScan(ctx context.Context, report m.ScanReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.emit(scanLines(report)...)

	return nil
}

func (p *TUI) emit(lines ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.config.mode == ModeStream {
		for _, line := range lines {
			_, _ = fmt.Fprintln(p.output, line)
		}

		return
	}

	p.lines = append(p.lines, lines...)
	p.flushed = false
}

func (p *TUI) flushLocked() {
	if p.flushed {
		return
	}

	if p.config.title != "" && p.config.mode == ModeReport && len(p.lines) > 0 {
		_, _ = fmt.Fprintln(p.output, titleStyle.Render(p.config.title))
	}

	for _, line := range p.lines {
		_, _ = fmt.Fprintln(p.output, line)
	}

	p.lines = nil
	p.flushed = true
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}

type pagerKeyMap struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

var pagerKeys = pagerKeyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
}

// pagerModel is the Bubble Tea model that scrolls a fixed list of lines.
type pagerModel struct {
	title    string
	lines    []string
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newPagerModel(title string, lines []string) pagerModel {
	return pagerModel{title: title, lines: lines}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width
		pm.offset = clamp(pm.offset, 0, pm.maxOffset())

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pagerKeys.Quit):
		pm.quitting = true
		return pm, tea.Quit
	case key.Matches(msg, pagerKeys.Down):
		pm.offset++
	case key.Matches(msg, pagerKeys.Up):
		pm.offset--
	case key.Matches(msg, pagerKeys.PageDown):
		pm.offset += pm.itemsPerPage()
	case key.Matches(msg, pagerKeys.PageUp):
		pm.offset -= pm.itemsPerPage()
	case key.Matches(msg, pagerKeys.Top):
		pm.offset = 0
	case key.Matches(msg, pagerKeys.Bottom):
		pm.offset = pm.maxOffset()
	}

	pm.offset = clamp(pm.offset, 0, pm.maxOffset())

	return pm, nil
}

// itemsPerPage reserves the title, two spacer lines and the footer.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	available := pm.height - 4
	if available < 1 {
		return 1
	}

	return available
}

func (pm pagerModel) maxOffset() int {
	maxOff := len(pm.lines) - pm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")

	end := pm.offset + pm.itemsPerPage()
	if end > len(pm.lines) {
		end = len(pm.lines)
	}

	for _, line := range pm.lines[pm.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"lines %d-%d of %d • %s quit • %s/%s scroll • %s/%s page • %s/%s top/bottom",
		pm.offset+1, end, len(pm.lines),
		pagerKeys.Quit.Help().Key,
		pagerKeys.Down.Help().Key, pagerKeys.Up.Help().Key,
		pagerKeys.PageDown.Help().Key, pagerKeys.PageUp.Help().Key,
		pagerKeys.Top.Help().Key, pagerKeys.Bottom.Help().Key,
	)))

	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
