package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/olekukonko/tablewriter"
)

func newTable(buf *bytes.Buffer, header []string, alignment []int) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(alignment)

	return table
}

func renderPlan(plan m.CutPlan) string {
	var buf bytes.Buffer

	table := newTable(&buf,
		[]string{"Facet", "Address", "Action", "Selectors"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT},
	)

	for _, record := range plan.Records {
		table.Append([]string{
			record.FacetName,
			record.FacetAddress.Hex(),
			record.Action.String(),
			strings.Join(m.SelectorStrings(record.Selectors), " "),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Records %d", len(plan.Records)),
		"",
		"",
		fmt.Sprintf("%d selectors", plan.SelectorCount()),
	})
	table.Render()

	if len(plan.Collisions) > 0 {
		buf.WriteString("\nCollisions:\n")

		collisions := newTable(&buf,
			[]string{"Facet", "Selector", "Owner"},
			[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT},
		)
		for _, c := range plan.Collisions {
			collisions.Append([]string{c.Facet, c.Selector.String(), c.Owner})
		}

		collisions.Render()
	}

	if len(plan.Skipped) > 0 {
		fmt.Fprintf(&buf, "\nSkipped facets (no unique selectors): %s\n", strings.Join(plan.Skipped, ", "))
	}

	if plan.Digest != "" {
		fmt.Fprintf(&buf, "\nPlan digest: %s\n", plan.Digest)
	}

	return buf.String()
}

func renderDeployment(report m.DeploymentReport) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Network: %s\n", strings.ToUpper(report.Network))

	table := newTable(&buf,
		[]string{"Contract", "Address", "Tx"},
		[]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT},
	)

	if report.CutFacet != nil {
		table.Append([]string{report.CutFacet.Name, report.CutFacet.Address.Hex(), report.CutFacet.TxHash.Hex()})
	}

	for _, facet := range report.Facets {
		table.Append([]string{facet.Name, facet.Address.Hex(), facet.TxHash.Hex()})
	}

	if report.Diamond != (common.Address{}) {
		table.Append([]string{"Diamond", report.Diamond.Hex(), report.CutTx.Hex()})
	}

	table.Render()

	if len(report.SavedKeys) > 0 {
		fmt.Fprintf(&buf, "\nSaved to env: %s\n", strings.Join(report.SavedKeys, ", "))
	}

	buf.WriteString("\n")
	buf.WriteString(renderPlan(report.Plan))

	return buf.String()
}

func renderLoupe(diamond common.Address, facets []m.LoupeFacet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Diamond Address: %s\n", diamond.Hex())
	fmt.Fprintf(&b, "\nFacets (%d) deployed:\n\n", len(facets))

	for i, facet := range facets {
		fmt.Fprintf(&b, "%d. %s\n", i+1, facet.Address.Hex())

		for _, sel := range facet.Selectors {
			fmt.Fprintf(&b, "   ↳ %s\n", sel)
		}
	}

	return b.String()
}

func renderMerge(summary m.MergeSummary) string {
	var b strings.Builder

	if summary.Diff != "" {
		b.WriteString(summary.Diff)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Merged %d entries from %d documents (policy %s, dropped %d)\n",
		summary.Entries, summary.Documents, summary.Policy, summary.Dropped)

	if summary.Output != "" {
		fmt.Fprintf(&b, "Unified ABI written to: %s\n", summary.Output)
	}

	return b.String()
}

func scanLines(report m.ScanReport) []string {
	lines := []string{fmt.Sprintf("Scanning %s for references to %s", report.Root, report.Target), ""}

	if len(report.Direct) == 0 {
		lines = append(lines, fmt.Sprintf("No direct references found to %s.", report.Target))
	} else {
		lines = append(lines, fmt.Sprintf("Direct references to %s:", report.Target))
		lines = appendPaths(lines, report.Direct)
	}

	lines = append(lines, "")

	if len(report.Closure) == 0 {
		lines = append(lines, "No indirect references found.")
	} else {
		lines = append(lines, "Dependency chain (direct and indirect):")
		lines = appendPaths(lines, report.Closure)
	}

	var buf bytes.Buffer

	summary := newTable(&buf, []string{"Summary", "Files"}, []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	summary.Append([]string{"Scanned", fmt.Sprintf("%d", report.TotalFiles)})
	summary.Append([]string{"Import edges", fmt.Sprintf("%d", report.TotalEdges)})
	summary.Append([]string{"Depending on " + report.Target, fmt.Sprintf("%d", len(report.Closure))})
	summary.Append([]string{"Safe to remove", fmt.Sprintf("%d", len(report.SafeToRemove))})

	if len(report.Skipped) > 0 {
		summary.Append([]string{"Unreadable", fmt.Sprintf("%d", len(report.Skipped))})
	}

	summary.Render()

	lines = append(lines, "")
	lines = append(lines, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")...)

	if len(report.SafeToRemove) > 0 {
		lines = append(lines, "", fmt.Sprintf("Files NOT depending on %s (candidates to clean):", report.Target))
		lines = appendPaths(lines, report.SafeToRemove)
	}

	return lines
}

func appendPaths(lines []string, paths []m.Path) []string {
	for _, p := range paths {
		lines = append(lines, "  - "+string(p))
	}

	return lines
}

func renderDiagnostic(d m.Diagnostic) string {
	return fmt.Sprintf("warning: %s %s: %s", d.Kind, d.Subject, d.Message)
}
