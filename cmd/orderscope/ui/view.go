package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orderscope/internal/filter"
	"orderscope/internal/order"
)

// View renders the search screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Header.Width(m.width).Render("orderscope"))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	if m.Pending() {
		sb.WriteString("  ")
		sb.WriteString(m.styles.Pending.Render("searching…"))
	}
	if m.notice != "" {
		sb.WriteString("  ")
		sb.WriteString(m.styles.Error.Render(m.notice))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(m.width))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())

	return sb.String()
}

// refreshViewport re-renders the result rows into the viewport.
func (m *Model) refreshViewport() {
	if len(m.results) == 0 {
		m.viewport.SetContent(m.styles.Muted.Render("0 orders found"))
		return
	}

	var sb strings.Builder
	if m.grouped {
		rows := filter.Flatten(filter.GroupByStatus(m.results))
		for _, row := range rows {
			if row.Kind == filter.RowHeader {
				sb.WriteString(m.styles.GroupHeader.Render(fmt.Sprintf("%s (%d)", row.Label, row.Count)))
			} else {
				sb.WriteString("  ")
				sb.WriteString(m.renderOrder(row.Order))
			}
			sb.WriteString("\n")
		}
	} else {
		for _, o := range m.results {
			sb.WriteString(m.renderOrder(o))
			sb.WriteString("\n")
		}
	}
	m.viewport.SetContent(sb.String())
}

func (m *Model) renderOrder(o order.Order) string {
	return fmt.Sprintf("%s  %s  %s  %s  %s",
		m.styles.Bold.Render(o.ID),
		m.styles.Row.Render(fmt.Sprintf("%-14s", o.StoreName)),
		m.styles.Row.Render(fmt.Sprintf("$%8.2f", o.PaymentAmount)),
		m.statusStyle(o.Status).Render(fmt.Sprintf("%-11s", o.Status.Label())),
		m.styles.Muted.Render(fmt.Sprintf("%d clients · %d items · %s",
			o.ClientCount, o.Items, o.Timestamp.Format("Jan 02 15:04"))),
	)
}

func (m *Model) statusStyle(s order.Status) lipgloss.Style {
	switch s {
	case order.StatusPending:
		return m.styles.StatusPending
	case order.StatusInProgress:
		return m.styles.StatusInProgress
	case order.StatusCompleted:
		return m.styles.StatusCompleted
	}
	return m.styles.Row
}

func (m *Model) renderFooter() string {
	snap := m.metrics.Snapshot()

	grouping := "flat"
	if m.grouped {
		grouping = "grouped"
	}

	left := fmt.Sprintf("%d orders found", len(m.results))
	right := fmt.Sprintf("status:%s · min:$%.0f · %s · last %.2fms · avg %.2fms · %d runs · ctrl+h help",
		m.status, m.MinPayment(), grouping,
		snap.LastDurationMs, snap.AverageDurationMs, snap.TotalRuns)

	return m.styles.Footer.Render(left + "  " + m.styles.Muted.Render(right))
}
