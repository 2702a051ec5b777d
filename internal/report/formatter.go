package report

import (
	"fmt"
	"sort"
	"strings"

	"worklog/internal/domain"
)

// Header is the fixed report table header. Column widths below are part of
// the output contract; scripts diff report output.
const Header = "Project | Time | Hours | $$$.$$ CUR"

// Render formats grand per-project totals as a fixed-column table. Each row
// shows minutes, hours to one decimal, and, when the project has a
// configured rate, the wage in that rate's currency. A trailing TOTALS
// section sums per currency; projects without a rate share a currency-less
// bucket whose wage column is "-".
func Render(totals map[string]int, rates domain.RateTable) string {
	var b strings.Builder
	b.WriteString(Header + "\n")

	projects := make([]string, 0, len(totals))
	for project := range totals {
		projects = append(projects, project)
	}
	sort.Strings(projects)

	type bucket struct {
		minutes int
		wage    float64
	}
	byCurrency := make(map[string]*bucket)

	for _, project := range projects {
		minutes := totals[project]
		hours := float64(minutes) / 60

		rate, ok := rates.Lookup(project)
		currency := ""
		if ok {
			currency = rate.Currency
		}
		cur := byCurrency[currency]
		if cur == nil {
			cur = &bucket{}
			byCurrency[currency] = cur
		}
		cur.minutes += minutes

		if ok {
			wage := hours * rate.Hourly
			cur.wage += wage
			fmt.Fprintf(&b, "%12s  %6d  %6.1fh | %9.2f %s\n", project, minutes, hours, wage, rate.Currency)
		} else {
			fmt.Fprintf(&b, "%12s  %6d  %6.1fh | %9s\n", project, minutes, hours, "-")
		}
	}

	currencies := make([]string, 0, len(byCurrency))
	for currency := range byCurrency {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	b.WriteString("\n")
	for _, currency := range currencies {
		cur := byCurrency[currency]
		hours := float64(cur.minutes) / 60
		if currency == "" {
			fmt.Fprintf(&b, "%12s  %6d  %6.1fh | %9s\n", "TOTALS", cur.minutes, hours, "-")
		} else {
			fmt.Fprintf(&b, "%12s  %6d  %6.1fh | %9.2f %s\n", "TOTALS", cur.minutes, hours, cur.wage, currency)
		}
	}

	return b.String()
}

// RenderDays formats the verbose per-day breakdown that precedes the totals
// table: each day's raw entries followed by its per-project subtotals.
func RenderDays(days []DaySummary) string {
	var b strings.Builder
	for _, day := range days {
		fmt.Fprintf(&b, "%s  (%dm)\n", day.Date, day.Total)
		for _, entry := range day.Entries {
			fmt.Fprintf(&b, "  %-12s  %3d  %s\n", entry.Project, entry.Minutes, entry.Comment)
		}

		projects := make([]string, 0, len(day.Subtotals))
		for project := range day.Subtotals {
			projects = append(projects, project)
		}
		sort.Strings(projects)
		for _, project := range projects {
			fmt.Fprintf(&b, "  %-12s  %3d total\n", project, day.Subtotals[project])
		}
		b.WriteString("\n")
	}
	return b.String()
}
