package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog/internal/domain"
)

func TestRender(t *testing.T) {
	totals := map[string]int{
		"proj":  45,
		"other": 60,
	}
	rates := domain.RateTable{
		"proj": {Hourly: 100},
	}

	out := Render(totals, rates)

	expected := strings.Join([]string{
		"Project | Time | Hours | $$$.$$ CUR",
		"       other      60     1.0h |         -",
		"        proj      45     0.8h |     75.00 USD",
		"",
		"      TOTALS      60     1.0h |         -",
		"      TOTALS      45     0.8h |     75.00 USD",
		"",
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestRender_MultipleCurrencies(t *testing.T) {
	totals := map[string]int{
		"acme":   120,
		"corp":   60,
		"beta":   30,
		"nobill": 90,
	}
	rates := domain.RateTable{
		"acme": {Hourly: 85, Currency: "EUR"},
		"beta": {Hourly: 90, Currency: "EUR"},
		"corp": {Hourly: 100, Currency: "USD"},
	}

	out := Render(totals, rates)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, four project rows, a blank separator, then one TOTALS row per
	// currency bucket in sorted order: no-rate, EUR, USD.
	require.Len(t, lines, 9)
	assert.Equal(t, Header, lines[0])
	assert.Contains(t, lines[1], "acme")
	assert.Contains(t, lines[1], "170.00 EUR")
	assert.Contains(t, lines[2], "beta")
	assert.Contains(t, lines[2], "45.00 EUR")
	assert.Contains(t, lines[3], "corp")
	assert.Contains(t, lines[3], "100.00 USD")
	assert.Contains(t, lines[4], "nobill")
	assert.True(t, strings.HasSuffix(lines[4], "-"))

	assert.Equal(t, "", lines[5])
	assert.Contains(t, lines[6], "TOTALS")
	assert.True(t, strings.HasSuffix(lines[6], "-"))
	assert.Contains(t, lines[7], "215.00 EUR")
	assert.Contains(t, lines[8], "100.00 USD")
}

func TestRender_Empty(t *testing.T) {
	out := Render(map[string]int{}, domain.RateTable{})

	assert.Contains(t, out, Header)
	assert.NotContains(t, out, "TOTALS")
}

func TestRenderDays(t *testing.T) {
	days := []DaySummary{
		{
			Date: "2024-01-05",
			Entries: []domain.LogEntry{
				{Date: "2024-01-05", Project: "proj", Minutes: 30, Comment: "morning"},
				{Date: "2024-01-05", Project: "proj", Minutes: 15, Comment: "afternoon"},
			},
			Subtotals: map[string]int{"proj": 45},
			Total:     45,
		},
	}

	out := RenderDays(days)

	assert.Contains(t, out, "2024-01-05  (45m)")
	assert.Contains(t, out, "morning")
	assert.Contains(t, out, "afternoon")
	assert.Contains(t, out, "45 total")
}
