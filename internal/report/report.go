package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"telegram-time-tracker/internal/models"
)

const nothingDone = "Ничего не делалось."

// Rollup renders the end-of-day summary: entries grouped by case-folded
// label, minutes summed per label, each label's share of the day, sorted by
// total descending. A day with no entries (or only zero-length ones) reports
// a single "nothing done" line.
func Rollup(records []models.Record) string {
	byDate := make([]models.Record, len(records))
	copy(byDate, records)
	sort.Slice(byDate, func(i, j int) bool { return byDate[i].Date.Before(byDate[j].Date) })

	totals := map[string]int{}
	var order []string
	sum := 0

	for _, r := range byDate {
		name := strings.ToLower(r.Label)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += r.Duration
		sum += r.Duration
	}

	lines := []string{"Посмотрим на ваши результаты сегодня : "}
	if len(totals) == 0 || sum == 0 {
		lines = append(lines, nothingDone)
		return strings.Join(lines, "\n")
	}

	sort.SliceStable(order, func(i, j int) bool { return totals[order[i]] > totals[order[j]] })

	for idx, name := range order {
		minutes := totals[name]
		percent := float64(minutes) / float64(sum) * 100
		lines = append(lines, fmt.Sprintf("%d. %s (%d : %s %%)", idx+1, name, minutes, formatPercent(percent)))
	}
	return strings.Join(lines, "\n")
}

// TaskList renders the distinct case-folded task names of a day in the order
// they first appeared.
func TaskList(records []models.Record) string {
	byDate := make([]models.Record, len(records))
	copy(byDate, records)
	sort.Slice(byDate, func(i, j int) bool { return byDate[i].Date.Before(byDate[j].Date) })

	var tasks []string
	seen := map[string]bool{}
	for _, r := range byDate {
		name := strings.ToLower(r.Label)
		if !seen[name] {
			seen[name] = true
			tasks = append(tasks, name)
		}
	}

	lines := []string{"Список задач : "}
	if len(tasks) == 0 {
		lines = append(lines, nothingDone)
	}
	for idx, name := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", idx+1, name))
	}
	return strings.Join(lines, "\n")
}

// formatPercent keeps at most two decimals and drops trailing zeros.
func formatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
