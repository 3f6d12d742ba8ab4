// Package stats derives dashboard summary figures and chart series from
// project rows.
package stats

import (
	"fmt"
	"math"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/gorm"
)

// Summary holds the headline figures shown on the projects overview.
type Summary struct {
	ProjectCount     int     `json:"project_count"`
	TotalBudget      float64 `json:"total_budget"`
	AvgProgress      int     `json:"avg_progress"`       // rounded mean, 0-100
	OnTimePercentage int     `json:"on_time_percentage"` // rounded, 0-100
}

// Summarize reduces project rows into a Summary. The second return value is
// false when there are no rows; callers must not display the zero Summary in
// that case (this is the empty-input guard that keeps NaN off the screen).
func Summarize(projects []models.Project) (Summary, bool) {
	if len(projects) == 0 {
		return Summary{}, false
	}

	var totalBudget float64
	var totalProgress, onTime int
	for _, p := range projects {
		totalBudget += p.Budget
		totalProgress += p.Progress
		if p.DelayDays == 0 {
			onTime++
		}
	}

	n := len(projects)
	return Summary{
		ProjectCount:     n,
		TotalBudget:      totalBudget,
		AvgProgress:      int(math.Round(float64(totalProgress) / float64(n))),
		OnTimePercentage: int(math.Round(100 * float64(onTime) / float64(n))),
	}, true
}

// StatusCount is one slice of the status pie chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusHistogram groups projects by status in the database. Statuses with
// no projects are included with a zero count so the chart legend is stable.
func StatusHistogram(db *gorm.DB) ([]StatusCount, error) {
	type row struct {
		Status string
		Count  int
	}
	var rows []row
	if err := db.Model(&models.Project{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("stats: status histogram: %w", err)
	}

	byStatus := make(map[string]int, len(rows))
	for _, r := range rows {
		byStatus[r.Status] = r.Count
	}

	result := make([]StatusCount, 0, len(models.ProjectStatuses))
	for _, status := range models.ProjectStatuses {
		result = append(result, StatusCount{Status: status, Count: byStatus[status]})
	}
	return result, nil
}

// PlaceholderSeries is a hand-coded chart series that does NOT derive from
// stored data. The admin dashboard renders it as a visual filler until real
// historical aggregation exists; the Placeholder flag is serialized so no
// client can mistake it for a computed series.
type PlaceholderSeries struct {
	Label       string    `json:"label"`
	Points      []float64 `json:"points"`
	Placeholder bool      `json:"placeholder"`
}

// ActivityTrend returns the fixed 7-point activity line for the overview
// chart.
func ActivityTrend() PlaceholderSeries {
	return PlaceholderSeries{
		Label:       "Activité hebdomadaire",
		Points:      []float64{12, 19, 14, 23, 17, 25, 21},
		Placeholder: true,
	}
}
