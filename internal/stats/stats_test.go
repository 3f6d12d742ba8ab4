package stats

import (
	"testing"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSummarize_EmptyInputGuard(t *testing.T) {
	s, ok := Summarize(nil)
	if ok {
		t.Error("ok = true for empty input, want false")
	}
	if s != (Summary{}) {
		t.Errorf("summary = %+v, want zero value", s)
	}

	_, ok = Summarize([]models.Project{})
	if ok {
		t.Error("ok = true for empty slice, want false")
	}
}

func TestSummarize_Figures(t *testing.T) {
	projects := []models.Project{
		{Budget: 100000, Progress: 10, DelayDays: 0},
		{Budget: 250000, Progress: 45, DelayDays: 12},
		{Budget: 50000, Progress: 80, DelayDays: 0},
	}

	s, ok := Summarize(projects)
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if s.ProjectCount != 3 {
		t.Errorf("ProjectCount = %d, want 3", s.ProjectCount)
	}
	if s.TotalBudget != 400000 {
		t.Errorf("TotalBudget = %v, want 400000", s.TotalBudget)
	}
	// mean(10, 45, 80) = 45
	if s.AvgProgress != 45 {
		t.Errorf("AvgProgress = %d, want 45", s.AvgProgress)
	}
	// 2 of 3 on time → 66.67 → 67
	if s.OnTimePercentage != 67 {
		t.Errorf("OnTimePercentage = %d, want 67", s.OnTimePercentage)
	}
}

func TestSummarize_Rounding(t *testing.T) {
	tests := []struct {
		name         string
		progress     []int
		wantProgress int
	}{
		{"rounds down", []int{10, 11}, 11}, // 10.5 rounds half away from zero → 11
		{"exact mean", []int{20, 40}, 30},
		{"rounds up", []int{33, 34, 34}, 34}, // 33.67 → 34
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var projects []models.Project
			for _, p := range tt.progress {
				projects = append(projects, models.Project{Budget: 1, Progress: p})
			}
			s, ok := Summarize(projects)
			if !ok {
				t.Fatal("ok = false")
			}
			if s.AvgProgress != tt.wantProgress {
				t.Errorf("AvgProgress = %d, want %d", s.AvgProgress, tt.wantProgress)
			}
		})
	}
}

func TestSummarize_BoundsInvariant(t *testing.T) {
	projects := []models.Project{
		{Budget: 1, Progress: 0, DelayDays: 5},
		{Budget: 1, Progress: 100, DelayDays: 0},
	}
	s, ok := Summarize(projects)
	if !ok {
		t.Fatal("ok = false")
	}
	if s.AvgProgress < 0 || s.AvgProgress > 100 {
		t.Errorf("AvgProgress = %d, want within [0,100]", s.AvgProgress)
	}
	if s.OnTimePercentage < 0 || s.OnTimePercentage > 100 {
		t.Errorf("OnTimePercentage = %d, want within [0,100]", s.OnTimePercentage)
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestStatusHistogram(t *testing.T) {
	db := testDB(t)
	seed := []models.Project{
		{Name: "A", Budget: 1, Status: "En cours"},
		{Name: "B", Budget: 1, Status: "En cours"},
		{Name: "C", Budget: 1, Status: "Terminé"},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	hist, err := StatusHistogram(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hist) != len(models.ProjectStatuses) {
		t.Fatalf("len(hist) = %d, want one bucket per status", len(hist))
	}

	counts := make(map[string]int)
	for _, h := range hist {
		counts[h.Status] = h.Count
	}
	if counts["En cours"] != 2 {
		t.Errorf("En cours = %d, want 2", counts["En cours"])
	}
	if counts["Terminé"] != 1 {
		t.Errorf("Terminé = %d, want 1", counts["Terminé"])
	}
	if counts["Annulé"] != 0 {
		t.Errorf("Annulé = %d, want 0 bucket present", counts["Annulé"])
	}
}

func TestActivityTrend_IsPlaceholder(t *testing.T) {
	trend := ActivityTrend()
	if !trend.Placeholder {
		t.Error("Placeholder = false; the fixed series must be flagged")
	}
	if len(trend.Points) != 7 {
		t.Errorf("len(Points) = %d, want 7", len(trend.Points))
	}
}
