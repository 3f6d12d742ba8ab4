package store

import (
	"errors"
	"testing"
)

func TestCreateProject_ThenListContainsRowOnce(t *testing.T) {
	db := testDB(t)

	p, err := CreateProject(db, ProjectOpts{
		Name:   "Tour X",
		Budget: 100000,
		Status: "Planification",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected server-assigned ID")
	}
	if p.Progress != 0 {
		t.Errorf("Progress = %d, want 0", p.Progress)
	}

	projects, err := ListProjects(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := 0
	for _, row := range projects {
		if row.ID == p.ID {
			found++
		}
	}
	if found != 1 {
		t.Errorf("new project appears %d times in list, want exactly 1", found)
	}
}

func TestCreateProject_Validation(t *testing.T) {
	db := testDB(t)

	tests := []struct {
		name string
		opts ProjectOpts
	}{
		{"missing name", ProjectOpts{Budget: 1000}},
		{"zero budget", ProjectOpts{Name: "P", Budget: 0}},
		{"negative budget", ProjectOpts{Name: "P", Budget: -5}},
		{"progress over 100", ProjectOpts{Name: "P", Budget: 1000, Progress: 101}},
		{"negative progress", ProjectOpts{Name: "P", Budget: 1000, Progress: -1}},
		{"unknown status", ProjectOpts{Name: "P", Budget: 1000, Status: "Fini"}},
		{"negative team size", ProjectOpts{Name: "P", Budget: 1000, TeamSize: -3}},
		{"negative delay", ProjectOpts{Name: "P", Budget: 1000, DelayDays: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateProject(db, tt.opts)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}

	// Nothing should have been written.
	projects, err := ListProjects(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("len(projects) = %d, want 0 after failed creates", len(projects))
	}
}

func TestCreateProject_DefaultStatus(t *testing.T) {
	db := testDB(t)
	p, err := CreateProject(db, ProjectOpts{Name: "P", Budget: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != "Planification" {
		t.Errorf("Status = %q, want Planification", p.Status)
	}
}

func TestUpdateProject_Patch(t *testing.T) {
	db := testDB(t)
	p := createTestProject(t, db)

	status := "En cours"
	progress := 30
	updated, err := UpdateProject(db, p.ID, ProjectPatch{Status: &status, Progress: &progress})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "En cours" {
		t.Errorf("Status = %q, want En cours", updated.Status)
	}
	if updated.Progress != 30 {
		t.Errorf("Progress = %d, want 30", updated.Progress)
	}
	// Untouched fields survive the patch.
	if updated.Name != "Tour X" {
		t.Errorf("Name = %q, want Tour X", updated.Name)
	}
	if updated.Budget != 100000 {
		t.Errorf("Budget = %v, want 100000", updated.Budget)
	}
}

func TestUpdateProject_RejectsInvalidPatch(t *testing.T) {
	db := testDB(t)
	p := createTestProject(t, db)

	badBudget := -1.0
	if _, err := UpdateProject(db, p.ID, ProjectPatch{Budget: &badBudget}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative budget: error = %v, want ErrValidation", err)
	}

	badProgress := 150
	if _, err := UpdateProject(db, p.ID, ProjectPatch{Progress: &badProgress}); !errors.Is(err, ErrValidation) {
		t.Errorf("progress 150: error = %v, want ErrValidation", err)
	}
}

func TestUpdateProject_LastWriteWins(t *testing.T) {
	db := testDB(t)
	p := createTestProject(t, db)

	first := "Chantier A"
	second := "Chantier B"
	if _, err := UpdateProject(db, p.ID, ProjectPatch{Name: &first}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := UpdateProject(db, p.ID, ProjectPatch{Name: &second}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := GetProject(db, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Chantier B" {
		t.Errorf("Name = %q, want the later write to win", got.Name)
	}
}

func TestDeleteProject(t *testing.T) {
	db := testDB(t)
	p := createTestProject(t, db)

	if err := DeleteProject(db, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := GetProject(db, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: error = %v, want ErrNotFound", err)
	}
	if err := DeleteProject(db, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete: error = %v, want ErrNotFound", err)
	}
}
