package services

import (
	"errors"
	"testing"
	"time"

	"github.com/visiplus/taskboard/internal/models"
	"gorm.io/gorm"
)

func seedTask(t *testing.T, db *gorm.DB, name string, projectID uint, userID uint) *models.Task {
	t.Helper()
	svc := NewTaskService(db)
	task := &models.Task{
		Name:        name,
		Description: "initial description",
		RequesterID: userID,
		AssigneeID:  userID,
		ProjectID:   &projectID,
	}
	if err := svc.Create(task); err != nil {
		t.Fatalf("failed to seed task %s: %v", name, err)
	}
	return task
}

func TestTaskCreate_Defaults(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "erin", true)
	project := createTestProject(t, db, "Apollo", user.ID)

	task := seedTask(t, db, "write briefing", project.ID, user.ID)

	if task.Status != models.StatusTodo {
		t.Errorf("expected status %q, got %q", models.StatusTodo, task.Status)
	}
	if task.StartDate.IsZero() {
		t.Error("expected a default start date")
	}
}

func TestTaskFindByProjectAndName(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "frank", true)
	p1 := createTestProject(t, db, "Apollo", user.ID)
	p2 := createTestProject(t, db, "Gemini", user.ID)

	seedTask(t, db, "kickoff", p1.ID, user.ID)

	svc := NewTaskService(db)
	if _, err := svc.FindByProjectAndName(p1.ID, "kickoff"); err != nil {
		t.Errorf("expected the task in its own project: %v", err)
	}

	// Same name in another project is free
	if _, err := svc.FindByProjectAndName(p2.ID, "kickoff"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected not-found in the other project, got %v", err)
	}
}

func TestTaskUpdatePartial_MergesOnlyProvidedFields(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "grace", true)
	project := createTestProject(t, db, "Apollo", user.ID)
	task := seedTask(t, db, "design doc", project.ID, user.ID)

	svc := NewTaskService(db)
	newStatus := "DONE"
	updated, err := svc.UpdatePartial(task, &TaskUpdateRequest{
		ID:     task.ID,
		Status: &newStatus,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Status != "DONE" {
		t.Errorf("expected status DONE, got %q", updated.Status)
	}
	if updated.Name != "design doc" {
		t.Errorf("name should be untouched, got %q", updated.Name)
	}
	if updated.Description != "initial description" {
		t.Errorf("description should be untouched, got %q", updated.Description)
	}
	if updated.RequesterID != user.ID || updated.AssigneeID != user.ID {
		t.Error("requester and assignee should be untouched")
	}
}

func TestTaskUpdatePartial_AllNilIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "heidi", true)
	project := createTestProject(t, db, "Apollo", user.ID)
	task := seedTask(t, db, "triage", project.ID, user.ID)

	before := *task
	svc := NewTaskService(db)
	updated, err := svc.UpdatePartial(task, &TaskUpdateRequest{ID: task.ID})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Name != before.Name || updated.Status != before.Status ||
		updated.Description != before.Description {
		t.Error("an empty update must leave the task unchanged")
	}
}

func TestTaskUpdatePartial_UnknownReferenceFails(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "ivan", true)
	project := createTestProject(t, db, "Apollo", user.ID)
	task := seedTask(t, db, "review", project.ID, user.ID)

	svc := NewTaskService(db)
	ghost := uint(99999)
	if _, err := svc.UpdatePartial(task, &TaskUpdateRequest{ID: task.ID, AssigneeID: &ghost}); err == nil {
		t.Error("expected an error for an unknown assignee")
	}
	if _, err := svc.UpdatePartial(task, &TaskUpdateRequest{ID: task.ID, ProjectID: &ghost}); err == nil {
		t.Error("expected an error for an unknown project")
	}
}

func TestTaskUpdatePartial_UnknownPriorityFallsBack(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "judy", true)
	project := createTestProject(t, db, "Apollo", user.ID)
	task := seedTask(t, db, "estimate", project.ID, user.ID)

	var medium models.Priority
	if err := db.Where("name = ?", models.PriorityMedium).First(&medium).Error; err != nil {
		t.Fatalf("seeded priority missing: %v", err)
	}

	svc := NewTaskService(db)
	ghost := uint(99999)
	updated, err := svc.UpdatePartial(task, &TaskUpdateRequest{ID: task.ID, PriorityID: &ghost})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.PriorityID == nil || *updated.PriorityID != medium.ID {
		t.Errorf("expected fallback to the %s priority", models.PriorityMedium)
	}
}

func TestTaskUpdatePartial_DatesAndEndDate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "karl", true)
	project := createTestProject(t, db, "Apollo", user.ID)
	task := seedTask(t, db, "ship", project.ID, user.ID)

	svc := NewTaskService(db)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)
	updated, err := svc.UpdatePartial(task, &TaskUpdateRequest{
		ID:        task.ID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if !updated.StartDate.Equal(start) {
		t.Errorf("expected start date %v, got %v", start, updated.StartDate)
	}
	if updated.EndDate == nil || !updated.EndDate.Equal(end) {
		t.Errorf("expected end date %v, got %v", end, updated.EndDate)
	}
}

func TestTaskDelete_ReportsExistence(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "liam", true)
	project := createTestProject(t, db, "Apollo", user.ID)
	task := seedTask(t, db, "cleanup", project.ID, user.ID)

	svc := NewTaskService(db)
	deleted, err := svc.Delete(task.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected true for an existing task")
	}

	deleted, err = svc.Delete(task.ID)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if deleted {
		t.Error("expected false for an already deleted task")
	}
}
