package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dwahderian-ui/uniform/internal/dto"
	"github.com/dwahderian-ui/uniform/internal/model"
)

func setupTestRequestService() (*requestService, *mockRequestRepo) {
	requestRepo := newMockRequestRepo()
	repo := newMockRepository(newMockIdentityRepo(), requestRepo)

	svc := NewRequestService(repo, zap.NewNop()).(*requestService)
	return svc, requestRepo
}

func submitTestRequest(t *testing.T, svc *requestService, student, course, examDate string) string {
	t.Helper()
	result, err := svc.Submit(context.Background(), &dto.SubmitRequest{
		StudentName: student,
		CourseName:  course,
		ExamDate:    examDate,
	}, "order.pdf")
	if err != nil {
		t.Fatalf("Submit(%s, %s, %s) failed: %v", student, course, examDate, err)
	}
	return result.ID
}

// ── submit ──

func TestSubmit_Success(t *testing.T) {
	svc, _ := setupTestRequestService()

	result, err := svc.Submit(context.Background(), &dto.SubmitRequest{
		StudentName: "Dana",
		CourseName:  "Algebra",
		ExamDate:    "2025-01-01",
	}, "order.pdf")

	if err != nil {
		t.Fatalf("Submit should succeed, got error: %v", err)
	}
	if result.ID == "" {
		t.Error("submit should return the generated id")
	}
	if result.Status != "pending" {
		t.Errorf("new requests must start pending, got %s", result.Status)
	}
}

func TestSubmit_MalformedDate(t *testing.T) {
	svc, _ := setupTestRequestService()

	for _, date := range []string{"01-01-2025", "2025/01/01", "not-a-date", "2025-13-40", ""} {
		_, err := svc.Submit(context.Background(), &dto.SubmitRequest{
			StudentName: "Dana",
			CourseName:  "Algebra",
			ExamDate:    date,
		}, "order.pdf")
		if !errors.Is(err, ErrMalformedDate) {
			t.Errorf("date %q: expected ErrMalformedDate, got: %v", date, err)
		}
	}
}

func TestSubmit_EmptyFields(t *testing.T) {
	svc, _ := setupTestRequestService()

	cases := []struct{ student, course string }{
		{"", "Algebra"},
		{"Dana", ""},
		{"   ", "Algebra"},
	}
	for _, tc := range cases {
		_, err := svc.Submit(context.Background(), &dto.SubmitRequest{
			StudentName: tc.student,
			CourseName:  tc.course,
			ExamDate:    "2025-01-01",
		}, "order.pdf")
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("(%q, %q): expected ErrMissingField, got: %v", tc.student, tc.course, err)
		}
	}
}

func TestSubmit_ThenListIncludesRecord(t *testing.T) {
	svc, _ := setupTestRequestService()
	id := submitTestRequest(t, svc, "Dana", "Algebra", "2025-01-01")

	list, err := svc.ListPrioritized(context.Background())
	if err != nil {
		t.Fatalf("ListPrioritized failed: %v", err)
	}

	var found int
	for _, r := range list {
		if r.ID == id {
			found++
			if r.Status != "pending" {
				t.Errorf("expected status=pending, got %s", r.Status)
			}
		}
	}
	if found != 1 {
		t.Errorf("expected exactly one record with id %s, found %d", id, found)
	}
}

func TestSubmit_ExamDateRoundTrip(t *testing.T) {
	svc, _ := setupTestRequestService()
	id := submitTestRequest(t, svc, "Dana", "Algebra", "2025-03-01")

	got, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ExamDate != "2025-03-01" {
		t.Errorf("exam date must round-trip without drift, got %s", got.ExamDate)
	}
}

// ── prioritized listing ──

func TestListPrioritized_SortedByExamDate(t *testing.T) {
	svc, _ := setupTestRequestService()
	submitTestRequest(t, svc, "Dana", "Algebra", "2031-06-15")
	submitTestRequest(t, svc, "Yoav", "Calculus", "2031-01-02")
	submitTestRequest(t, svc, "Noa", "Physics", "2031-03-20")

	list, err := svc.ListPrioritized(context.Background())
	if err != nil {
		t.Fatalf("ListPrioritized failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 records, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ExamDate > list[i].ExamDate {
			t.Errorf("listing not sorted: %s before %s", list[i-1].ExamDate, list[i].ExamDate)
		}
	}
}

func TestListPrioritized_CappedAt100(t *testing.T) {
	svc, requestRepo := setupTestRequestService()

	base := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		_ = requestRepo.Create(context.Background(), &model.TutoringRequest{
			StudentName: "Student",
			CourseName:  "Course",
			ExamDate:    base.AddDate(0, 0, i),
			Status:      model.StatusPending,
		})
	}

	list, err := svc.ListPrioritized(context.Background())
	if err != nil {
		t.Fatalf("ListPrioritized failed: %v", err)
	}
	if len(list) != 100 {
		t.Errorf("expected listing capped at 100, got %d", len(list))
	}
}

func TestListPrioritized_UrgencyBoundary(t *testing.T) {
	svc, requestRepo := setupTestRequestService()

	now := time.Date(2031, 5, 1, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	cases := []struct {
		examDate time.Time
		urgent   bool
	}{
		{now.AddDate(0, 0, 1), true},                       // tomorrow
		{now.Add(model.UrgencyWindow), true},               // exactly 14 days out, boundary inclusive
		{now.Add(model.UrgencyWindow + time.Hour), false},  // just past the window
		{now.AddDate(0, 0, 30), false},                     // a month out
		{now.AddDate(0, 0, -1), true},                      // already past, still flagged
	}

	for _, tc := range cases {
		req := &model.TutoringRequest{
			StudentName: "Dana",
			CourseName:  "Algebra",
			ExamDate:    tc.examDate,
			Status:      model.StatusPending,
		}
		_ = requestRepo.Create(context.Background(), req)

		list, err := svc.ListPrioritized(context.Background())
		if err != nil {
			t.Fatalf("ListPrioritized failed: %v", err)
		}
		var got *dto.RequestResponse
		for i := range list {
			if list[i].ID == req.RequestID {
				got = &list[i]
			}
		}
		if got == nil {
			t.Fatalf("record %s missing from listing", req.RequestID)
		}
		if got.IsUrgent != tc.urgent {
			t.Errorf("exam %v: expected is_urgent=%v, got %v", tc.examDate, tc.urgent, got.IsUrgent)
		}
	}
}

// ── status update ──

func TestUpdateStatus_Success(t *testing.T) {
	svc, requestRepo := setupTestRequestService()
	id := submitTestRequest(t, svc, "Dana", "Algebra", "2025-01-01")

	time.Sleep(5 * time.Millisecond)

	result, err := svc.UpdateStatus(context.Background(), id, &dto.UpdateStatusRequest{
		NewStatus: "approved",
	})
	if err != nil {
		t.Fatalf("UpdateStatus should succeed, got error: %v", err)
	}
	if result.NewStatus != "approved" {
		t.Errorf("expected new_status=approved, got %s", result.NewStatus)
	}

	got, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != "approved" {
		t.Errorf("expected status=approved after update, got %s", got.Status)
	}

	stored := requestRepo.requests[id]
	if !stored.UpdatedAt.After(stored.CreatedAt) {
		t.Errorf("updated_at (%v) should be after created_at (%v)", stored.UpdatedAt, stored.CreatedAt)
	}
}

func TestUpdateStatus_ApprovedBackToPending(t *testing.T) {
	svc, _ := setupTestRequestService()
	id := submitTestRequest(t, svc, "Dana", "Algebra", "2025-01-01")

	if _, err := svc.UpdateStatus(context.Background(), id, &dto.UpdateStatusRequest{NewStatus: "approved"}); err != nil {
		t.Fatalf("UpdateStatus(approved) failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), id, &dto.UpdateStatusRequest{NewStatus: "pending"}); err != nil {
		t.Errorf("transitions between known states are unrestricted, got: %v", err)
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := setupTestRequestService()
	id := submitTestRequest(t, svc, "Dana", "Algebra", "2025-01-01")

	_, err := svc.UpdateStatus(context.Background(), id, &dto.UpdateStatusRequest{
		NewStatus: "aproved", // typo must not be stored
	})
	if !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got: %v", err)
	}

	got, _ := svc.GetByID(context.Background(), id)
	if got.Status != "pending" {
		t.Errorf("rejected update must leave status untouched, got %s", got.Status)
	}
}

func TestUpdateStatus_MalformedID(t *testing.T) {
	svc, _ := setupTestRequestService()

	_, err := svc.UpdateStatus(context.Background(), "definitely-not-a-uuid", &dto.UpdateStatusRequest{
		NewStatus: "approved",
	})
	if !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("malformed id must read as not found, got: %v", err)
	}
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	svc, _ := setupTestRequestService()

	_, err := svc.UpdateStatus(context.Background(), "3f9f6c2e-9a20-4b5e-8f11-0d6f1c2a7b31", &dto.UpdateStatusRequest{
		NewStatus: "approved",
	})
	if !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got: %v", err)
	}
}

// ── full scenario ──

func TestScenario_SubmitApproveAndList(t *testing.T) {
	svc, _ := setupTestRequestService()
	svc.now = func() time.Time { return time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC) }

	id := submitTestRequest(t, svc, "Dana", "Algebra", "2025-01-01")

	if _, err := svc.UpdateStatus(context.Background(), id, &dto.UpdateStatusRequest{NewStatus: "approved"}); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	list, err := svc.ListPrioritized(context.Background())
	if err != nil {
		t.Fatalf("ListPrioritized failed: %v", err)
	}

	for _, r := range list {
		if r.ID == id {
			if r.Status != "approved" {
				t.Errorf("dashboard should show status=approved, got %s", r.Status)
			}
			if !r.IsUrgent {
				t.Error("exam 12 days out should be flagged urgent")
			}
			return
		}
	}
	t.Errorf("record %s missing from dashboard", id)
}
