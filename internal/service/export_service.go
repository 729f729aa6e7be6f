package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dwahderian-ui/uniform/internal/repository"
)

// ── export errors ──

var ErrExportNoRequests = errors.New("no requests to export")

// ExportService renders the prioritized dashboard as downloadable files.
//
// Two formats:
//   - Excel workbook with one row per request, urgency flagged
//   - iCalendar feed with one all-day event per exam date
//
// Both operate on the same capped, exam-date-ordered listing the dashboard
// shows, so what the secretary exports is what the secretary sees.
type ExportService interface {
	// ExportRequests returns the dashboard as an .xlsx workbook.
	ExportRequests(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportCalendar returns upcoming exams as an .ics feed.
	ExportCalendar(ctx context.Context) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *exportService) ExportRequests(ctx context.Context) (*bytes.Buffer, string, error) {
	requests, err := s.repo.Request.ListByExamDate(ctx, dashboardLimit)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, "", err
	}
	if len(requests) == 0 {
		return nil, "", ErrExportNoRequests
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Requests"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student", "Course", "Exam Date", "Status", "Document", "Urgent", "Submitted"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	now := s.now()
	for row, req := range requests {
		urgent := ""
		if req.IsUrgent(now) {
			urgent = "URGENT"
		}
		values := []interface{}{
			req.StudentName,
			req.CourseName,
			req.ExamDate.Format(examDateLayout),
			string(req.Status),
			req.FileName,
			urgent,
			req.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("tutoring_requests_%s.xlsx", now.Format("20060102"))
	return buf, filename, nil
}

func (s *exportService) ExportCalendar(ctx context.Context) ([]byte, string, error) {
	requests, err := s.repo.Request.ListByExamDate(ctx, dashboardLimit)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, "", err
	}
	if len(requests) == 0 {
		return nil, "", ErrExportNoRequests
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//uni-form//tutoring requests//EN")

	now := s.now()
	for i := range requests {
		req := &requests[i]

		event := cal.AddEvent(req.RequestID + "@uni-form")
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(req.ExamDate)
		event.SetAllDayEndAt(req.ExamDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s exam (%s)", req.CourseName, req.StudentName))
		event.SetDescription(fmt.Sprintf("Tutoring request %s (%s)", req.RequestID, req.Status))
	}

	filename := fmt.Sprintf("exam_calendar_%s.ics", now.Format("20060102"))
	return []byte(cal.Serialize()), filename, nil
}
