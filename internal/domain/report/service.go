package report

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"lostfound/internal/domain/notify"
	"lostfound/internal/domain/upload"
	"lostfound/internal/pkg/validator"
)

// Service orchestrates report creation: validation, file acceptance,
// persistence. Side effects are strictly ordered — validation first, then
// the file write, then the row insert. If the insert fails after the file
// was written, the file is removed (best effort) so no orphan stays behind.
type Service struct {
	repo Repository
	sink *upload.Sink
	hub  *notify.Hub

	// now is the server clock, swappable in tests.
	now func() time.Time
}

func NewService(repo Repository, sink *upload.Sink, hub *notify.Hub) *Service {
	return &Service{
		repo: repo,
		sink: sink,
		hub:  hub,
		now:  time.Now,
	}
}

// Create validates and persists a new report with an optional image file.
// Returns ErrMissingFields when a required field is empty, upload errors
// for a bad file, or a wrapped storage error.
func (s *Service) Create(ctx context.Context, req *SubmitReportRequest, file *multipart.FileHeader) (*Report, error) {
	trimSpace(req)
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrMissingFields
	}

	status := req.Status
	if status == "" {
		status = DefaultStatus
	}

	imagePath, err := s.sink.Accept(ctx, file)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Name:        req.Name,
		Course:      req.Course,
		Contact:     req.Contact,
		Category:    req.Category,
		Description: req.Description,
		Status:      status,
		Image:       sql.NullString{String: imagePath, Valid: imagePath != ""},
		Date:        s.now().Format("1/2/2006"),
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		if imagePath != "" {
			s.sink.Remove(imagePath)
		}
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast(&notify.Event{Type: notify.EventReportCreated, Payload: rep.ID})
	}

	return rep, nil
}

// List returns every report, newest first.
func (s *Service) List(ctx context.Context) ([]Report, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func trimSpace(req *SubmitReportRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Course = strings.TrimSpace(req.Course)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Category = strings.TrimSpace(req.Category)
	req.Description = strings.TrimSpace(req.Description)
	req.Status = strings.TrimSpace(req.Status)
}
