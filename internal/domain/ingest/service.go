package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobgraph/internal/domain"
	"github.com/honeycarbs/jobgraph/internal/normalize"
	"github.com/honeycarbs/jobgraph/internal/repository"
	"github.com/honeycarbs/jobgraph/pkg/logging"
)

// Service turns extraction records into idempotent graph merges.
type Service struct {
	repo   repository.IngestRepository
	logger *logging.Logger
	newID  func() string
}

// Option configures Service
type Option func(*Service)

// WithIDGenerator overrides how ids are generated for records without one.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// NewService creates an ingestion service
func NewService(repo repository.IngestRepository, logger *logging.Logger, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ingest.Service: repository is required")
	}

	s := &Service{
		repo:   repo,
		logger: logger,
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Ingest upserts one job record and all its attribute nodes and edges.
// Missing scalar fields are replaced by sentinels and logged, never
// rejected; only store errors fail the call. The merged job id is
// returned so callers learn generated ids.
func (s *Service) Ingest(ctx context.Context, rec domain.JobRecord) (string, error) {
	job := s.prepare(rec)

	if err := s.repo.UpsertJob(ctx, job); err != nil {
		return "", fmt.Errorf("ingest job %s: %w", job.ID, err)
	}

	if s.logger != nil {
		s.logger.Info("job merged",
			"job_id", job.ID,
			"title", job.Title,
			"skills", len(job.Skills),
			"tools", len(job.Tools),
		)
	}

	return job.ID, nil
}

// prepare applies the normalization and sentinel policy to a raw record.
func (s *Service) prepare(rec domain.JobRecord) repository.JobUpsert {
	job := repository.JobUpsert{
		ID:                 normalize.Clean(rec.JobID),
		Title:              s.scalarOr(rec.JobTitle, domain.UntitledRole, "job_title"),
		Company:            s.scalarOr(rec.Company, domain.UnknownCompany, "company"),
		Location:           s.scalarOr(rec.Location, domain.Unknown, "location"),
		EmploymentType:     s.scalarOr(rec.EmploymentType, domain.NotSpecified, "employment_type"),
		ExperienceRequired: s.scalarOr(rec.ExperienceRequired, domain.NotSpecified, "experience_required"),
		SalaryRange:        s.scalarOr(rec.SalaryRange, domain.NotSpecified, "salary_range"),
		Skills:             normalize.CleanList(rec.SkillsRequired),
		Tools:              normalize.CleanList(rec.Tools),
		Certifications:     normalize.CleanList(rec.Certifications),
		Education:          normalize.CleanList(rec.EducationRequired),
		Responsibilities:   normalize.CleanList(rec.Responsibilities),
	}

	if job.ID == "" {
		job.ID = s.newID()
	}

	return job
}

func (s *Service) scalarOr(value, sentinel, field string) string {
	value = normalize.Clean(value)
	if value != "" {
		return value
	}

	if s.logger != nil {
		s.logger.Debug("missing scalar field, using sentinel", "field", field, "sentinel", sentinel)
	}
	return sentinel
}
