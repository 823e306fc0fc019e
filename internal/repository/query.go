package repository

import (
	"context"

	"github.com/honeycarbs/jobgraph/internal/domain"
)

// QueryRepository is the read-only facade consumed by external callers.
type QueryRepository interface {
	// ListJobs returns up to limit jobs with their location and type.
	ListJobs(ctx context.Context, limit int) ([]domain.JobSummary, error)

	// SearchBySkill finds jobs requiring a skill whose name contains the
	// given text, case-insensitively. Returns domain.ErrNotFound when no
	// job matches.
	SearchBySkill(ctx context.Context, skill string) ([]domain.SkillJobMatch, error)

	// JobDetail returns the distinct skills and tools of the first job
	// whose title contains the given text, case-insensitively. Returns
	// domain.ErrNotFound when no job matches.
	JobDetail(ctx context.Context, title string) (domain.JobDetail, error)

	// ListResumes returns up to limit stored resumes.
	ListResumes(ctx context.Context, limit int) ([]domain.ResumeSummary, error)
}
