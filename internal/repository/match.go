package repository

import (
	"context"

	"github.com/honeycarbs/jobgraph/internal/domain"
)

// MatchRepository reads the graph slices the skill-match engine needs.
type MatchRepository interface {
	// ResumeSkills returns the HAS_SKILL target names of a resume as
	// stored (possibly comma-joined values). Returns domain.ErrNotFound
	// when the resume id does not exist.
	ResumeSkills(ctx context.Context, resumeID string) ([]string, error)

	// CandidatesBySkills returns every job requiring at least one of
	// the given lower-cased skill tokens, aggregated per job: distinct
	// matched skill names, distinct total required skill count, and the
	// first company/location reachable from the job. Order is
	// unspecified; ranking happens in the match service.
	CandidatesBySkills(ctx context.Context, foldedSkills []string) ([]domain.MatchCandidate, error)
}
