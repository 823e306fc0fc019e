package match

import (
	"context"
	"fmt"
	"sort"

	"github.com/honeycarbs/jobgraph/internal/domain"
	"github.com/honeycarbs/jobgraph/internal/normalize"
	"github.com/honeycarbs/jobgraph/internal/repository"
	"github.com/honeycarbs/jobgraph/pkg/logging"
)

// Service ranks jobs against a resume by skill overlap. It holds no
// mutable state and is safe for concurrent use; each call is recomputed
// from the current graph.
type Service struct {
	repo   repository.MatchRepository
	logger *logging.Logger
}

// NewService creates a match service
func NewService(repo repository.MatchRepository, logger *logging.Logger) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("match.Service: repository is required")
	}

	return &Service{repo: repo, logger: logger}, nil
}

// Match returns the top jobs for a resume, ordered by skill overlap
// descending, coverage descending, then title ascending. A limit of zero
// or less yields an empty result. An unknown resume id yields
// domain.ErrNotFound.
func (s *Service) Match(ctx context.Context, resumeID string, limit int) ([]domain.ScoredJob, error) {
	stored, err := s.repo.ResumeSkills(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		return []domain.ScoredJob{}, nil
	}

	tokens := normalize.SplitSkills(stored)
	if len(tokens) == 0 {
		return []domain.ScoredJob{}, nil
	}

	candidates, err := s.repo.CandidatesBySkills(ctx, normalize.FoldSet(tokens))
	if err != nil {
		return nil, fmt.Errorf("match resume %s: %w", resumeID, err)
	}

	ranked := Rank(candidates)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if s.logger != nil {
		s.logger.Info("match computed",
			"resume_id", resumeID,
			"resume_skills", len(tokens),
			"candidates", len(candidates),
			"returned", len(ranked),
		)
	}

	return ranked, nil
}

// Rank scores and orders candidates. Coverage is overlap over the job's
// total required skill count, 0.0 when a job requires none. Ties are
// broken exactly by the next sort key, never by floating slop: equal
// integer ratios divide to identical float64 values.
func Rank(candidates []domain.MatchCandidate) []domain.ScoredJob {
	scored := make([]domain.ScoredJob, 0, len(candidates))
	for _, c := range candidates {
		coverage := 0.0
		if c.TotalRequired > 0 {
			coverage = float64(c.Overlap) / float64(c.TotalRequired)
		}

		scored = append(scored, domain.ScoredJob{
			JobID:          c.JobID,
			Title:          c.Title,
			Company:        orUnknown(c.Company),
			Location:       orUnknown(c.Location),
			EmploymentType: orNotSpecified(c.EmploymentType),
			MatchingSkills: c.MatchingSkills,
			Overlap:        c.Overlap,
			TotalRequired:  c.TotalRequired,
			Coverage:       coverage,
			Score:          c.Overlap,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Overlap != b.Overlap {
			return a.Overlap > b.Overlap
		}
		if a.Coverage != b.Coverage {
			return a.Coverage > b.Coverage
		}
		return a.Title < b.Title
	})

	return scored
}

func orUnknown(v string) string {
	if v == "" {
		return domain.Unknown
	}
	return v
}

func orNotSpecified(v string) string {
	if v == "" {
		return domain.NotSpecified
	}
	return v
}
