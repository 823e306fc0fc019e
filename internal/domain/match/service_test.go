package match

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobgraph/internal/domain"
)

type fakeMatchRepo struct {
	skills     []string
	skillsErr  error
	candidates []domain.MatchCandidate
	candErr    error

	lastTokens []string
	candCalls  int
}

func (f *fakeMatchRepo) ResumeSkills(_ context.Context, resumeID string) ([]string, error) {
	if f.skillsErr != nil {
		return nil, f.skillsErr
	}
	return f.skills, nil
}

func (f *fakeMatchRepo) CandidatesBySkills(_ context.Context, foldedSkills []string) ([]domain.MatchCandidate, error) {
	f.candCalls++
	f.lastTokens = foldedSkills
	if f.candErr != nil {
		return nil, f.candErr
	}
	return f.candidates, nil
}

func newTestService(t *testing.T, repo *fakeMatchRepo) *Service {
	t.Helper()

	svc, err := NewService(repo, nil)
	require.NoError(t, err)
	return svc
}

func TestMatchEndToEndScenario(t *testing.T) {
	// Resume skills stored as one comma-joined value plus one plain
	// value. Job A requires {Python, SQL, Go}; Job B requires {Python}.
	repo := &fakeMatchRepo{
		skills: []string{"Python, SQL", "Docker"},
		candidates: []domain.MatchCandidate{
			{JobID: "b", Title: "Job B", Company: "Beta", MatchingSkills: []string{"Python"}, Overlap: 1, TotalRequired: 1},
			{JobID: "a", Title: "Job A", Company: "Alpha", MatchingSkills: []string{"Python", "SQL"}, Overlap: 2, TotalRequired: 3},
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.Match(context.Background(), "resume-1", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "sql", "docker"}, repo.lastTokens)

	require.Len(t, got, 2)
	// Overlap dominates coverage: Job A (2/3) outranks Job B (1/1).
	assert.Equal(t, "a", got[0].JobID)
	assert.Equal(t, 2, got[0].Overlap)
	assert.Equal(t, 3, got[0].TotalRequired)
	assert.InDelta(t, 0.6667, got[0].Coverage, 0.001)
	assert.Equal(t, 2, got[0].Score)

	assert.Equal(t, "b", got[1].JobID)
	assert.Equal(t, 1.0, got[1].Coverage)
	assert.Equal(t, 1, got[1].Score)
}

func TestMatchLimitZeroReturnsEmpty(t *testing.T) {
	repo := &fakeMatchRepo{skills: []string{"Go"}}
	svc := newTestService(t, repo)

	got, err := svc.Match(context.Background(), "resume-1", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, repo.candCalls)
}

func TestMatchNegativeLimitReturnsEmpty(t *testing.T) {
	repo := &fakeMatchRepo{skills: []string{"Go"}}
	svc := newTestService(t, repo)

	got, err := svc.Match(context.Background(), "resume-1", -3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMatchTruncatesToLimit(t *testing.T) {
	repo := &fakeMatchRepo{
		skills: []string{"Go"},
		candidates: []domain.MatchCandidate{
			{JobID: "a", Title: "A", Overlap: 3, TotalRequired: 3},
			{JobID: "b", Title: "B", Overlap: 2, TotalRequired: 2},
			{JobID: "c", Title: "C", Overlap: 1, TotalRequired: 1},
		},
	}
	svc := newTestService(t, repo)

	got, err := svc.Match(context.Background(), "resume-1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].JobID)
	assert.Equal(t, "b", got[1].JobID)
}

func TestMatchUnknownResume(t *testing.T) {
	repo := &fakeMatchRepo{
		skillsErr: fmt.Errorf("resume missing: %w", domain.ErrNotFound),
	}
	svc := newTestService(t, repo)

	_, err := svc.Match(context.Background(), "missing", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMatchNoResumeSkills(t *testing.T) {
	repo := &fakeMatchRepo{skills: []string{" ", ""}}
	svc := newTestService(t, repo)

	got, err := svc.Match(context.Background(), "resume-1", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, repo.candCalls)
}

func TestMatchIsDeterministic(t *testing.T) {
	repo := &fakeMatchRepo{
		skills: []string{"Go, Python"},
		candidates: []domain.MatchCandidate{
			{JobID: "c", Title: "Gamma", Overlap: 1, TotalRequired: 2},
			{JobID: "a", Title: "Alpha", Overlap: 1, TotalRequired: 2},
			{JobID: "b", Title: "Beta", Overlap: 1, TotalRequired: 2},
		},
	}
	svc := newTestService(t, repo)

	first, err := svc.Match(context.Background(), "resume-1", 5)
	require.NoError(t, err)
	second, err := svc.Match(context.Background(), "resume-1", 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRankTieBreaks(t *testing.T) {
	ranked := Rank([]domain.MatchCandidate{
		// Same overlap, lower coverage: ranks below both title peers.
		{JobID: "low", Title: "Aardvark", Overlap: 2, TotalRequired: 4},
		// Same overlap and coverage: titles break the tie.
		{JobID: "z", Title: "Zeta Role", Overlap: 2, TotalRequired: 3},
		{JobID: "b", Title: "Beta Role", Overlap: 2, TotalRequired: 3},
		// Higher overlap wins outright despite worst coverage.
		{JobID: "top", Title: "Omega", Overlap: 3, TotalRequired: 30},
	})

	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.JobID)
	}
	assert.Equal(t, []string{"top", "b", "z", "low"}, ids)
}

func TestRankCoverageZeroWhenNoRequiredSkills(t *testing.T) {
	ranked := Rank([]domain.MatchCandidate{
		{JobID: "a", Title: "A", Overlap: 0, TotalRequired: 0},
	})

	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].Coverage)
	assert.Equal(t, 0, ranked[0].Score)
}

func TestRankAppliesReadSentinels(t *testing.T) {
	ranked := Rank([]domain.MatchCandidate{
		{JobID: "a", Title: "A", Overlap: 1, TotalRequired: 1},
	})

	require.Len(t, ranked, 1)
	assert.Equal(t, domain.Unknown, ranked[0].Company)
	assert.Equal(t, domain.Unknown, ranked[0].Location)
	assert.Equal(t, domain.NotSpecified, ranked[0].EmploymentType)
}

func TestRankEqualRatiosCompareExactly(t *testing.T) {
	// Equal integer ratios divide to identical float64 values, so the
	// title decides without any epsilon comparison.
	ranked := Rank([]domain.MatchCandidate{
		{JobID: "second", Title: "B", Overlap: 2, TotalRequired: 4},
		{JobID: "first", Title: "A", Overlap: 2, TotalRequired: 4},
	})

	require.Len(t, ranked, 2)
	assert.Equal(t, "first", ranked[0].JobID)
	assert.Equal(t, "second", ranked[1].JobID)
}
