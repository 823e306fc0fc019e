package tools

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobgraph/internal/domain"
)

type fakeMatcher struct {
	matches   []domain.ScoredJob
	err       error
	lastLimit int
}

func (f *fakeMatcher) Match(_ context.Context, resumeID string, limit int) ([]domain.ScoredJob, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

func TestMatchJobsDefaultLimit(t *testing.T) {
	matcher := &fakeMatcher{matches: []domain.ScoredJob{{JobID: "a", Title: "A"}}}
	handler := matchJobsTool{service: matcher}

	_, structured, err := handler.handle(context.Background(), nil, &MatchJobsParams{ResumeID: "r1"})
	require.NoError(t, err)
	assert.Equal(t, defaultMatchLimit, matcher.lastLimit)

	result, ok := structured.(MatchJobsResult)
	require.True(t, ok)
	assert.Equal(t, "r1", result.ResumeID)
	require.Len(t, result.Matches, 1)
}

func TestMatchJobsRequiresResumeID(t *testing.T) {
	handler := matchJobsTool{service: &fakeMatcher{}}

	_, _, err := handler.handle(context.Background(), nil, &MatchJobsParams{})
	require.Error(t, err)
}

func TestMatchJobsUnknownResumeYieldsEmptyResult(t *testing.T) {
	matcher := &fakeMatcher{err: fmt.Errorf("resume: %w", domain.ErrNotFound)}
	handler := matchJobsTool{service: matcher}

	_, structured, err := handler.handle(context.Background(), nil, &MatchJobsParams{ResumeID: "missing"})
	require.NoError(t, err)

	result, ok := structured.(MatchJobsResult)
	require.True(t, ok)
	assert.Empty(t, result.Matches)
}

func TestMatchJobsPropagatesStoreError(t *testing.T) {
	matcher := &fakeMatcher{err: fmt.Errorf("connection reset")}
	handler := matchJobsTool{service: matcher}

	_, _, err := handler.handle(context.Background(), nil, &MatchJobsParams{ResumeID: "r1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
