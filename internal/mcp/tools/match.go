package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobgraph/internal/domain"
	"github.com/honeycarbs/jobgraph/pkg/logging"
)

const defaultMatchLimit = 5

// Matcher computes ranked job matches for a resume
type Matcher interface {
	Match(ctx context.Context, resumeID string, limit int) ([]domain.ScoredJob, error)
}

// MatchJobsParams defines the arguments for the match_jobs tool
type MatchJobsParams struct {
	ResumeID string `json:"resume_id" jsonschema:"Stored resume identifier"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum matches to return (default 5)"`
}

// MatchJobsResult wraps the ranked matches
type MatchJobsResult struct {
	ResumeID string             `json:"resume_id" jsonschema:"Resume the matches were computed for"`
	Matches  []domain.ScoredJob `json:"matches" jsonschema:"Jobs ordered by overlap, coverage, then title"`
}

type matchJobsTool struct {
	service Matcher
	logger  *logging.Logger
}

// WithMatchJobs registers the match_jobs tool
func WithMatchJobs(service Matcher, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := matchJobsTool{service: service, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "match_jobs",
			Description: "Rank stored jobs against a resume by skill overlap and coverage",
		}, handler.handle)
	}
}

func (t matchJobsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *MatchJobsParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.ResumeID == "" {
		return textResult("match_jobs requires resume_id"), nil, fmt.Errorf("resume_id is required")
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultMatchLimit
	}

	matches, err := t.service.Match(ctx, params.ResumeID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			msg := fmt.Sprintf("[match_jobs] Resume %s not found", params.ResumeID)
			return textResult(msg), MatchJobsResult{ResumeID: params.ResumeID, Matches: []domain.ScoredJob{}}, nil
		}
		if t.logger != nil {
			t.logger.Error("match_jobs failed", "resume_id", params.ResumeID, "err", err)
		}
		return nil, nil, fmt.Errorf("failed to match jobs: %w", err)
	}

	result := MatchJobsResult{ResumeID: params.ResumeID, Matches: matches}
	msg := fmt.Sprintf("[match_jobs] %d match(es) for resume %s", len(matches), params.ResumeID)
	return textResult(msg), result, nil
}
