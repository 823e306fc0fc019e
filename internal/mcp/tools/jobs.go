package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobgraph/internal/domain"
	"github.com/honeycarbs/jobgraph/internal/repository"
)

const defaultListLimit = 50

// ListJobsParams defines the arguments for the list_jobs tool
type ListJobsParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum jobs to return (default 50)"`
}

// ListJobsResult wraps the job list
type ListJobsResult struct {
	Jobs []domain.JobSummary `json:"jobs"`
}

// SearchBySkillParams defines the arguments for the search_jobs_by_skill tool
type SearchBySkillParams struct {
	Skill string `json:"skill" jsonschema:"Skill name or fragment, matched case-insensitively"`
}

// SearchBySkillResult wraps skill search hits
type SearchBySkillResult struct {
	Jobs []domain.SkillJobMatch `json:"jobs"`
}

// JobDetailsParams defines the arguments for the job_details tool
type JobDetailsParams struct {
	Title string `json:"title" jsonschema:"Job title or fragment, matched case-insensitively"`
}

// ListResumesParams defines the arguments for the list_resumes tool
type ListResumesParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum resumes to return (default 50)"`
}

// ListResumesResult wraps the resume list
type ListResumesResult struct {
	Resumes []domain.ResumeSummary `json:"resumes"`
}

type queryTools struct {
	repo repository.QueryRepository
}

// WithQueryTools registers the read-only lookup tools
func WithQueryTools(repo repository.QueryRepository) Option {
	return func(reg *registry) {
		handler := queryTools{repo: repo}

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_jobs",
			Description: "List stored job postings with their location and employment type",
		}, handler.listJobs)

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_jobs_by_skill",
			Description: "Find jobs requiring a skill by case-insensitive name match",
		}, handler.searchBySkill)

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_details",
			Description: "Retrieve the skills and tools required for a job by title",
		}, handler.jobDetails)

		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_resumes",
			Description: "List stored resumes with name and email",
		}, handler.listResumes)
	}
}

func (t queryTools) listJobs(ctx context.Context, req *sdkmcp.CallToolRequest, params *ListJobsParams) (*sdkmcp.CallToolResult, any, error) {
	limit := defaultListLimit
	if params != nil && params.Limit > 0 {
		limit = params.Limit
	}

	jobs, err := t.repo.ListJobs(ctx, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	msg := fmt.Sprintf("[list_jobs] %d job(s)", len(jobs))
	return textResult(msg), ListJobsResult{Jobs: jobs}, nil
}

func (t queryTools) searchBySkill(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchBySkillParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.Skill == "" {
		return textResult("search_jobs_by_skill requires skill"), nil, fmt.Errorf("skill is required")
	}

	jobs, err := t.repo.SearchBySkill(ctx, params.Skill)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			msg := fmt.Sprintf("[search_jobs_by_skill] No jobs require a skill matching %q", params.Skill)
			return textResult(msg), SearchBySkillResult{Jobs: []domain.SkillJobMatch{}}, nil
		}
		return nil, nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	msg := fmt.Sprintf("[search_jobs_by_skill] %d job(s) matching %q", len(jobs), params.Skill)
	return textResult(msg), SearchBySkillResult{Jobs: jobs}, nil
}

func (t queryTools) jobDetails(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobDetailsParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.Title == "" {
		return textResult("job_details requires title"), nil, fmt.Errorf("title is required")
	}

	detail, err := t.repo.JobDetail(ctx, params.Title)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			msg := fmt.Sprintf("[job_details] No job title matching %q", params.Title)
			return textResult(msg), nil, nil
		}
		return nil, nil, fmt.Errorf("failed to load job details: %w", err)
	}

	msg := fmt.Sprintf("[job_details] %s: %d skill(s), %d tool(s)", detail.Title, len(detail.Skills), len(detail.Tools))
	return textResult(msg), detail, nil
}

func (t queryTools) listResumes(ctx context.Context, req *sdkmcp.CallToolRequest, params *ListResumesParams) (*sdkmcp.CallToolResult, any, error) {
	limit := defaultListLimit
	if params != nil && params.Limit > 0 {
		limit = params.Limit
	}

	resumes, err := t.repo.ListResumes(ctx, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	msg := fmt.Sprintf("[list_resumes] %d resume(s)", len(resumes))
	return textResult(msg), ListResumesResult{Resumes: resumes}, nil
}
