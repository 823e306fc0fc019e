package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobgraph/internal/domain"
	"github.com/honeycarbs/jobgraph/pkg/logging"
)

// Ingestor merges extraction records into the graph
type Ingestor interface {
	Ingest(ctx context.Context, rec domain.JobRecord) (string, error)
}

// IngestJobParams defines the arguments for the ingest_job tool. Every
// field is optional; missing scalars are sentinel-substituted.
type IngestJobParams struct {
	JobID              string   `json:"job_id,omitempty" jsonschema:"Existing job id to update; omit to create"`
	JobTitle           string   `json:"job_title,omitempty" jsonschema:"Primary job title"`
	Company            string   `json:"company,omitempty" jsonschema:"Company name"`
	Location           string   `json:"location,omitempty" jsonschema:"City, state, or Remote"`
	EmploymentType     string   `json:"employment_type,omitempty" jsonschema:"Full-time, Contract, Hybrid, etc."`
	ExperienceRequired string   `json:"experience_required,omitempty" jsonschema:"Minimum experience text"`
	SalaryRange        string   `json:"salary_range,omitempty" jsonschema:"Salary or compensation range"`
	EducationRequired  []string `json:"education_required,omitempty" jsonschema:"Required degrees"`
	Certifications     []string `json:"certifications_required,omitempty" jsonschema:"Professional certifications"`
	SkillsRequired     []string `json:"skills_required,omitempty" jsonschema:"Technical skills and languages"`
	Tools              []string `json:"tools_and_technologies,omitempty" jsonschema:"Specific software and tools"`
	Responsibilities   []string `json:"responsibilities,omitempty" jsonschema:"Key duties"`
}

// IngestJobResult reports the merged job
type IngestJobResult struct {
	JobID string `json:"job_id" jsonschema:"Canonical job id (generated when not supplied)"`
}

type ingestJobTool struct {
	service Ingestor
	logger  *logging.Logger
}

// WithIngestJob registers the ingest_job tool
func WithIngestJob(service Ingestor, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := ingestJobTool{service: service, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "ingest_job",
			Description: "Merge a parsed job posting and its skills, tools, certifications, education and responsibilities into the knowledge graph",
		}, handler.handle)
	}
}

func (t ingestJobTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *IngestJobParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &IngestJobParams{}
	}

	rec := domain.JobRecord{
		JobID:              params.JobID,
		JobTitle:           params.JobTitle,
		Company:            params.Company,
		Location:           params.Location,
		EmploymentType:     params.EmploymentType,
		ExperienceRequired: params.ExperienceRequired,
		SalaryRange:        params.SalaryRange,
		EducationRequired:  params.EducationRequired,
		Certifications:     params.Certifications,
		SkillsRequired:     params.SkillsRequired,
		Tools:              params.Tools,
		Responsibilities:   params.Responsibilities,
	}

	jobID, err := t.service.Ingest(ctx, rec)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("ingest_job failed", "err", err)
		}
		return nil, nil, fmt.Errorf("failed to ingest job: %w", err)
	}

	result := IngestJobResult{JobID: jobID}
	msg := fmt.Sprintf("[ingest_job] Merged job %s", jobID)
	return textResult(msg), result, nil
}
