package neo4j

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobgraph/internal/domain"
	"github.com/honeycarbs/jobgraph/internal/repository"
	pkgneo4j "github.com/honeycarbs/jobgraph/pkg/neo4j"
)

// Ensure QueryRepository implements repository.QueryRepository
var _ repository.QueryRepository = (*QueryRepository)(nil)

// QueryRepository serves the read-only lookups
type QueryRepository struct {
	client *pkgneo4j.Client
}

// NewQueryRepository creates a QueryRepository with a Neo4j client
func NewQueryRepository(client *pkgneo4j.Client) *QueryRepository {
	return &QueryRepository{
		client: client,
	}
}

// ListJobs returns jobs with their location and employment type
func (r *QueryRepository) ListJobs(ctx context.Context, limit int) ([]domain.JobSummary, error) {
	if limit <= 0 {
		return []domain.JobSummary{}, nil
	}

	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (j:Job)-[:LOCATED_AT]->(l:Location)
		RETURN j.title AS title,
		       coalesce(j.employment_type, '') AS type,
		       l.name AS location
		ORDER BY title
		LIMIT $limit
	`

	jobs, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]interface{}{"limit": limit})
		if err != nil {
			return nil, err
		}

		out := make([]domain.JobSummary, 0)
		for result.Next(ctx) {
			record := result.Record()
			out = append(out, domain.JobSummary{
				Title:          getString(record, "title"),
				EmploymentType: getString(record, "type"),
				Location:       getString(record, "location"),
			})
		}

		return out, result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs.([]domain.JobSummary), nil
}

// SearchBySkill finds jobs requiring a skill matching the given text
func (r *QueryRepository) SearchBySkill(ctx context.Context, skill string) ([]domain.SkillJobMatch, error) {
	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (s:Skill) WHERE toLower(s.name) CONTAINS toLower($skill)
		MATCH (s)<-[:REQUIRES_SKILL]-(j:Job)-[:LOCATED_AT]->(l:Location)
		RETURN j.title AS title, l.name AS location, s.name AS skillMatch
		ORDER BY title, skillMatch
	`

	matches, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]interface{}{"skill": skill})
		if err != nil {
			return nil, err
		}

		out := make([]domain.SkillJobMatch, 0)
		for result.Next(ctx) {
			record := result.Record()
			out = append(out, domain.SkillJobMatch{
				Title:      getString(record, "title"),
				Location:   getString(record, "location"),
				SkillMatch: getString(record, "skillMatch"),
			})
		}

		return out, result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs by skill: %w", err)
	}

	found := matches.([]domain.SkillJobMatch)
	if len(found) == 0 {
		return nil, fmt.Errorf("no jobs requiring a skill matching %q: %w", skill, domain.ErrNotFound)
	}

	return found, nil
}

// JobDetail returns the distinct skills and tools of a job by title
func (r *QueryRepository) JobDetail(ctx context.Context, title string) (domain.JobDetail, error) {
	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (j:Job)
		WHERE toLower(j.title) CONTAINS toLower($title)
		OPTIONAL MATCH (j)-[:REQUIRES_SKILL]->(s:Skill)
		OPTIONAL MATCH (j)-[:USES_TOOL]->(t:Tool)
		WITH j, collect(DISTINCT s.name) AS skills, collect(DISTINCT t.name) AS tools
		RETURN j.title AS title, skills, tools
		LIMIT 1
	`

	detail, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]interface{}{"title": title})
		if err != nil {
			return nil, err
		}

		if result.Next(ctx) {
			record := result.Record()
			return domain.JobDetail{
				Title:  getString(record, "title"),
				Skills: getStringSlice(record, "skills"),
				Tools:  getStringSlice(record, "tools"),
			}, result.Err()
		}
		if err := result.Err(); err != nil {
			return nil, err
		}

		return nil, domain.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.JobDetail{}, fmt.Errorf("job title %q: %w", title, domain.ErrNotFound)
		}
		return domain.JobDetail{}, fmt.Errorf("failed to load job detail: %w", err)
	}

	return detail.(domain.JobDetail), nil
}

// ListResumes returns stored resumes
func (r *QueryRepository) ListResumes(ctx context.Context, limit int) ([]domain.ResumeSummary, error) {
	if limit <= 0 {
		return []domain.ResumeSummary{}, nil
	}

	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (r:Resume)
		RETURN r.id AS id,
		       coalesce(r.name, '') AS name,
		       coalesce(r.email, '') AS email
		ORDER BY id
		LIMIT $limit
	`

	resumes, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]interface{}{"limit": limit})
		if err != nil {
			return nil, err
		}

		out := make([]domain.ResumeSummary, 0)
		for result.Next(ctx) {
			record := result.Record()
			out = append(out, domain.ResumeSummary{
				ID:    getString(record, "id"),
				Name:  getString(record, "name"),
				Email: getString(record, "email"),
			})
		}

		return out, result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes.([]domain.ResumeSummary), nil
}
