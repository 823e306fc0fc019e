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

// Ensure MatchRepository implements repository.MatchRepository
var _ repository.MatchRepository = (*MatchRepository)(nil)

// MatchRepository reads match inputs from Neo4j
type MatchRepository struct {
	client *pkgneo4j.Client
}

// NewMatchRepository creates a MatchRepository with a Neo4j client
func NewMatchRepository(client *pkgneo4j.Client) *MatchRepository {
	return &MatchRepository{
		client: client,
	}
}

// ResumeSkills returns the stored skill values of a resume
func (r *MatchRepository) ResumeSkills(ctx context.Context, resumeID string) ([]string, error) {
	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (resume:Resume {id: $resumeId})
		OPTIONAL MATCH (resume)-[:HAS_SKILL]->(skill:Skill)
		RETURN resume.id AS id, collect(skill.name) AS skills
	`

	skills, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]interface{}{"resumeId": resumeID})
		if err != nil {
			return nil, err
		}

		if result.Next(ctx) {
			return getStringSlice(result.Record(), "skills"), result.Err()
		}
		if err := result.Err(); err != nil {
			return nil, err
		}

		// No row means the Resume node does not exist.
		return nil, domain.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("resume %s: %w", resumeID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load resume skills: %w", err)
	}

	return skills.([]string), nil
}

// candidatesQuery aggregates, per job sharing any skill with the resume,
// the distinct matched skill names, the distinct total required count,
// and the first reachable company and location. Ordering and truncation
// happen in the match service, not here.
const candidatesQuery = `
	MATCH (job:Job)-[:REQUIRES_SKILL]->(jobSkill:Skill)
	WHERE toLower(jobSkill.name) IN $skills
	WITH job,
	     collect(DISTINCT jobSkill.name) AS matchingSkills,
	     count(DISTINCT jobSkill)        AS overlap
	MATCH (job)-[:REQUIRES_SKILL]->(required:Skill)
	WITH job, matchingSkills, overlap,
	     count(DISTINCT required) AS totalRequired
	OPTIONAL MATCH (job)<-[:POSTS]-(company:Company)
	WITH job, matchingSkills, overlap, totalRequired,
	     head(collect(company.name)) AS companyName
	OPTIONAL MATCH (job)-[:LOCATED_AT]->(location:Location)
	RETURN job.id                       AS jobId,
	       job.title                    AS title,
	       coalesce(job.employment_type, '') AS employmentType,
	       coalesce(companyName, '')    AS company,
	       coalesce(head(collect(location.name)), '') AS location,
	       matchingSkills,
	       overlap,
	       totalRequired
`

// CandidatesBySkills returns unranked match candidates for a token set
func (r *MatchRepository) CandidatesBySkills(ctx context.Context, foldedSkills []string) ([]domain.MatchCandidate, error) {
	if len(foldedSkills) == 0 {
		return nil, nil
	}

	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	candidates, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, candidatesQuery, map[string]interface{}{"skills": foldedSkills})
		if err != nil {
			return nil, err
		}

		out := make([]domain.MatchCandidate, 0)
		for result.Next(ctx) {
			record := result.Record()
			out = append(out, domain.MatchCandidate{
				JobID:          getString(record, "jobId"),
				Title:          getString(record, "title"),
				Company:        getString(record, "company"),
				Location:       getString(record, "location"),
				EmploymentType: getString(record, "employmentType"),
				MatchingSkills: getStringSlice(record, "matchingSkills"),
				Overlap:        getInt(record, "overlap"),
				TotalRequired:  getInt(record, "totalRequired"),
			})
		}

		return out, result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load match candidates: %w", err)
	}

	return candidates.([]domain.MatchCandidate), nil
}
