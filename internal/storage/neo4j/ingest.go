package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobgraph/internal/repository"
	pkgneo4j "github.com/honeycarbs/jobgraph/pkg/neo4j"
)

// Ensure IngestRepository implements repository.IngestRepository
var _ repository.IngestRepository = (*IngestRepository)(nil)

// IngestRepository merges jobs into Neo4j
type IngestRepository struct {
	client *pkgneo4j.Client
}

// NewIngestRepository creates an IngestRepository with a Neo4j client
func NewIngestRepository(client *pkgneo4j.Client) *IngestRepository {
	return &IngestRepository{
		client: client,
	}
}

// upsertJobQuery applies a whole job in one statement so a concurrent
// reader never observes a Job node without its scalar fields. MERGE
// guarantees node uniqueness per natural key and at most one edge of a
// given type between two endpoints; FOREACH guards skip empty company
// and location values entirely.
const upsertJobQuery = `
	MERGE (j:Job {id: $id})
	SET j.title = $title,
	    j.employment_type = $employmentType,
	    j.experience_required = $experienceRequired,
	    j.salary_range = $salaryRange
	FOREACH (_ IN CASE WHEN $company = '' THEN [] ELSE [1] END |
		MERGE (c:Company {name: $company})
		MERGE (c)-[:POSTS]->(j)
	)
	FOREACH (_ IN CASE WHEN $location = '' THEN [] ELSE [1] END |
		MERGE (l:Location {name: $location})
		MERGE (j)-[:LOCATED_AT]->(l)
	)
	FOREACH (name IN $skills |
		MERGE (s:Skill {name: name})
		MERGE (j)-[:REQUIRES_SKILL]->(s)
	)
	FOREACH (name IN $tools |
		MERGE (t:Tool {name: name})
		MERGE (j)-[:USES_TOOL]->(t)
	)
	FOREACH (name IN $certifications |
		MERGE (cert:Certification {name: name})
		MERGE (j)-[:REQUIRES_CERT]->(cert)
	)
	FOREACH (name IN $education |
		MERGE (e:Education {name: name})
		MERGE (j)-[:REQUIRES_EDU]->(e)
	)
	FOREACH (desc IN $responsibilities |
		MERGE (r:Responsibility {desc: desc})
		MERGE (j)-[:HAS_RESPONSIBILITY]->(r)
	)
`

// UpsertJob merges one job and its attribute subgraph
func (r *IngestRepository) UpsertJob(ctx context.Context, job repository.JobUpsert) error {
	if job.ID == "" {
		return fmt.Errorf("upsert job: id is required")
	}

	session := r.client.WriteSession(ctx)
	defer session.Close(ctx)

	params := map[string]interface{}{
		"id":                 job.ID,
		"title":              job.Title,
		"employmentType":     job.EmploymentType,
		"experienceRequired": job.ExperienceRequired,
		"salaryRange":        job.SalaryRange,
		"company":            job.Company,
		"location":           job.Location,
		"skills":             toAnySlice(job.Skills),
		"tools":              toAnySlice(job.Tools),
		"certifications":     toAnySlice(job.Certifications),
		"education":          toAnySlice(job.Education),
		"responsibilities":   toAnySlice(job.Responsibilities),
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, upsertJobQuery, params)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to merge job %s: %w", job.ID, err)
	}

	return nil
}

func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
