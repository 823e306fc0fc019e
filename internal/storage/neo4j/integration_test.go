package neo4j

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	driver "github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobgraph/internal/domain"
	"github.com/honeycarbs/jobgraph/internal/repository"
	pkgneo4j "github.com/honeycarbs/jobgraph/pkg/neo4j"
)

// These tests run against a live Neo4j instance and are skipped unless
// the NEO4J_* environment variables are set. Each run uses unique ids
// and cleans up after itself.

func newTestClient(t *testing.T) *pkgneo4j.Client {
	t.Helper()

	uri := os.Getenv("NEO4J_URI")
	username := os.Getenv("NEO4J_USERNAME")
	password := os.Getenv("NEO4J_PASSWORD")

	if uri == "" || username == "" || password == "" {
		t.Skip("NEO4J_URI, NEO4J_USERNAME and NEO4J_PASSWORD must be set to run this test")
	}

	client, err := pkgneo4j.NewClient(pkgneo4j.Config{
		URI:      uri,
		Username: username,
		Password: password,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Close(ctx)
	})

	return client
}

func runWrite(t *testing.T, client *pkgneo4j.Client, query string, params map[string]interface{}) {
	t.Helper()

	ctx := context.Background()
	session := client.WriteSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx driver.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	require.NoError(t, err)
}

func countRows(t *testing.T, client *pkgneo4j.Client, query string, params map[string]interface{}) int {
	t.Helper()

	ctx := context.Background()
	session := client.ReadSession(ctx)
	defer session.Close(ctx)

	count, err := session.ExecuteRead(ctx, func(tx driver.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		record, err := result.Single(ctx)
		if err != nil {
			return nil, err
		}
		val, _ := record.Get("count")
		return int(val.(int64)), nil
	})
	require.NoError(t, err)
	return count.(int)
}

func cleanupJob(t *testing.T, client *pkgneo4j.Client, jobID string) {
	t.Cleanup(func() {
		runWrite(t, client, `MATCH (j:Job {id: $id}) DETACH DELETE j`, map[string]interface{}{"id": jobID})
	})
}

func testJob(run, suffix string) repository.JobUpsert {
	return repository.JobUpsert{
		ID:                 run + "-job-" + suffix,
		Title:              "Integration Engineer " + run,
		Company:            "TestCo " + run,
		Location:           "Testville " + run,
		EmploymentType:     "Full-time",
		ExperienceRequired: "2+ years",
		SalaryRange:        domain.NotSpecified,
		Skills:             []string{"Skill-" + run, "OtherSkill-" + run},
		Tools:              []string{"Tool-" + run},
	}
}

func TestUpsertJobIsIdempotent(t *testing.T) {
	client := newTestClient(t)
	repo := NewIngestRepository(client)
	run := uuid.NewString()

	job := testJob(run, "1")
	cleanupJob(t, client, job.ID)
	t.Cleanup(func() {
		runWrite(t, client, `
			MATCH (n) WHERE (n:Skill OR n:Tool OR n:Company OR n:Location)
			AND (n.name CONTAINS $run) DETACH DELETE n
		`, map[string]interface{}{"run": run})
	})

	require.NoError(t, repo.UpsertJob(context.Background(), job))

	countAll := func() (nodes, edges int) {
		nodes = countRows(t, client, `
			MATCH (j:Job {id: $id})--(n) RETURN count(DISTINCT n) AS count
		`, map[string]interface{}{"id": job.ID})
		edges = countRows(t, client, `
			MATCH (j:Job {id: $id})-[r]-() RETURN count(r) AS count
		`, map[string]interface{}{"id": job.ID})
		return nodes, edges
	}

	nodesBefore, edgesBefore := countAll()
	assert.Equal(t, 5, nodesBefore) // company, location, 2 skills, 1 tool
	assert.Equal(t, 5, edgesBefore)

	require.NoError(t, repo.UpsertJob(context.Background(), job))

	nodesAfter, edgesAfter := countAll()
	assert.Equal(t, nodesBefore, nodesAfter)
	assert.Equal(t, edgesBefore, edgesAfter)
}

func TestSkillNodesAreShared(t *testing.T) {
	client := newTestClient(t)
	repo := NewIngestRepository(client)
	run := uuid.NewString()
	shared := "SharedSkill-" + run

	jobA := testJob(run, "a")
	jobA.Skills = []string{shared}
	jobB := testJob(run, "b")
	jobB.Skills = []string{shared}

	cleanupJob(t, client, jobA.ID)
	cleanupJob(t, client, jobB.ID)
	t.Cleanup(func() {
		runWrite(t, client, `
			MATCH (n) WHERE (n:Skill OR n:Tool OR n:Company OR n:Location)
			AND (n.name CONTAINS $run) DETACH DELETE n
		`, map[string]interface{}{"run": run})
	})

	require.NoError(t, repo.UpsertJob(context.Background(), jobA))
	require.NoError(t, repo.UpsertJob(context.Background(), jobB))

	skillNodes := countRows(t, client, `
		MATCH (s:Skill {name: $name}) RETURN count(s) AS count
	`, map[string]interface{}{"name": shared})
	assert.Equal(t, 1, skillNodes)

	edges := countRows(t, client, `
		MATCH (:Job)-[r:REQUIRES_SKILL]->(:Skill {name: $name}) RETURN count(r) AS count
	`, map[string]interface{}{"name": shared})
	assert.Equal(t, 2, edges)
}

func TestMatchRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ingestRepo := NewIngestRepository(client)
	matchRepo := NewMatchRepository(client)
	run := uuid.NewString()

	// Resume nodes are written by an out-of-band path; simulate it,
	// including the comma-joined skill value quirk.
	resumeID := run + "-resume"
	runWrite(t, client, `
		MERGE (r:Resume {id: $id})
		MERGE (s:Skill {name: $skills})
		MERGE (r)-[:HAS_SKILL]->(s)
	`, map[string]interface{}{
		"id":     resumeID,
		"skills": fmt.Sprintf("Alpha-%s, beta-%s", run, run),
	})
	t.Cleanup(func() {
		runWrite(t, client, `MATCH (r:Resume {id: $id}) DETACH DELETE r`, map[string]interface{}{"id": resumeID})
		runWrite(t, client, `
			MATCH (n) WHERE (n:Skill OR n:Tool OR n:Company OR n:Location)
			AND (n.name CONTAINS $run) DETACH DELETE n
		`, map[string]interface{}{"run": run})
	})

	job := testJob(run, "m")
	// Case differs from the resume token; matching is case-insensitive.
	job.Skills = []string{"alpha-" + run, "Gamma-" + run}
	cleanupJob(t, client, job.ID)
	require.NoError(t, ingestRepo.UpsertJob(context.Background(), job))

	stored, err := matchRepo.ResumeSkills(context.Background(), resumeID)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	candidates, err := matchRepo.CandidatesBySkills(context.Background(), []string{
		"alpha-" + run, "beta-" + run,
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	got := candidates[0]
	assert.Equal(t, job.ID, got.JobID)
	assert.Equal(t, job.Title, got.Title)
	assert.Equal(t, job.Company, got.Company)
	assert.Equal(t, job.Location, got.Location)
	assert.Equal(t, []string{"alpha-" + run}, got.MatchingSkills)
	assert.Equal(t, 1, got.Overlap)
	assert.Equal(t, 2, got.TotalRequired)
}

func TestResumeSkillsNotFound(t *testing.T) {
	client := newTestClient(t)
	matchRepo := NewMatchRepository(client)

	_, err := matchRepo.ResumeSkills(context.Background(), "missing-"+uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestJobDetailNotFound(t *testing.T) {
	client := newTestClient(t)
	queryRepo := NewQueryRepository(client)

	_, err := queryRepo.JobDetail(context.Background(), "no-such-title-"+uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
