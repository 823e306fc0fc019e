package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// Hardcoded test data - each test is independent
	testJobID    = "550e8400-e29b-41d4-a716-446655440001"
	testResumeID = "8807753d-12c4-460b-a104-fe35b229f904"
)

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobgraph-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testIngestJob(ctx, session)
	testListJobs(ctx, session)
	testSearchBySkill(ctx, session)
	testJobDetails(ctx, session)
	testMatchJobs(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: tools/list")

	result, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("tools/list failed: %v", err)
		return
	}

	for _, tool := range result.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
}

func testIngestJob(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: ingest_job")

	params := &mcp.CallToolParams{
		Name: "ingest_job",
		Arguments: map[string]any{
			"job_id":          testJobID,
			"job_title":       "Backend Engineer",
			"company":         "Acme Corp",
			"location":        "Portland",
			"employment_type": "Full-time",
			"skills_required": []string{"Go", "Python", "SQL"},
			"tools_and_technologies": []string{
				"Docker", "Kubernetes",
			},
		},
	}

	printCall(ctx, session, params)
}

func testListJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list_jobs")

	printCall(ctx, session, &mcp.CallToolParams{
		Name:      "list_jobs",
		Arguments: map[string]any{"limit": 10},
	})
}

func testSearchBySkill(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_jobs_by_skill")

	printCall(ctx, session, &mcp.CallToolParams{
		Name:      "search_jobs_by_skill",
		Arguments: map[string]any{"skill": "python"},
	})
}

func testJobDetails(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: job_details")

	printCall(ctx, session, &mcp.CallToolParams{
		Name:      "job_details",
		Arguments: map[string]any{"title": "backend"},
	})
}

func testMatchJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: match_jobs")

	printCall(ctx, session, &mcp.CallToolParams{
		Name: "match_jobs",
		Arguments: map[string]any{
			"resume_id": testResumeID,
			"limit":     5,
		},
	})
}

func printCall(ctx context.Context, session *mcp.ClientSession, params *mcp.CallToolParams) {
	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("%s failed: %v", params.Name, err)
		return
	}

	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Printf("  %s\n", text.Text)
		}
	}

	if result.StructuredContent != nil {
		pretty, err := json.MarshalIndent(result.StructuredContent, "  ", "  ")
		if err == nil {
			fmt.Printf("  %s\n", pretty)
		}
	}
}
