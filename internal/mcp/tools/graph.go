package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	pkgneo4j "github.com/honeycarbs/jobgraph/pkg/neo4j"
)

// GraphInspectParams defines the arguments for the graph_inspect tool
type GraphInspectParams struct {
	Cypher   string                 `json:"cypher,omitempty" jsonschema:"Custom read-only Cypher query to run"`
	JobID    string                 `json:"job_id,omitempty" jsonschema:"Dump the subgraph of one job"`
	ResumeID string                 `json:"resume_id,omitempty" jsonschema:"Dump the skills of one resume"`
	Params   map[string]interface{} `json:"params,omitempty" jsonschema:"Extra query parameters"`
}

type graphInspectHandler struct {
	client *pkgneo4j.Client
}

// WithGraphInspect registers the graph_inspect developer tool
func WithGraphInspect(client *pkgneo4j.Client) Option {
	return func(reg *registry) {
		handler := graphInspectHandler{client: client}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "graph_inspect",
			Description: "Developer tool for inspecting and debugging the job knowledge graph",
		}, handler.handle)
	}
}

func (h *graphInspectHandler) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *GraphInspectParams) (*sdkmcp.CallToolResult, any, error) {
	if h.client == nil {
		return textResult("graph_inspect unavailable: Neo4j client not configured"), nil, fmt.Errorf("Neo4j client not configured")
	}

	if params == nil {
		params = &GraphInspectParams{}
	}

	var query string
	var queryParams map[string]interface{}

	switch {
	case params.Cypher != "":
		query = params.Cypher
		queryParams = make(map[string]interface{})
		if params.JobID != "" {
			queryParams["jobId"] = params.JobID
		}
		if params.ResumeID != "" {
			queryParams["resumeId"] = params.ResumeID
		}
		for k, v := range params.Params {
			queryParams[k] = v
		}
		if len(queryParams) == 0 {
			queryParams = nil
		}
	case params.JobID != "":
		query = `
			MATCH (j:Job {id: $jobId})
			OPTIONAL MATCH (j)<-[:POSTS]-(c:Company)
			OPTIONAL MATCH (j)-[:LOCATED_AT]->(l:Location)
			OPTIONAL MATCH (j)-[:REQUIRES_SKILL]->(s:Skill)
			OPTIONAL MATCH (j)-[:USES_TOOL]->(t:Tool)
			RETURN j, c, l,
			       collect(DISTINCT s.name) as skills,
			       collect(DISTINCT t.name) as tools
		`
		queryParams = map[string]interface{}{"jobId": params.JobID}
	case params.ResumeID != "":
		query = `
			MATCH (r:Resume {id: $resumeId})
			OPTIONAL MATCH (r)-[:HAS_SKILL]->(s:Skill)
			RETURN r, collect(s.name) as skills
		`
		queryParams = map[string]interface{}{"resumeId": params.ResumeID}
	default:
		query = "MATCH (n) RETURN labels(n) as labels, count(n) as count ORDER BY count DESC LIMIT 20"
	}

	result, err := h.executeQuery(ctx, query, queryParams)
	if err != nil {
		return textResult(fmt.Sprintf("graph_inspect error: %v", err)), nil, err
	}

	return textResult(result), nil, nil
}

func (h *graphInspectHandler) executeQuery(ctx context.Context, query string, params map[string]interface{}) (string, error) {
	session := h.client.ReadSession(ctx)
	defer session.Close(ctx)

	var allRecords []*neo4j.Record
	var keys []string

	_, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		for result.Next(ctx) {
			record := result.Record()
			if keys == nil {
				keys = record.Keys
			}
			allRecords = append(allRecords, record)
		}

		return nil, result.Err()
	})
	if err != nil {
		return "", fmt.Errorf("query execution failed: %w", err)
	}

	return h.formatCollectedResults(allRecords, keys), nil
}

func (h *graphInspectHandler) formatCollectedResults(records []*neo4j.Record, keys []string) string {
	if len(records) == 0 {
		return "Query executed successfully but returned no rows"
	}

	var sb strings.Builder
	sb.WriteString("Results:\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for i, record := range records {
		sb.WriteString(fmt.Sprintf("Row %d:\n", i+1))

		for _, key := range keys {
			val, ok := record.Get(key)
			if !ok {
				sb.WriteString(fmt.Sprintf("  %s: <not found>\n", key))
				continue
			}
			sb.WriteString(fmt.Sprintf("  %s: %s\n", key, h.formatValue(val)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (h *graphInspectHandler) formatValue(val interface{}) string {
	if val == nil {
		return "null"
	}

	switch v := val.(type) {
	case neo4j.Node:
		propsJSON, _ := json.Marshal(v.Props)
		return fmt.Sprintf("Node[%v] %s", v.Labels, string(propsJSON))
	case neo4j.Relationship:
		propsJSON, _ := json.Marshal(v.Props)
		return fmt.Sprintf("Relationship[%s] %s", v.Type, string(propsJSON))
	case []interface{}:
		if len(v) == 0 {
			return "[]"
		}
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, h.formatValue(item))
		}
		return fmt.Sprintf("[%s]", strings.Join(items, ", "))
	case map[string]interface{}:
		jsonBytes, _ := json.Marshal(v)
		return string(jsonBytes)
	case string:
		return fmt.Sprintf("%q", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%.2f", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		jsonBytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(jsonBytes)
	}
}
