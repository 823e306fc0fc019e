package mcp

import (
	"context"

	"github.com/honeycarbs/jobgraph/internal/domain/ingest"
	"github.com/honeycarbs/jobgraph/internal/domain/match"
	"github.com/honeycarbs/jobgraph/internal/mcp/tools"
	"github.com/honeycarbs/jobgraph/internal/repository"
	"github.com/honeycarbs/jobgraph/pkg/logging"
	n4j "github.com/honeycarbs/jobgraph/pkg/neo4j"
)

// Resources aggregates everything the tools need
type Resources struct {
	IngestSvc   *ingest.Service
	MatchSvc    *match.Service
	QueryRepo   repository.QueryRepository
	Neo4jClient *n4j.Client

	// SheetsClient is nil when SHEETS_CREDENTIALS_PATH is unset; the
	// export_matches tool is skipped in that case.
	SheetsClient tools.SheetsWriter
}

// Close releases the store connection
func (r *Resources) Close(ctx context.Context) error {
	if r.Neo4jClient != nil {
		return r.Neo4jClient.Close(ctx)
	}
	return nil
}

// RegisterTools installs every tool backed by the resources into the server
func (s *Server) RegisterTools(res *Resources, logger *logging.Logger) {
	opts := []tools.Option{
		tools.WithIngestJob(res.IngestSvc, logger),
		tools.WithMatchJobs(res.MatchSvc, logger),
		tools.WithQueryTools(res.QueryRepo),
		tools.WithGraphInspect(res.Neo4jClient),
	}

	if res.SheetsClient != nil {
		opts = append(opts, tools.WithExportMatches(res.MatchSvc, res.SheetsClient, logger))
	} else {
		logger.Info("sheets credentials not configured, export_matches disabled")
	}

	tools.Register(s.mcp, opts...)
}
