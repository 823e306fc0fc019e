package mcp

import (
	"context"

	"github.com/honeycarbs/jobgraph/internal/config"
	"github.com/honeycarbs/jobgraph/internal/domain/ingest"
	"github.com/honeycarbs/jobgraph/internal/domain/match"
	"github.com/honeycarbs/jobgraph/internal/mcp/tools"
	"github.com/honeycarbs/jobgraph/internal/repository"
	"github.com/honeycarbs/jobgraph/pkg/logging"
	n4j "github.com/honeycarbs/jobgraph/pkg/neo4j"
	"github.com/honeycarbs/jobgraph/pkg/sheets"
)

// provideNeo4jConfig extracts Neo4j config from main config
func provideNeo4jConfig(cfg config.Config) n4j.Config {
	return n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	}
}

// provideSheetsWriter builds the Sheets client when credentials are
// configured. A nil writer disables the export_matches tool.
func provideSheetsWriter(cfg config.Config, logger *logging.Logger) tools.SheetsWriter {
	if cfg.Sheets.CredentialsPath == "" {
		return nil
	}

	client, err := sheets.NewClient(context.Background(), sheets.Config{
		CredentialsPath: cfg.Sheets.CredentialsPath,
	})
	if err != nil {
		logger.Warn("failed to initialize Sheets client", "err", err)
		return nil
	}

	return client
}

// newResources creates Resources struct
func newResources(
	ingestSvc *ingest.Service,
	matchSvc *match.Service,
	queryRepo repository.QueryRepository,
	sheetsClient tools.SheetsWriter,
	neo4jClient *n4j.Client,
) *Resources {
	return &Resources{
		IngestSvc:    ingestSvc,
		MatchSvc:     matchSvc,
		QueryRepo:    queryRepo,
		SheetsClient: sheetsClient,
		Neo4jClient:  neo4jClient,
	}
}
