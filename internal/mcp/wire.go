//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/honeycarbs/jobgraph/internal/config"
	"github.com/honeycarbs/jobgraph/internal/domain/ingest"
	"github.com/honeycarbs/jobgraph/internal/domain/match"
	"github.com/honeycarbs/jobgraph/internal/repository"
	storage "github.com/honeycarbs/jobgraph/internal/storage/neo4j"
	"github.com/honeycarbs/jobgraph/pkg/logging"
	n4j "github.com/honeycarbs/jobgraph/pkg/neo4j"
)

// InitializeResources creates Resources with all dependencies wired up
func InitializeResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - Neo4j
		provideNeo4jConfig,
		n4j.NewClient,

		// Repositories
		storage.NewIngestRepository,
		wire.Bind(new(repository.IngestRepository), new(*storage.IngestRepository)),
		storage.NewMatchRepository,
		wire.Bind(new(repository.MatchRepository), new(*storage.MatchRepository)),
		storage.NewQueryRepository,
		wire.Bind(new(repository.QueryRepository), new(*storage.QueryRepository)),

		// Services
		ingest.NewService,
		match.NewService,

		// Optional integrations
		provideSheetsWriter,

		newResources,
	)

	return &Resources{}, nil
}
