package repository

import "context"

// JobUpsert is a fully normalized job ready to be merged into the graph:
// sentinels applied, list values cleaned, empties removed.
type JobUpsert struct {
	ID                 string
	Title              string
	Company            string
	Location           string
	EmploymentType     string
	ExperienceRequired string
	SalaryRange        string
	Skills             []string
	Tools              []string
	Certifications     []string
	Education          []string
	Responsibilities   []string
}

// IngestRepository merges jobs and their attribute nodes into storage.
type IngestRepository interface {
	// UpsertJob applies one job as a single atomic merge: the Job node
	// by id with scalar overwrite, plus attribute nodes and typed edges
	// by natural key. Calling it twice with the same input leaves the
	// graph unchanged after the first call.
	UpsertJob(ctx context.Context, job JobUpsert) error
}
