package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobgraph/internal/domain"
	"github.com/honeycarbs/jobgraph/pkg/logging"
)

// SheetsWriter writes rows to a Google Sheets tab
type SheetsWriter interface {
	AppendRows(ctx context.Context, spreadsheetID, range_ string, values [][]interface{}) error
	ClearRange(ctx context.Context, spreadsheetID, range_ string) error
}

// ExportMatchesParams defines the arguments for the export_matches tool
type ExportMatchesParams struct {
	ResumeID string `json:"resume_id" jsonschema:"Resume to compute matches for"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum matches to export (default 5)"`
	ClearTab bool   `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
	Sheet    struct {
		SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
		Tab           string `json:"tab,omitempty" jsonschema:"Tab name to write into (default Matches)"`
	} `json:"sheet" jsonschema:"Destination sheet information"`
}

// ExportMatchesResult describes the summary returned after export
type ExportMatchesResult struct {
	SpreadsheetID string    `json:"spreadsheet_id" jsonschema:"Target spreadsheet ID"`
	Tab           string    `json:"tab" jsonschema:"Target tab name"`
	WrittenRows   int       `json:"written_rows" jsonschema:"How many data rows were written"`
	CompletedAt   time.Time `json:"completed_at" jsonschema:"Timestamp when export finished"`
}

var exportHeader = []interface{}{
	"Job ID", "Title", "Company", "Location", "Employment Type",
	"Matching Skills", "Overlap", "Total Required", "Coverage", "Score",
}

type exportMatchesTool struct {
	matcher Matcher
	sheets  SheetsWriter
	logger  *logging.Logger
}

// WithExportMatches registers the export_matches tool
func WithExportMatches(matcher Matcher, sheets SheetsWriter, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := exportMatchesTool{matcher: matcher, sheets: sheets, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "export_matches",
			Description: "Compute resume matches and append them as rows to a Google Sheets tab",
		}, handler.handle)
	}
}

func (t exportMatchesTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ExportMatchesParams) (*sdkmcp.CallToolResult, any, error) {
	if t.sheets == nil {
		return textResult("export_matches unavailable: Sheets client not configured"), nil, fmt.Errorf("sheets client not configured")
	}

	if params == nil || params.ResumeID == "" || params.Sheet.SpreadsheetID == "" {
		return textResult("export_matches requires resume_id and sheet.spreadsheet_id"), nil, fmt.Errorf("resume_id and spreadsheet_id are required")
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultMatchLimit
	}

	matches, err := t.matcher.Match(ctx, params.ResumeID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			msg := fmt.Sprintf("[export_matches] Resume %s not found", params.ResumeID)
			return textResult(msg), nil, nil
		}
		return nil, nil, fmt.Errorf("failed to match jobs: %w", err)
	}

	tab := params.Sheet.Tab
	if tab == "" {
		tab = "Matches"
	}

	if params.ClearTab {
		if err := t.sheets.ClearRange(ctx, params.Sheet.SpreadsheetID, tab); err != nil {
			return nil, nil, fmt.Errorf("failed to clear tab %s: %w", tab, err)
		}
	}

	rows := make([][]interface{}, 0, len(matches)+1)
	rows = append(rows, exportHeader)
	for _, m := range matches {
		rows = append(rows, []interface{}{
			m.JobID, m.Title, m.Company, m.Location, m.EmploymentType,
			strings.Join(m.MatchingSkills, ", "), m.Overlap, m.TotalRequired,
			fmt.Sprintf("%.2f", m.Coverage), m.Score,
		})
	}

	if err := t.sheets.AppendRows(ctx, params.Sheet.SpreadsheetID, tab, rows); err != nil {
		return nil, nil, fmt.Errorf("failed to append rows: %w", err)
	}

	result := ExportMatchesResult{
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           tab,
		WrittenRows:   len(matches),
		CompletedAt:   time.Now().UTC(),
	}

	if t.logger != nil {
		t.logger.Info("match export completed",
			"resume_id", params.ResumeID,
			"spreadsheet_id", result.SpreadsheetID,
			"tab", result.Tab,
			"rows", result.WrittenRows,
		)
	}

	msg := fmt.Sprintf("[export_matches] Wrote %d match(es) to %s/%s", result.WrittenRows, result.SpreadsheetID, result.Tab)
	return textResult(msg), result, nil
}
