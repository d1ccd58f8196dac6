package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

func ParseFormat(raw string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(raw)))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want table|json|yaml|csv)", raw)
	}
}

// Document is the serialized shape of an analysis run.
type Document struct {
	RunID       string                 `json:"runId,omitempty" yaml:"runId,omitempty"`
	Handle      string                 `json:"handle" yaml:"handle"`
	DID         string                 `json:"did" yaml:"did"`
	Period      string                 `json:"period" yaml:"period"`
	Revision    string                 `json:"revision,omitempty" yaml:"revision,omitempty"`
	GeneratedAt string                 `json:"generatedAt" yaml:"generatedAt"`
	Weights     domain.ScoringWeights  `json:"weights" yaml:"weights"`
	Accounts    []domain.RankedAccount `json:"accounts" yaml:"accounts"`
}

func NewDocument(run domain.AnalysisRun) Document {
	accounts := run.Accounts
	if accounts == nil {
		accounts = []domain.RankedAccount{}
	}
	return Document{
		RunID:       run.ID,
		Handle:      run.Handle,
		DID:         run.DID,
		Period:      string(run.Period),
		Revision:    run.Revision,
		GeneratedAt: run.CreatedAt.UTC().Format(time.RFC3339),
		Weights:     run.Weights,
		Accounts:    accounts,
	}
}

// Write serializes run to w. FormatTable is rendered elsewhere and rejected here.
func Write(w io.Writer, format Format, run domain.AnalysisRun) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(run)); err != nil {
			return fmt.Errorf("encode json export: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(run)); err != nil {
			return fmt.Errorf("encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml export: %w", err)
		}
		return nil
	case FormatCSV:
		return writeCSV(w, run.Accounts)
	default:
		return fmt.Errorf("format %q is not a file export", format)
	}
}

var csvHeader = []string{"rank", "did", "handle", "display_name", "score", "likes", "replies", "reposts", "mentions", "quotes"}

func writeCSV(w io.Writer, accounts []domain.RankedAccount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, account := range accounts {
		record := []string{
			strconv.Itoa(i + 1),
			account.DID,
			account.Handle,
			account.DisplayName,
			strconv.FormatFloat(account.Score, 'f', -1, 64),
			strconv.Itoa(account.Counts.Likes),
			strconv.Itoa(account.Counts.Replies),
			strconv.Itoa(account.Counts.Reposts),
			strconv.Itoa(account.Counts.Mentions),
			strconv.Itoa(account.Counts.Quotes),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv export: %w", err)
	}
	return nil
}
