package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/pokemon-sandwich/suggester/internal/effect"
	"github.com/pokemon-sandwich/suggester/internal/generator"
	"github.com/pokemon-sandwich/suggester/internal/ingredient"
)

// resultRow is one discovered recipe flattened for CSV output (spec §6's
// column list: effect1..3, filling1..6, condiment1..4, score).
type resultRow struct {
	Effects    [3]string
	Fillings   []string
	Condiments []string
	Score      float64

	numFillings   int
	totalPieces   int
	numCondiments int
}

func rowsFromResults(table *ingredient.Table, results []generator.Result) []resultRow {
	rows := make([]resultRow, 0, len(results))
	for _, r := range results {
		ss := r.State
		effects := ss.Evaluator.Evaluate(ss.Recipe)

		var effectStrs [3]string
		for i, e := range effects {
			effectStrs[i] = formatEffect(e)
		}

		rows = append(rows, resultRow{
			Effects:       effectStrs,
			Fillings:      ss.Recipe.FillingNames(),
			Condiments:    ss.Recipe.CondimentNames(),
			Score:         ss.Reward(),
			numFillings:   ss.Recipe.NumFillings(),
			totalPieces:   ss.Recipe.TotalPieces(),
			numCondiments: ss.Recipe.NumCondiments(),
		})
	}
	return rows
}

func formatEffect(e effect.Effect) string {
	power := strings.ToLower(e.Power.String())
	if e.Type == nil {
		return fmt.Sprintf("%s(L%d)", power, e.Level)
	}
	return fmt.Sprintf("%s,%s(L%d)", power, strings.ToLower(e.Type.String()), e.Level)
}

// sortRows orders rows by descending score, then ascending filling count,
// total pieces, and condiment count (spec §6's CSV ordering).
func sortRows(rows []resultRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.numFillings != b.numFillings {
			return a.numFillings < b.numFillings
		}
		if a.totalPieces != b.totalPieces {
			return a.totalPieces < b.totalPieces
		}
		return a.numCondiments < b.numCondiments
	})
}

// writeCSV writes rows to path, or to stdout when path is "-".
func writeCSV(path string, rows []resultRow) error {
	var out *os.File
	if path == "" || path == "-" {
		out = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writer := csv.NewWriter(out)

	header := []string{
		"effect1", "effect2", "effect3",
		"filling1", "filling2", "filling3", "filling4", "filling5", "filling6",
		"condiment1", "condiment2", "condiment3", "condiment4",
		"score",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Effects[0], row.Effects[1], row.Effects[2])
		record = append(record, padTo(row.Fillings, 6)...)
		record = append(record, padTo(row.Condiments, 4)...)
		record = append(record, strconv.FormatFloat(row.Score, 'f', 6, 64))

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}
	return nil
}

func padTo(names []string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n && i < len(names); i++ {
		out[i] = names[i]
	}
	return out
}

// summaryEntry is the shape written by --summary-format (json/yaml): a
// compact, human-browsable view of the CSV's top rows, for use in
// notebooks or chat tooling that would rather not parse CSV.
type summaryEntry struct {
	Effects    [3]string `json:"effects" yaml:"effects"`
	Fillings   []string  `json:"fillings" yaml:"fillings"`
	Condiments []string  `json:"condiments" yaml:"condiments"`
	Score      float64   `json:"score" yaml:"score"`
}

// writeSummary writes the top n rows as JSON or YAML to stdout, in
// addition to the mandatory CSV output (spec §6's CSV requirement is
// unaffected; this is an additional, optional view). An empty format is a
// no-op; any value other than "json" or "yaml" returns an error.
func writeSummary(format string, rows []resultRow, n int) error {
	if format == "" {
		return nil
	}
	if n > len(rows) {
		n = len(rows)
	}

	entries := make([]summaryEntry, 0, n)
	for _, row := range rows[:n] {
		entries = append(entries, summaryEntry{
			Effects:    row.Effects,
			Fillings:   row.Fillings,
			Condiments: row.Condiments,
			Score:      row.Score,
		})
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary to JSON: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal summary to YAML: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown summary format %q: expected \"json\" or \"yaml\"", format)
	}
	return nil
}
