// Schema-aware CSV writer/reader for lead exports.
//
// Exports are write-once: one file per pipeline run, named by timestamp.
// The reader tolerates three on-disk generations: the legacy
// single-column URL list, the mid generation without name columns, and
// the current full format.

package store

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bilalahmed15/sales-navigator/internal/leads"
)

var baseColumns = []string{"identifier", "first_name", "last_name", "headline", "about"}
var scoringColumns = []string{"match", "reason", "relevance_score"}

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Write persists the records as a new timestamped export. The column set
// is fixed at write time: the base columns always, the relevance columns
// only when the run requested scoring. Records missing a declared field
// are filled with that field's default.
func (s *Store) Write(records []leads.LeadRecord, scored bool) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create exports directory: %w", err)
	}

	filename := fmt.Sprintf("leads_%s.csv", time.Now().Format("20060102_150405"))

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	columns := baseColumns
	if scored {
		columns = append(append([]string{}, baseColumns...), scoringColumns...)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range records {
		row := []string{rec.Identifier, rec.FirstName, rec.LastName, rec.Headline, rec.About}
		if scored {
			match := rec.Match
			if match == "" {
				match = leads.MatchNo
			}
			row = append(row,
				string(match),
				rec.Reason,
				strconv.FormatFloat(rec.RelevanceScore, 'f', -1, 64),
			)
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}

	return filename, nil
}

// Read loads an export back into canonical records. Whatever generation
// the file is, every returned record carries the full field set, with
// absent columns at their defaults. Any read failure yields an empty
// slice; callers treat "no data" and "empty extraction" identically.
func (s *Store) Read(filename string) []leads.LeadRecord {
	path, err := s.Path(filename)
	if err != nil {
		log.Printf("⚠️ Refusing to read export %q: %v", filename, err)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("⚠️ Error reading export %q: %v", filename, err)
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		log.Printf("⚠️ Error reading export header %q: %v", filename, err)
		return nil
	}

	cols := columnIndex(header)
	if _, ok := cols["identifier"]; !ok {
		log.Printf("⚠️ Export %q has no identifier column", filename)
		return nil
	}

	var records []leads.LeadRecord
	for {
		row, err := r.Read()
		if err != nil {
			// io.EOF ends the file; anything else ends what we can
			// salvage of it.
			break
		}
		records = append(records, recordFromRow(cols, row))
	}
	return records
}

// Path resolves an export filename inside the store directory, rejecting
// anything that would escape it.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid export filename %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}

// columnIndex maps canonical column names to positions, folding the
// legacy aliases onto their modern names.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "identifier", "url", "LinkedIn Profile URL":
			cols["identifier"] = i
		case "relevance_score", "score":
			cols["relevance_score"] = i
		case "first_name", "last_name", "headline", "about", "match", "reason":
			cols[strings.TrimSpace(name)] = i
		}
	}
	return cols
}

func recordFromRow(cols map[string]int, row []string) leads.LeadRecord {
	cell := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	rec := leads.LeadRecord{Match: leads.MatchNo}
	if v, ok := cell("identifier"); ok {
		rec.Identifier = v
	}
	if v, ok := cell("first_name"); ok {
		rec.FirstName = v
	}
	if v, ok := cell("last_name"); ok {
		rec.LastName = v
	}
	if v, ok := cell("headline"); ok {
		rec.Headline = v
	}
	if v, ok := cell("about"); ok {
		rec.About = v
	}
	if v, ok := cell("match"); ok && strings.EqualFold(strings.TrimSpace(v), "YES") {
		rec.Match = leads.MatchYes
	}
	if v, ok := cell("reason"); ok {
		rec.Reason = v
	}
	if v, ok := cell("relevance_score"); ok {
		// Malformed score cells default to 0 rather than failing the read.
		if score, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			rec.RelevanceScore = score
		}
	}
	return rec
}
