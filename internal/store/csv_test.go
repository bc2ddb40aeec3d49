package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilalahmed15/sales-navigator/internal/leads"
)

func sampleRecords() []leads.LeadRecord {
	return []leads.LeadRecord{
		{
			Identifier:     "https://www.linkedin.com/sales/lead/alice",
			FirstName:      "Alice",
			LastName:       "Nguyen",
			Headline:       "Coatings Engineer",
			About:          "20 years in marine anti-corrosion systems",
			Match:          leads.MatchYes,
			Reason:         "strong overlap",
			RelevanceScore: 0.9,
		},
		{
			Identifier: "https://www.linkedin.com/sales/lead/bob",
			FirstName:  "Bob",
			LastName:   "Tran",
			Headline:   "Barista",
			Match:      leads.MatchNo,
		},
	}
}

func TestWriteReadRoundTripScored(t *testing.T) {
	s := New(t.TempDir())

	filename, err := s.Write(sampleRecords(), true)
	require.NoError(t, err)
	assert.Regexp(t, `^leads_\d{8}_\d{6}\.csv$`, filename)

	got := s.Read(filename)
	require.Len(t, got, 2)
	assert.Equal(t, sampleRecords(), got)
}

func TestWriteReadRoundTripUnscored(t *testing.T) {
	s := New(t.TempDir())

	filename, err := s.Write(sampleRecords(), false)
	require.NoError(t, err)

	got := s.Read(filename)
	require.Len(t, got, 2)

	// Scoring fields were not part of this export's schema and must
	// reconstruct to their defaults.
	assert.Equal(t, "Alice", got[0].FirstName)
	assert.Equal(t, leads.MatchNo, got[0].Match)
	assert.Empty(t, got[0].Reason)
	assert.Zero(t, got[0].RelevanceScore)
}

func TestWriteUnscoredOmitsRelevanceColumns(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	filename, err := s.Write(sampleRecords(), false)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "identifier,first_name,last_name,headline,about\n")
	assert.NotContains(t, string(data), "relevance_score")
}

func writeRaw(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestReadLegacySingleColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"url header", "url"},
		{"original header", "LinkedIn Profile URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeRaw(t, dir, "leads_20240101_000000.csv",
				tt.header+"\nhttps://example.com/lead/1\nhttps://example.com/lead/2\n")

			got := New(dir).Read("leads_20240101_000000.csv")
			require.Len(t, got, 2)
			assert.Equal(t, "https://example.com/lead/1", got[0].Identifier)
			assert.Empty(t, got[0].FirstName)
			assert.Empty(t, got[0].Headline)
			assert.Equal(t, leads.MatchNo, got[0].Match)
			assert.Zero(t, got[0].RelevanceScore)
		})
	}
}

func TestReadMidGenerationWithoutNames(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "leads_20240101_000000.csv",
		"url,headline,about,match,reason,score\n"+
			"https://example.com/lead/1,CEO,Runs a shipyard,YES,good fit,0.85\n")

	got := New(dir).Read("leads_20240101_000000.csv")
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com/lead/1", got[0].Identifier)
	assert.Empty(t, got[0].FirstName)
	assert.Empty(t, got[0].LastName)
	assert.Equal(t, "CEO", got[0].Headline)
	assert.Equal(t, leads.MatchYes, got[0].Match)
	assert.Equal(t, 0.85, got[0].RelevanceScore)
}

func TestReadMalformedScoreDefaultsToZero(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "leads_20240101_000000.csv",
		"url,headline,about,match,reason,score\n"+
			"https://example.com/lead/1,CEO,,YES,ok,not-a-number\n")

	got := New(dir).Read("leads_20240101_000000.csv")
	require.Len(t, got, 1)
	assert.Zero(t, got[0].RelevanceScore)
	assert.Equal(t, leads.MatchYes, got[0].Match)
}

func TestReadMissingFileYieldsEmpty(t *testing.T) {
	got := New(t.TempDir()).Read("leads_19990101_000000.csv")
	assert.Empty(t, got)
}

func TestReadUnknownHeaderYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "weird.csv", "foo,bar\n1,2\n")

	assert.Empty(t, New(dir).Read("weird.csv"))
}

func TestPathRejectsTraversal(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.Path("../secrets.csv")
	assert.Error(t, err)

	_, err = s.Path("")
	assert.Error(t, err)

	path, err := s.Path("leads_20240101_000000.csv")
	assert.NoError(t, err)
	assert.Contains(t, path, "leads_20240101_000000.csv")
}

func TestWriteFillsMissingScoredFields(t *testing.T) {
	s := New(t.TempDir())

	records := []leads.LeadRecord{{Identifier: "https://example.com/lead/1"}}
	filename, err := s.Write(records, true)
	require.NoError(t, err)

	got := s.Read(filename)
	require.Len(t, got, 1)
	assert.Equal(t, leads.MatchNo, got[0].Match)
	assert.Empty(t, got[0].Reason)
	assert.Zero(t, got[0].RelevanceScore)
}
