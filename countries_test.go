package countries

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// testRepository loads the embedded dataset.
func testRepository(t testing.TB) *Repository {
	t.Helper()
	repo, err := New()
	require.NoError(t, err)
	return repo
}

func TestNewEmbeddedDataset(t *testing.T) {
	repo := testRepository(t)
	assert.Greater(t, repo.Len(), 30)

	ca, ok := repo.GetByCode("CA")
	require.True(t, ok)
	assert.Equal(t, "Canada", ca.CommonName())
}

func TestNewWithDataFile(t *testing.T) {
	repo, err := New(WithDataFile("testdata/canada-only.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Len())

	_, ok := repo.GetByCode("CA")
	assert.True(t, ok)
	_, ok = repo.GetByCode("JP")
	assert.False(t, ok, "a replacement dataset must not fall back to the embedded one")
}

func TestNewDataFileErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		target error
	}{
		{"missing file", "testdata/does-not-exist.json", ErrDataFileNotFound},
		{"empty dataset", "testdata/empty.json", ErrEmptyDataset},
		{"invalid json", "testdata/invalid.json", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := New(WithDataFile(tt.path))
			require.Error(t, err)
			assert.Nil(t, repo)
			assert.Contains(t, err.Error(), tt.path)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestNewRejectsDuplicateCodes(t *testing.T) {
	data, err := os.ReadFile("testdata/canada-only.json")
	require.NoError(t, err)

	var records []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &records))
	// Two copies of the same record violate alpha-2 uniqueness.
	doubled, err := json.Marshal(append(records, records[0]))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "doubled.json")
	require.NoError(t, os.WriteFile(path, doubled, 0644))

	_, err = New(WithDataFile(path))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataset)
	assert.Contains(t, err.Error(), `duplicate cca2 "CA"`)
}

func TestNewBzip2DataFileMissing(t *testing.T) {
	_, err := New(WithDataFile(filepath.Join(t.TempDir(), "countries.json.bz2")))
	assert.ErrorIs(t, err, ErrDataFileNotFound)
}

func TestNewFromRecordsCopiesInput(t *testing.T) {
	records := testRepository(t).GetRawData()
	repo, err := NewFromRecords(records)
	require.NoError(t, err)

	records[1].Name.Common = "Changed"
	ca, ok := repo.GetByCode("CA")
	require.True(t, ok)
	assert.Equal(t, "Canada", ca.CommonName())

	_, err = NewFromRecords(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestNewLogsDatasetAudit(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	records := []CountryRecord{{CCA2: "ZZ", CCA3: "ZZZ", Name: Name{Common: "Nowhere"}}}

	_, err := NewFromRecords(records, WithLogger(zap.New(core)))
	require.NoError(t, err)

	audit := logs.FilterMessage("countries without currencies").All()
	require.Len(t, audit, 1)
	assert.Equal(t, []interface{}{"ZZ (Nowhere)"}, audit[0].ContextMap()["countries"])
	assert.Equal(t, 1, logs.FilterMessage("dataset loaded").Len())
}

func TestRegions(t *testing.T) {
	repo := testRepository(t)
	total := 0
	for _, region := range Regions() {
		n := repo.GetByRegion(region).Len()
		assert.NotZero(t, n, region)
		total += n
	}
	assert.Equal(t, repo.Len(), total, "every record belongs to a known region")
}
