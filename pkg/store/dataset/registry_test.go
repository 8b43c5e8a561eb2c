package dataset

import (
	"context"
	"testing"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	opts Options
}

func (s *stubLoader) Load(_ context.Context, _ string) ([]store.RawRecord, store.LoadStats, error) {
	return nil, store.LoadStats{}, nil
}

func TestRegistry(t *testing.T) {
	t.Run("create by extension", func(t *testing.T) {
		r := DefaultRegistry()

		for _, path := range []string{"a.csv", "B.CSV", "c.txt", "d.tsv", "e.xlsx"} {
			loader, err := r.Create(path, Options{})
			require.NoError(t, err, path)
			assert.NotNil(t, loader)
		}
		assert.Equal(t, []string{".csv", ".tsv", ".txt", ".xlsx"}, r.ListFormats())
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := DefaultRegistry().Create("orders.parquet", Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".parquet")
	})

	t.Run("register", func(t *testing.T) {
		r := NewRegistry(nil)

		require.NoError(t, r.Register("json", func(opts Options) Loader { return &stubLoader{opts: opts} }))
		assert.Error(t, r.Register(".json", func(opts Options) Loader { return &stubLoader{opts: opts} }))
		assert.Error(t, r.Register("", func(opts Options) Loader { return &stubLoader{opts: opts} }))
		assert.Error(t, r.Register(".yaml", nil))

		loader, err := r.Create("rows.JSON", Options{Sheet: "x"})
		require.NoError(t, err)
		assert.Equal(t, "x", loader.(*stubLoader).opts.Sheet)
	})

	t.Run("aliases", func(t *testing.T) {
		r := DefaultRegistry()

		require.NoError(t, RegisterAliases(r, map[string]string{"dat": "csv", ".PSV": "tsv", "xlsm": "xlsx"}))
		assert.Equal(t, []string{".csv", ".dat", ".psv", ".tsv", ".txt", ".xlsm", ".xlsx"}, r.ListFormats())

		loader, err := r.Create("orders.dat", Options{})
		require.NoError(t, err)
		assert.Equal(t, ',', loader.(*csvLoader).opts.Delimiter)

		loader, err = r.Create("orders.psv", Options{})
		require.NoError(t, err)
		assert.Equal(t, '\t', loader.(*csvLoader).opts.Delimiter)
	})

	t.Run("alias errors", func(t *testing.T) {
		err := RegisterAliases(DefaultRegistry(), map[string]string{"dat": "parquet"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parquet")

		err = RegisterAliases(DefaultRegistry(), map[string]string{"csv": "tsv"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")

		assert.NoError(t, RegisterAliases(DefaultRegistry(), nil))
	})

	t.Run("default delimiters", func(t *testing.T) {
		assert.Equal(t, ',', NewCSVLoader(Options{}).(*csvLoader).opts.Delimiter)
		assert.Equal(t, '\t', NewTSVLoader(Options{}).(*csvLoader).opts.Delimiter)
		assert.Equal(t, ';', NewTSVLoader(Options{Delimiter: ';'}).(*csvLoader).opts.Delimiter)
	})
}
