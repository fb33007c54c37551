package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestReadCreatesEmptyCollection(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	var docs []doc
	err = s.Read(CollectionProducts, &docs)

	assert.NoError(t, err)
	assert.Empty(t, docs)

	// The collection file must exist after the first read.
	_, statErr := os.Stat(filepath.Join(s.dir, "products.json"))
	assert.NoError(t, statErr)
}

func TestWriteThenRead(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	in := []doc{{ID: "1", Name: "vase"}, {ID: "2", Name: "lamp"}}
	require.NoError(t, s.Write(CollectionProducts, in))

	var out []doc
	require.NoError(t, s.Read(CollectionProducts, &out))
	assert.Equal(t, in, out)
}

func TestWriteReplacesWholeCollection(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Write(CollectionOrders, []doc{{ID: "1"}, {ID: "2"}}))
	require.NoError(t, s.Write(CollectionOrders, []doc{{ID: "3"}}))

	var out []doc
	require.NoError(t, s.Read(CollectionOrders, &out))
	assert.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)
}
