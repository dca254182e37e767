package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryDocumentRepoRoundTrip(t *testing.T) {
	repo := NewMemoryDocumentRepo()
	ctx := context.Background()

	_, err := repo.GetDocument(ctx, "slo_groups_v1")
	require.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, repo.PutDocument(ctx, "slo_groups_v1", []byte(`[]`)))
	body, err := repo.GetDocument(ctx, "slo_groups_v1")
	require.NoError(t, err)
	require.Equal(t, `[]`, string(body))

	require.NoError(t, repo.PutDocument(ctx, "slo_groups_v1", []byte(`[{"id":"g-1"}]`)))
	body, err = repo.GetDocument(ctx, "slo_groups_v1")
	require.NoError(t, err)
	require.Equal(t, `[{"id":"g-1"}]`, string(body))
}

func TestMemoryDocumentRepoDelete(t *testing.T) {
	repo := NewMemoryDocumentRepo()
	ctx := context.Background()

	require.NoError(t, repo.DeleteDocument(ctx, "missing"))
	require.NoError(t, repo.PutDocument(ctx, "k", []byte(`{}`)))
	require.NoError(t, repo.DeleteDocument(ctx, "k"))

	_, err := repo.GetDocument(ctx, "k")
	require.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestMemoryDocumentRepoCopiesBodies(t *testing.T) {
	repo := NewMemoryDocumentRepo()
	ctx := context.Background()

	body := []byte(`{"a":1}`)
	require.NoError(t, repo.PutDocument(ctx, "k", body))
	body[0] = 'x'

	got, err := repo.GetDocument(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(got))
}
