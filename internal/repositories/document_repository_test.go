package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDocumentRepo(t *testing.T) (*DocumentRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDocumentRepo(sqlx.NewDb(db, "postgres")), mock
}

var selectDocument = regexp.QuoteMeta(`SELECT body FROM documents WHERE key=$1`)

func TestDocumentRepoGetMissingIsNotFound(t *testing.T) {
	repo, mock := newMockDocumentRepo(t)

	mock.ExpectQuery(selectDocument).WithArgs("slo_groups_v1").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	_, err := repo.GetDocument(context.Background(), "slo_groups_v1")
	require.ErrorIs(t, err, ErrDocumentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepoGetReturnsBody(t *testing.T) {
	repo, mock := newMockDocumentRepo(t)

	mock.ExpectQuery(selectDocument).WithArgs("slo_meetings_v1").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow(`[{"id":"m-1"}]`))

	body, err := repo.GetDocument(context.Background(), "slo_meetings_v1")
	require.NoError(t, err)
	require.Equal(t, `[{"id":"m-1"}]`, string(body))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepoGetPropagatesQueryErrors(t *testing.T) {
	repo, mock := newMockDocumentRepo(t)

	mock.ExpectQuery(selectDocument).WithArgs("k").WillReturnError(errors.New("connection reset"))

	_, err := repo.GetDocument(context.Background(), "k")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentRepoPutUpserts(t *testing.T) {
	repo, mock := newMockDocumentRepo(t)

	mock.ExpectExec(`(?s)INSERT INTO documents \(key, body, updated_at\).*ON CONFLICT \(key\) DO UPDATE SET body = EXCLUDED.body`).
		WithArgs("slo_feed_likes_v1", `{"f1":true}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.PutDocument(context.Background(), "slo_feed_likes_v1", []byte(`{"f1":true}`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepoDelete(t *testing.T) {
	repo, mock := newMockDocumentRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE key=$1`)).WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE key=$1`)).WithArgs("k").
		WillReturnError(errors.New("read-only transaction"))

	require.NoError(t, repo.DeleteDocument(context.Background(), "k"))
	require.Error(t, repo.DeleteDocument(context.Background(), "k"))
	require.NoError(t, mock.ExpectationsWereMet())
}
