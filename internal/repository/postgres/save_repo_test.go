package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/statecraft/internal/model"
	"github.com/freeeve/statecraft/internal/repository"
)

func newMockRepo(t *testing.T) (*SaveRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSaveRepo(db), mock
}

func TestSaveRepoSaveUpserts(t *testing.T) {
	repo, mock := newMockRepo(t)
	at := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	snap := json.RawMessage(`{"turn":3}`)

	mock.ExpectExec(`INSERT INTO saves .* ON CONFLICT \(name\) DO UPDATE`).
		WithArgs("slot", "sess", 3, "France", []byte(snap), at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), model.SaveMeta{
		Name: "slot", SessionID: "sess", Turn: 3, PlayerCountry: "France", SavedAt: at,
	}, snap)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRepoSaveRejectsBadName(t *testing.T) {
	repo, mock := newMockRepo(t)

	err := repo.Save(context.Background(), model.SaveMeta{Name: "../x"}, json.RawMessage(`{}`))
	assert.ErrorIs(t, err, repository.ErrInvalidSaveName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRepoLoadMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT snapshot FROM saves WHERE name = \$1`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"snapshot"}))

	got, err := repo.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveRepoLoad(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT snapshot FROM saves`).
		WithArgs("slot").
		WillReturnRows(sqlmock.NewRows([]string{"snapshot"}).AddRow([]byte(`{"turn":7}`)))

	got, err := repo.Load(context.Background(), "slot")
	require.NoError(t, err)
	assert.JSONEq(t, `{"turn":7}`, string(got))
}

func TestSaveRepoLoadError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT snapshot FROM saves`).WillReturnError(errors.New("boom"))

	_, err := repo.Load(context.Background(), "slot")
	assert.ErrorContains(t, err, "load snapshot")
}

func TestSaveRepoList(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"name", "session_id", "turn", "player_country", "saved_at"}).
		AddRow("b", "s2", 9, "France", now).
		AddRow("a", "s1", 2, "Italie", now.Add(-time.Hour))
	mock.ExpectQuery(`SELECT name, session_id, turn, player_country, saved_at\s+FROM saves ORDER BY saved_at DESC`).
		WillReturnRows(rows)

	saves, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, saves, 2)
	assert.Equal(t, "b", saves[0].Name)
	assert.Equal(t, 9, saves[0].Turn)
	assert.Equal(t, "Italie", saves[1].PlayerCountry)
}

func TestSaveRepoDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM saves WHERE name = \$1`).
		WithArgs("slot").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM saves WHERE name = \$1`).
		WithArgs("slot").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), "slot")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), "slot")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS saves`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
