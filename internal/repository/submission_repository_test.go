package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/Numbat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ProblemSession{}, &model.Submission{}))
	return db
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)

	session := &model.ProblemSession{ProblemText: "What is 6 x 7?", CorrectAnswer: 42}
	require.NoError(t, repo.Create(session))
	require.NotZero(t, session.ID)
	assert.False(t, session.CreatedAt.IsZero())

	found, err := repo.FindByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ProblemText, found.ProblemText)
	assert.Equal(t, 42.0, found.CorrectAnswer)

	_, err = repo.FindByID(session.ID + 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindFilteredOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	older := model.Submission{SessionID: 1, ProblemText: "p", CreatedAt: base}
	newer := model.Submission{SessionID: 1, ProblemText: "p", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	rows, err := repo.FindFiltered(nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].ID)
	assert.Equal(t, older.ID, rows[1].ID)
}

func TestFindFilteredTieBreakOnID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	first := model.Submission{SessionID: 1, ProblemText: "p", CreatedAt: at}
	second := model.Submission{SessionID: 1, ProblemText: "p", CreatedAt: at}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	require.Greater(t, second.ID, first.ID)

	rows, err := repo.FindFiltered(nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Equal timestamps: most recently assigned id wins.
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Equal(t, first.ID, rows[1].ID)
}

func TestFindFilteredCombinableFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)

	rows := []model.Submission{
		{SessionID: 1, UserIdentifier: "alice", ProblemText: "p"},
		{SessionID: 1, UserIdentifier: "bob", ProblemText: "p"},
		{SessionID: 2, UserIdentifier: "alice", ProblemText: "p"},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	sessionID := uint(1)
	bySession, err := repo.FindFiltered(&sessionID, nil)
	require.NoError(t, err)
	assert.Len(t, bySession, 2)
	for _, row := range bySession {
		assert.Equal(t, sessionID, row.SessionID)
	}

	user := "alice"
	byUser, err := repo.FindFiltered(nil, &user)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	both, err := repo.FindFiltered(&sessionID, &user)
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, rows[0].ID, both[0].ID)

	missingUser := "carol"
	none, err := repo.FindFiltered(nil, &missingUser)
	require.NoError(t, err)
	assert.Empty(t, none)
}
