package pomodoro

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dveras/focado/internal/clock"
	"github.com/dveras/focado/internal/database"
	"github.com/dveras/focado/internal/model"
	"github.com/dveras/focado/internal/store"
)

var testNow = time.Date(2026, 7, 14, 9, 30, 0, 0, time.UTC)

func setupService(t *testing.T) (*Service, *store.SessionStore, *store.ProjectStore, *store.UserStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sessions := store.NewSessionStore(db)
	projects := store.NewProjectStore(db)
	users := store.NewUserStore(db)
	svc := NewService(sessions, clock.Fixed{T: testNow}, slog.Default())
	return svc, sessions, projects, users
}

func createUser(t *testing.T, users *store.UserStore) *model.User {
	t.Helper()
	u, err := users.Create("tester", "tester@example.com", "hash")
	require.NoError(t, err)
	return u
}

func TestStartAppliesDefaults(t *testing.T) {
	svc, _, _, users := setupService(t)
	user := createUser(t, users)

	sess, err := svc.Start(user.ID, nil, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultWorkDuration, sess.WorkDuration)
	assert.Equal(t, DefaultBreakDuration, sess.BreakDuration)
	assert.Equal(t, model.SessionStatusRunning, sess.Status)
	assert.Equal(t, model.SessionModeWork, sess.Mode)
	assert.True(t, sess.StartTime.Equal(testNow))
	assert.Nil(t, sess.EndTime)
}

func TestCompleteRecordsSecondsAndCreditsProject(t *testing.T) {
	svc, _, projects, users := setupService(t)
	user := createUser(t, users)

	project, err := projects.Create(user.ID, "Deep Work", "", model.ProjectStatusActive)
	require.NoError(t, err)

	sess, err := svc.Start(user.ID, &project.ID, 25, 5)
	require.NoError(t, err)

	done, err := svc.Complete(sess.ID, model.SessionModeWork, 25)
	require.NoError(t, err)

	assert.True(t, done.IsCompleted)
	assert.Equal(t, model.SessionStatusCompleted, done.Status)
	assert.Equal(t, 25*60, done.TotalWorkTime)
	require.NotNil(t, done.EndTime)
	assert.True(t, done.EndTime.Equal(testNow))

	got, err := projects.GetByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalPomodoroSessions)
	assert.Equal(t, 25, got.TotalWorkTime) // minutes
}

func TestCompleteDefaultsModeAndTotalTime(t *testing.T) {
	svc, _, _, users := setupService(t)
	user := createUser(t, users)

	sess, err := svc.Start(user.ID, nil, 25, 5)
	require.NoError(t, err)

	done, err := svc.Complete(sess.ID, "", 0)
	require.NoError(t, err)

	assert.Equal(t, model.SessionModeWork, done.Mode)
	assert.Equal(t, DefaultTotalTime*60, done.TotalWorkTime)
}

func TestCompleteUnknownSession(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.Complete(9999, model.SessionModeWork, 25)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStopLeavesProjectTotals(t *testing.T) {
	svc, _, projects, users := setupService(t)
	user := createUser(t, users)

	project, err := projects.Create(user.ID, "Reading", "", model.ProjectStatusActive)
	require.NoError(t, err)

	sess, err := svc.Start(user.ID, &project.ID, 25, 5)
	require.NoError(t, err)

	stopped, err := svc.Stop(sess.ID)
	require.NoError(t, err)

	assert.Equal(t, model.SessionStatusInterrupted, stopped.Status)
	assert.False(t, stopped.IsCompleted)
	require.NotNil(t, stopped.EndTime)

	got, err := projects.GetByID(project.ID)
	require.NoError(t, err)
	assert.Zero(t, got.TotalPomodoroSessions)
	assert.Zero(t, got.TotalWorkTime)
}

func TestPauseUnknownSession(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.Pause(9999)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// Pausing a completed session succeeds and overwrites the status; the
// lifecycle has no terminal-state guard on purpose.
func TestPauseAfterCompleteOverwritesStatus(t *testing.T) {
	svc, _, _, users := setupService(t)
	user := createUser(t, users)

	sess, err := svc.Start(user.ID, nil, 25, 5)
	require.NoError(t, err)

	_, err = svc.Complete(sess.ID, model.SessionModeWork, 25)
	require.NoError(t, err)

	paused, err := svc.Pause(sess.ID)
	require.NoError(t, err)

	assert.Equal(t, model.SessionStatusPaused, paused.Status)
	// Everything else from the completion persists.
	assert.True(t, paused.IsCompleted)
	assert.NotNil(t, paused.EndTime)
	assert.Equal(t, 25*60, paused.TotalWorkTime)
}
