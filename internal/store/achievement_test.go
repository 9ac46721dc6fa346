package store

import (
	"testing"
	"time"

	"github.com/dveras/focado/internal/database"
)

func setupAchievementTestDB(t *testing.T) (*AchievementStore, *UserStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewAchievementStore(db), NewUserStore(db)
}

func TestAchievementCreateLockedAndUnlocked(t *testing.T) {
	as, us := setupAchievementTestDB(t)
	user := mustCreateUser(t, us, "rita")

	locked, err := as.Create(user.ID, "Productivity Master", "Complete 100 Pomodoro sessions", "productivity", 100, 0, nil, false)
	if err != nil {
		t.Fatalf("create locked achievement: %v", err)
	}
	if locked.IsUnlocked {
		t.Error("is_unlocked should be false")
	}
	if locked.AchievedAt != nil {
		t.Error("achieved_at should be nil for a locked row")
	}
	if locked.TotalSessionsRequired != 100 {
		t.Errorf("total_sessions_required = %d, want 100", locked.TotalSessionsRequired)
	}

	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	unlocked, err := as.Create(user.ID, "Beginner Pomodoro", "Complete 5 Pomodoro sessions", "productivity", 5, 0, &at, true)
	if err != nil {
		t.Fatalf("create unlocked achievement: %v", err)
	}
	if !unlocked.IsUnlocked {
		t.Error("is_unlocked should be true")
	}
	if unlocked.AchievedAt == nil || !unlocked.AchievedAt.Equal(at) {
		t.Errorf("achieved_at = %v, want %v", unlocked.AchievedAt, at)
	}
}

func TestAchievementListUnlockedFilters(t *testing.T) {
	as, us := setupAchievementTestDB(t)
	user := mustCreateUser(t, us, "sami")

	at := time.Now().UTC()
	if _, err := as.Create(user.ID, "Beginner Pomodoro", "", "productivity", 5, 0, &at, true); err != nil {
		t.Fatalf("create achievement: %v", err)
	}
	if _, err := as.Create(user.ID, "Productivity Master", "", "productivity", 100, 0, nil, false); err != nil {
		t.Fatalf("create achievement: %v", err)
	}

	all, err := as.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d rows, want 2", len(all))
	}

	unlocked, err := as.ListUnlockedByUser(user.ID)
	if err != nil {
		t.Fatalf("list unlocked: %v", err)
	}
	if len(unlocked) != 1 {
		t.Fatalf("got %d unlocked rows, want 1", len(unlocked))
	}
	if unlocked[0].Title != "Beginner Pomodoro" {
		t.Errorf("title = %q, want %q", unlocked[0].Title, "Beginner Pomodoro")
	}
}
