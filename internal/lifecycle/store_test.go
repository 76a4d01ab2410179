package lifecycle_test

import (
	"testing"

	"go-outpass/internal/domain"
	"go-outpass/internal/lifecycle"
	lifecycleerrors "go-outpass/internal/lifecycle/errors"

	"github.com/stretchr/testify/assert"
)

func pendingOuting(id, studentID string) domain.OutingRequest {
	return domain.OutingRequest{
		ID:         id,
		StudentID:  studentID,
		Date:       "2024-06-01",
		Time:       "09:00",
		ReturnTime: "12:00",
		Reason1:    "B01",
	}
}

func TestStore_AppendOuting(t *testing.T) {
	store := lifecycle.NewStore()

	r := pendingOuting("o-1", "20240101")
	r.Status = domain.StatusCompleted // must be ignored
	r.Seq = 42
	store.AppendOuting(r)

	got := store.OutingsFor("20240101")
	assert.Len(t, got, 1)
	assert.Equal(t, domain.StatusPending, got[0].Status)
	assert.Equal(t, 0, got[0].Seq)
	assert.Empty(t, got[0].ActualReturnTime)
}

func TestStore_OutingsFor_ScopesByStudent(t *testing.T) {
	store := lifecycle.NewStore()
	store.AppendOuting(pendingOuting("o-1", "alice"))
	store.AppendOuting(pendingOuting("o-2", "bob"))
	store.AppendOuting(pendingOuting("o-3", "alice"))

	got := store.OutingsFor("alice")
	assert.Len(t, got, 2)
	assert.Equal(t, "o-1", got[0].ID)
	assert.Equal(t, "o-3", got[1].ID)
}

func TestStore_MarkOutingCompleted(t *testing.T) {
	t.Run("pending transitions and stamps return time", func(t *testing.T) {
		store := lifecycle.NewStore()
		store.AppendOuting(pendingOuting("o-1", "alice"))

		err := store.MarkOutingCompleted("o-1", "17:40")
		assert.NoError(t, err)

		got, err := store.FindOuting("o-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, got.Status)
		assert.Equal(t, "17:40", got.ActualReturnTime)
	})

	t.Run("second completion is rejected and state is unchanged", func(t *testing.T) {
		store := lifecycle.NewStore()
		store.AppendOuting(pendingOuting("o-1", "alice"))
		assert.NoError(t, store.MarkOutingCompleted("o-1", "17:40"))

		err := store.MarkOutingCompleted("o-1", "18:00")
		assert.ErrorIs(t, err, lifecycleerrors.ErrAlreadyCompleted)

		got, _ := store.FindOuting("o-1")
		assert.Equal(t, "17:40", got.ActualReturnTime)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := lifecycle.NewStore()
		err := store.MarkOutingCompleted("missing", "17:40")
		assert.ErrorIs(t, err, lifecycleerrors.ErrRequestNotFound)
	})

	t.Run("empty return time is rejected", func(t *testing.T) {
		store := lifecycle.NewStore()
		store.AppendOuting(pendingOuting("o-1", "alice"))
		err := store.MarkOutingCompleted("o-1", "")
		assert.ErrorIs(t, err, lifecycleerrors.ErrMissingActualReturn)
	})
}

func TestStore_ReplaceOutings(t *testing.T) {
	store := lifecycle.NewStore()
	store.AppendOuting(pendingOuting("local", "alice"))

	store.ReplaceOutings([]domain.OutingRequest{
		{ID: "2024-06-01_09:00", StudentID: "alice", Seq: 3, Status: domain.StatusPending},
	})

	got := store.OutingsFor("alice")
	assert.Len(t, got, 1)
	assert.Equal(t, "2024-06-01_09:00", got[0].ID)

	store.ReplaceOutings(nil)
	assert.Empty(t, store.OutingsFor("alice"))
	assert.Empty(t, store.OutingsFor("bob"))
}

func TestStore_MarkStayCompleted(t *testing.T) {
	store := lifecycle.NewStore()
	store.AppendStay(domain.StayRequest{
		ID:         "s-1",
		StudentID:  "alice",
		Date:       "2024-05-30",
		ReturnDate: "2024-06-01",
		Reason:     "S01",
	})

	err := store.MarkStayCompleted("s-1", "2024-06-01", "21:10", "late bus")
	assert.NoError(t, err)

	got, _ := store.FindStay("s-1")
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, "2024-06-01", got.ActualReturnDate)
	assert.Equal(t, "21:10", got.ActualReturnTime)
	assert.Equal(t, "late bus", got.Note)

	err = store.MarkStayCompleted("s-1", "2024-06-02", "08:00", "")
	assert.ErrorIs(t, err, lifecycleerrors.ErrAlreadyCompleted)
}

func TestStore_PendingReturnableStays(t *testing.T) {
	store := lifecycle.NewStore()
	store.ReplaceStays([]domain.StayRequest{
		{ID: "past", StudentID: "alice", Date: "2024-05-28", ReturnDate: "2024-05-31", Status: domain.StatusPending},
		{ID: "today", StudentID: "alice", Date: "2024-05-30", ReturnDate: "2024-06-01", Status: domain.StatusPending},
		{ID: "future", StudentID: "alice", Date: "2024-06-01", ReturnDate: "2024-06-03", Status: domain.StatusPending},
		{ID: "done", StudentID: "alice", Date: "2024-06-01", ReturnDate: "2024-06-03", Status: domain.StatusCompleted},
		{ID: "other", StudentID: "bob", Date: "2024-06-01", ReturnDate: "2024-06-03", Status: domain.StatusPending},
	})

	got := store.PendingReturnableStays("alice", "2024-06-01")
	ids := make([]string, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"today", "future"}, ids)
}
