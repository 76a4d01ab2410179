// Package lifecycle owns the in-memory request collection for one session.
// The store is the single writer boundary: services mutate it only through
// the operations below, and a server fetch replaces the collection wholesale
// rather than merging.
package lifecycle

import (
	"sync"

	"go-outpass/internal/domain"
	lifecycleerrors "go-outpass/internal/lifecycle/errors"
)

type Store struct {
	mu      sync.RWMutex
	outings []domain.OutingRequest
	stays   []domain.StayRequest
}

func NewStore() *Store {
	return &Store{}
}

// ReplaceOutings discards the current outing collection and installs list as
// authoritative. Any optimistic local entry not yet acknowledged by the
// server is dropped here; callers serialize fetch-after-create.
func (s *Store) ReplaceOutings(list []domain.OutingRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outings = make([]domain.OutingRequest, len(list))
	copy(s.outings, list)
}

func (s *Store) ReplaceStays(list []domain.StayRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stays = make([]domain.StayRequest, len(list))
	copy(s.stays, list)
}

// AppendOuting records a locally created request. Status and seq are forced
// to their unacknowledged values regardless of what the caller filled in.
func (s *Store) AppendOuting(r domain.OutingRequest) {
	r.Status = domain.StatusPending
	r.Seq = 0
	r.ActualReturnTime = ""

	s.mu.Lock()
	defer s.mu.Unlock()
	s.outings = append(s.outings, r)
}

func (s *Store) AppendStay(r domain.StayRequest) {
	r.Status = domain.StatusPending
	r.Seq = 0
	r.ActualReturnDate = ""
	r.ActualReturnTime = ""

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stays = append(s.stays, r)
}

// MarkOutingCompleted transitions pending -> completed and stamps the actual
// return time. completed is terminal.
func (s *Store) MarkOutingCompleted(id, actualReturnTime string) error {
	if actualReturnTime == "" {
		return lifecycleerrors.ErrMissingActualReturn
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outings {
		if s.outings[i].ID != id {
			continue
		}
		if s.outings[i].Status != domain.StatusPending {
			return lifecycleerrors.ErrAlreadyCompleted
		}
		s.outings[i].Status = domain.StatusCompleted
		s.outings[i].ActualReturnTime = actualReturnTime
		return nil
	}
	return lifecycleerrors.ErrRequestNotFound
}

func (s *Store) MarkStayCompleted(id, actualReturnDate, actualReturnTime, note string) error {
	if actualReturnDate == "" || actualReturnTime == "" {
		return lifecycleerrors.ErrMissingActualReturn
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stays {
		if s.stays[i].ID != id {
			continue
		}
		if s.stays[i].Status != domain.StatusPending {
			return lifecycleerrors.ErrAlreadyCompleted
		}
		s.stays[i].Status = domain.StatusCompleted
		s.stays[i].ActualReturnDate = actualReturnDate
		s.stays[i].ActualReturnTime = actualReturnTime
		s.stays[i].Note = note
		return nil
	}
	return lifecycleerrors.ErrRequestNotFound
}

// OutingsFor returns the student's outings in insertion order. The store is
// otherwise un-scoped, so this filter is what keeps one student from seeing
// another's requests.
func (s *Store) OutingsFor(studentID string) []domain.OutingRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.OutingRequest
	for _, r := range s.outings {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) StaysFor(studentID string) []domain.StayRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.StayRequest
	for _, r := range s.stays {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

// FindOuting looks up a single request by id.
func (s *Store) FindOuting(id string) (domain.OutingRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.outings {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.OutingRequest{}, lifecycleerrors.ErrRequestNotFound
}

func (s *Store) FindStay(id string) (domain.StayRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.stays {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.StayRequest{}, lifecycleerrors.ErrRequestNotFound
}

// PendingReturnableStays filters to pending stays whose return window has not
// fully elapsed. A stay due back exactly today is included.
func (s *Store) PendingReturnableStays(studentID, today string) []domain.StayRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.StayRequest
	for _, r := range s.stays {
		if r.StudentID != studentID {
			continue
		}
		if r.Status != domain.StatusPending {
			continue
		}
		if r.ReturnDate >= today {
			out = append(out, r)
		}
	}
	return out
}
