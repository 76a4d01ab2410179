package stay

import (
	"context"
	"fmt"
	"time"

	"go-outpass/internal/catalog"
	"go-outpass/internal/domain"
	"go-outpass/internal/events"
	"go-outpass/internal/gateway"
	lifecycleerrors "go-outpass/internal/lifecycle/errors"
	"go-outpass/internal/messaging/kafka/producer"
	"go-outpass/internal/session"
	"go-outpass/internal/shared/timeslot"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=stay_service.go -destination=mock/stay_service_mock.go -package=mock
type Service interface {
	Reasons(ctx context.Context) ([]catalog.Entry, error)
	Register(ctx context.Context, sess *session.State, req RegisterStayRequest) (StayResponse, error)
	// Refresh replaces the session's stay collection with the server list and
	// returns the student's view of it.
	Refresh(ctx context.Context, sess *session.State) ([]StayResponse, error)
	// Returnable narrows the current collection to pending stays whose return
	// date has not passed. It reads local state only; call Refresh first.
	Returnable(ctx context.Context, sess *session.State) ([]StayResponse, error)
	Return(ctx context.Context, sess *session.State, req ReturnStayRequest) (StayResponse, error)
}

type service struct {
	gw        gateway.Client
	reasons   catalog.Service
	publisher *producer.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(gw gateway.Client, reasons catalog.Service, publisher *producer.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("stay.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stay.service")
	}
	return &service{gw: gw, reasons: reasons, publisher: publisher, logger: l, now: time.Now}
}

func (s *service) Reasons(ctx context.Context) ([]catalog.Entry, error) {
	return s.reasons.Load(ctx, catalog.KindStay)
}

func (s *service) Register(ctx context.Context, sess *session.State, req RegisterStayRequest) (StayResponse, error) {
	studentID := sess.Student.ID
	s.logger.Debug("register stay requested",
		zap.String("student_id", studentID),
		zap.String("date", req.Date),
		zap.String("return_date", req.ReturnDate),
	)

	draft, err := BuildDraft(studentID, req, s.reasons)
	if err != nil {
		s.logger.Warn("register stay validation failed", zap.Error(err))
		return StayResponse{}, err
	}

	if err := s.gw.RegisterStay(ctx, gateway.StayRegistration{
		StudentID:   draft.StudentID,
		Date:        draft.Date,
		Time:        draft.Time,
		ReturnDate:  draft.ReturnDate,
		ReturnTime:  draft.ReturnTime,
		Reason:      draft.Reason,
		OtherReason: draft.OtherReason,
	}); err != nil {
		// No store mutation on failure; the user retries manually.
		return StayResponse{}, err
	}

	r := domain.StayRequest{
		ID:          uuid.New().String(),
		StudentID:   draft.StudentID,
		Date:        draft.Date,
		Time:        draft.Time,
		ReturnDate:  draft.ReturnDate,
		ReturnTime:  draft.ReturnTime,
		Reason:      draft.Reason,
		ReasonName:  draft.ReasonName,
		OtherReason: draft.OtherReason,
	}
	sess.Requests.AppendStay(r)

	s.publisher.PublishLifecycle(ctx, events.LeaveLifecycleEvent{
		EventType:  events.TypeStaySubmitted,
		StudentID:  draft.StudentID,
		Date:       draft.Date,
		ReturnDate: draft.ReturnDate,
		Reason:     draft.Reason,
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("register stay success",
		zap.String("student_id", draft.StudentID),
		zap.String("date", draft.Date),
	)

	stored, err := sess.Requests.FindStay(r.ID)
	if err != nil {
		return StayResponse{}, err
	}
	return mapToResponse(stored), nil
}

func (s *service) Refresh(ctx context.Context, sess *session.State) ([]StayResponse, error) {
	studentID := sess.Student.ID

	items, err := s.gw.ListStays(ctx, studentID)
	if err != nil {
		return nil, err
	}

	list := make([]domain.StayRequest, len(items))
	for i, item := range items {
		list[i] = mapListItem(studentID, item)
	}
	sess.Requests.ReplaceStays(list)

	return mapToListResponse(sess.Requests.StaysFor(studentID)), nil
}

func (s *service) Returnable(ctx context.Context, sess *session.State) ([]StayResponse, error) {
	today := s.now().Format("2006-01-02")
	return mapToListResponse(sess.Requests.PendingReturnableStays(sess.Student.ID, today)), nil
}

func (s *service) Return(ctx context.Context, sess *session.State, req ReturnStayRequest) (StayResponse, error) {
	studentID := sess.Student.ID
	s.logger.Debug("stay return requested",
		zap.String("student_id", studentID),
		zap.String("request_id", req.ID),
	)

	r, err := sess.Requests.FindStay(req.ID)
	if err != nil {
		return StayResponse{}, err
	}
	if r.Status != domain.StatusPending {
		return StayResponse{}, lifecycleerrors.ErrAlreadyCompleted
	}

	if err := s.gw.SubmitStayReturn(ctx, gateway.StayReturn{
		SleepOutDate: r.Date,
		Seq:          r.Seq,
		ReturnType:   req.ReturnType,
		Note:         req.Note,
	}); err != nil {
		// Request stays pending so the user may retry.
		return StayResponse{}, err
	}

	now := s.now()
	actualDate := now.Format("2006-01-02")
	actualTime := timeslot.RoundClock(now)
	if err := sess.Requests.MarkStayCompleted(req.ID, actualDate, actualTime, req.Note); err != nil {
		return StayResponse{}, err
	}

	s.publisher.PublishLifecycle(ctx, events.LeaveLifecycleEvent{
		EventType:  events.TypeStayReturned,
		StudentID:  studentID,
		Date:       r.Date,
		ReturnDate: r.ReturnDate,
		ReturnType: req.ReturnType,
		OccurredAt: now.UTC(),
	})

	s.logger.Info("stay return success",
		zap.String("student_id", studentID),
		zap.String("request_id", req.ID),
	)

	completed, err := sess.Requests.FindStay(req.ID)
	if err != nil {
		return StayResponse{}, err
	}
	return mapToResponse(completed), nil
}

// mapListItem converts a record-store list row into the local shape. The list
// endpoint serves only not-yet-returned stays, so fetched rows are pending.
// The stay list identity on the wire is sleep-out date plus its per-day seq.
func mapListItem(studentID string, item gateway.StayListItem) domain.StayRequest {
	return domain.StayRequest{
		ID:         fmt.Sprintf("%s_%d", item.SleepOutDate, item.Seq),
		StudentID:  studentID,
		Date:       item.SleepOutDate,
		ReturnDate: item.ReturnDate,
		Reason:     item.Reason,
		Status:     domain.StatusPending,
		Seq:        item.Seq,
	}
}

func mapToResponse(r domain.StayRequest) StayResponse {
	return StayResponse{
		ID:               r.ID,
		StudentID:        r.StudentID,
		Date:             r.Date,
		Time:             r.Time,
		ReturnDate:       r.ReturnDate,
		ReturnTime:       r.ReturnTime,
		Reason:           r.Reason,
		ReasonName:       r.ReasonName,
		OtherReason:      r.OtherReason,
		Status:           string(r.Status),
		ActualReturnDate: r.ActualReturnDate,
		ActualReturnTime: r.ActualReturnTime,
		Note:             r.Note,
		Seq:              r.Seq,
	}
}

func mapToListResponse(list []domain.StayRequest) []StayResponse {
	resp := make([]StayResponse, len(list))
	for i, r := range list {
		resp[i] = mapToResponse(r)
	}
	return resp
}
