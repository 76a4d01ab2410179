package outing

import (
	"context"
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

//go:generate mockgen -source=outing_service.go -destination=mock/outing_service_mock.go -package=mock
type Service interface {
	Reasons(ctx context.Context) ([]catalog.Entry, error)
	Register(ctx context.Context, sess *session.State, req RegisterOutingRequest) (OutingResponse, error)
	// Refresh replaces the session's outing collection with the server list
	// and returns the student's view of it.
	Refresh(ctx context.Context, sess *session.State) ([]OutingResponse, error)
	Return(ctx context.Context, sess *session.State, req ReturnOutingRequest) (OutingResponse, error)
}

type service struct {
	gw        gateway.Client
	reasons   catalog.Service
	publisher *producer.Publisher
	logger    *zap.Logger
}

func NewService(gw gateway.Client, reasons catalog.Service, publisher *producer.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("outing.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outing.service")
	}
	return &service{gw: gw, reasons: reasons, publisher: publisher, logger: l}
}

func (s *service) Reasons(ctx context.Context) ([]catalog.Entry, error) {
	return s.reasons.Load(ctx, catalog.KindOuting)
}

func (s *service) Register(ctx context.Context, sess *session.State, req RegisterOutingRequest) (OutingResponse, error) {
	studentID := sess.Student.ID
	s.logger.Debug("register outing requested",
		zap.String("student_id", studentID),
		zap.String("date", req.Date),
	)

	draft, err := BuildDraft(studentID, req, s.reasons)
	if err != nil {
		s.logger.Warn("register outing validation failed", zap.Error(err))
		return OutingResponse{}, err
	}

	if err := s.gw.RegisterOuting(ctx, gateway.OutingRegistration{
		StudentID:   draft.StudentID,
		Date:        draft.Date,
		Time:        draft.Time,
		ReturnTime:  draft.ReturnTime,
		Reason1:     draft.Reason1,
		Reason1Name: draft.Reason1Name,
		Reason2:     draft.Reason2,
		Reason2Name: draft.Reason2Name,
		OtherReason: draft.OtherReason,
	}); err != nil {
		// No store mutation on failure; the user retries manually.
		return OutingResponse{}, err
	}

	r := domain.OutingRequest{
		ID:          uuid.New().String(),
		StudentID:   draft.StudentID,
		Date:        draft.Date,
		Time:        draft.Time,
		ReturnTime:  draft.ReturnTime,
		Reason1:     draft.Reason1,
		Reason1Name: draft.Reason1Name,
		Reason2:     draft.Reason2,
		Reason2Name: draft.Reason2Name,
		OtherReason: draft.OtherReason,
	}
	sess.Requests.AppendOuting(r)

	s.publisher.PublishLifecycle(ctx, events.LeaveLifecycleEvent{
		EventType:  events.TypeOutingSubmitted,
		StudentID:  draft.StudentID,
		Date:       draft.Date,
		Reason:     draft.Reason1,
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info("register outing success",
		zap.String("student_id", draft.StudentID),
		zap.String("date", draft.Date),
	)

	stored, err := sess.Requests.FindOuting(r.ID)
	if err != nil {
		return OutingResponse{}, err
	}
	return mapToResponse(stored), nil
}

func (s *service) Refresh(ctx context.Context, sess *session.State) ([]OutingResponse, error) {
	studentID := sess.Student.ID

	items, err := s.gw.ListOutings(ctx, studentID)
	if err != nil {
		return nil, err
	}

	list := make([]domain.OutingRequest, len(items))
	for i, item := range items {
		list[i] = mapListItem(studentID, item)
	}
	sess.Requests.ReplaceOutings(list)

	return mapToListResponse(sess.Requests.OutingsFor(studentID)), nil
}

func (s *service) Return(ctx context.Context, sess *session.State, req ReturnOutingRequest) (OutingResponse, error) {
	studentID := sess.Student.ID
	s.logger.Debug("outing return requested",
		zap.String("student_id", studentID),
		zap.String("request_id", req.ID),
	)

	r, err := sess.Requests.FindOuting(req.ID)
	if err != nil {
		return OutingResponse{}, err
	}
	if r.Status != domain.StatusPending {
		return OutingResponse{}, lifecycleerrors.ErrAlreadyCompleted
	}

	if _, err := s.gw.SubmitOutingReturn(ctx, gateway.OutingReturn{
		Date:       r.Date,
		Seq:        r.Seq,
		ReturnType: req.ReturnType,
		Note:       req.Note,
	}); err != nil {
		// Request stays pending so the user may retry.
		return OutingResponse{}, err
	}

	actualReturn := timeslot.RoundClock(time.Now())
	if err := sess.Requests.MarkOutingCompleted(req.ID, actualReturn); err != nil {
		return OutingResponse{}, err
	}

	s.publisher.PublishLifecycle(ctx, events.LeaveLifecycleEvent{
		EventType:  events.TypeOutingReturned,
		StudentID:  studentID,
		Date:       r.Date,
		ReturnType: req.ReturnType,
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info("outing return success",
		zap.String("student_id", studentID),
		zap.String("request_id", req.ID),
	)

	completed, err := sess.Requests.FindOuting(req.ID)
	if err != nil {
		return OutingResponse{}, err
	}
	return mapToResponse(completed), nil
}

// mapListItem converts a record-store list row into the local shape. A row
// that already carries a return time is completed; labeling it pending would
// break the completed-implies-actual-return invariant.
func mapListItem(studentID string, item gateway.OutingListItem) domain.OutingRequest {
	r := domain.OutingRequest{
		ID:        item.Date + "_" + item.Time,
		StudentID: studentID,
		Date:      item.Date,
		Time:      item.Time,
		Reason1:   item.Reason,
		Status:    domain.StatusPending,
		Seq:       item.Seq,
	}
	if item.ReturnTime != "" {
		r.Status = domain.StatusCompleted
		r.ActualReturnTime = item.ReturnTime
	}
	return r
}

func mapToResponse(r domain.OutingRequest) OutingResponse {
	return OutingResponse{
		ID:               r.ID,
		StudentID:        r.StudentID,
		Date:             r.Date,
		Time:             r.Time,
		ReturnTime:       r.ReturnTime,
		Reason1:          r.Reason1,
		Reason1Name:      r.Reason1Name,
		Reason2:          r.Reason2,
		Reason2Name:      r.Reason2Name,
		OtherReason:      r.OtherReason,
		Status:           string(r.Status),
		ActualReturnTime: r.ActualReturnTime,
		Seq:              r.Seq,
	}
}

func mapToListResponse(list []domain.OutingRequest) []OutingResponse {
	resp := make([]OutingResponse, len(list))
	for i, r := range list {
		resp[i] = mapToResponse(r)
	}
	return resp
}
