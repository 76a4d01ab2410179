package recordstore

import (
	"context"
	"database/sql"
	"errors"

	recordstoreerrors "go-outpass/internal/recordstore/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	KindOuting = "outing"
	KindStay   = "stay"
)

//go:generate mockgen -source=recordstore_service.go -destination=mock/recordstore_service_mock.go -package=mock
type Service interface {
	StudentByPhone(ctx context.Context, phone string) (StudentResponse, error)
	Reasons(ctx context.Context, kind string) ([]ReasonResponse, error)

	RegisterOuting(ctx context.Context, req RegisterOutingRequest) error
	ListOutings(ctx context.Context, studentID string) ([]OutingListRow, error)
	ReturnOuting(ctx context.Context, req ReturnOutingRequest, actualReturnTime string) (MessageResponse, error)

	RegisterStay(ctx context.Context, req RegisterStayRequest) error
	ListStays(ctx context.Context, studentID string) ([]StayListRow, error)
	ReturnStay(ctx context.Context, req ReturnStayRequest, actualReturnDate, actualReturnTime string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("recordstore.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("recordstore.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) StudentByPhone(ctx context.Context, phone string) (StudentResponse, error) {
	st, err := s.repo.FindStudentByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StudentResponse{}, recordstoreerrors.ErrStudentNotFound
		}
		return StudentResponse{}, err
	}
	return StudentResponse{
		StudentID: st.StudentID,
		Name:      st.Name,
		Grade:     st.Grade,
		Phone:     st.Phone,
		Class:     st.Class,
		Password:  st.Password,
	}, nil
}

func (s *service) Reasons(ctx context.Context, kind string) ([]ReasonResponse, error) {
	reasons, err := s.repo.ReasonsByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	resp := make([]ReasonResponse, len(reasons))
	for i, r := range reasons {
		resp[i] = ReasonResponse{Code: r.Code, Name: r.Name}
	}
	return resp, nil
}

// RegisterOuting assigns the per-day seq and persists inside one transaction
// so concurrent registrations cannot claim the same ordinal.
func (s *service) RegisterOuting(ctx context.Context, req RegisterOutingRequest) error {
	s.logger.Debug("register outing requested",
		zap.String("student_id", req.StudentID),
		zap.String("date", req.Date),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register outing begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	seq, err := qtx.NextOutingSeq(ctx, req.Date)
	if err != nil {
		return err
	}

	o := &OutingRecord{
		ID:          uuid.New(),
		StudentID:   req.StudentID,
		Date:        req.Date,
		Seq:         seq,
		Time:        req.Time,
		ReturnTime:  req.ReturnTime,
		Reason1:     req.Reason1,
		Reason1Name: req.Reason1Name,
		Reason2:     req.Reason2,
		Reason2Name: req.Reason2Name,
		OtherReason: req.OtherReason,
	}
	if err := qtx.CreateOuting(ctx, o); err != nil {
		s.logger.Error("register outing persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register outing commit failed", zap.Error(err))
		return err
	}
	s.logger.Info("register outing success",
		zap.String("student_id", req.StudentID),
		zap.String("date", req.Date),
		zap.Int("seq", seq),
	)
	return nil
}

func (s *service) ListOutings(ctx context.Context, studentID string) ([]OutingListRow, error) {
	outings, err := s.repo.FindOutingsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	rows := make([]OutingListRow, len(outings))
	for i, o := range outings {
		rows[i] = OutingListRow{
			Seq:    o.Seq,
			Date:   o.Date,
			Time:   o.Time,
			Reason: o.Reason1Name,
		}
		if rows[i].Reason == "" {
			rows[i].Reason = o.Reason1
		}
		if o.ActualReturnTime != nil {
			rows[i].ReturnTime = *o.ActualReturnTime
		}
	}
	return rows, nil
}

func (s *service) ReturnOuting(ctx context.Context, req ReturnOutingRequest, actualReturnTime string) (MessageResponse, error) {
	s.logger.Debug("outing return requested",
		zap.String("date", req.Date),
		zap.Int("seq", req.Seq),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("outing return begin tx failed", zap.Error(err))
		return MessageResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.FindOutingBySeq(ctx, req.Date, req.Seq)
	if err != nil {
		return MessageResponse{}, mapRepositoryError(err)
	}
	if o.ActualReturnTime != nil {
		return MessageResponse{}, recordstoreerrors.ErrAlreadyReturned
	}

	o.ActualReturnTime = &actualReturnTime
	o.ReturnType = &req.ReturnType
	if req.Note != "" {
		o.Note = &req.Note
	}
	if err := qtx.UpdateOuting(ctx, o); err != nil {
		s.logger.Error("outing return persist failed", zap.Error(err))
		return MessageResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("outing return commit failed", zap.Error(err))
		return MessageResponse{}, err
	}
	s.logger.Info("outing return success",
		zap.String("date", req.Date),
		zap.Int("seq", req.Seq),
	)
	return MessageResponse{Message: "귀가 처리되었습니다"}, nil
}

func (s *service) RegisterStay(ctx context.Context, req RegisterStayRequest) error {
	s.logger.Debug("register stay requested",
		zap.String("student_id", req.StudentID),
		zap.String("date", req.Date),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register stay begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	seq, err := qtx.NextStaySeq(ctx, req.Date)
	if err != nil {
		return err
	}

	reasonName := ""
	if reasons, rerr := qtx.ReasonsByKind(ctx, KindStay); rerr == nil {
		for _, r := range reasons {
			if r.Code == req.Reason {
				reasonName = r.Name
				break
			}
		}
	}

	st := &StayRecord{
		ID:           uuid.New(),
		StudentID:    req.StudentID,
		SleepOutDate: req.Date,
		Seq:          seq,
		Time:         req.Time,
		ReturnDate:   req.ReturnDate,
		ReturnTime:   req.ReturnTime,
		Reason:       req.Reason,
		ReasonName:   reasonName,
		OtherReason:  req.OtherReason,
	}
	if err := qtx.CreateStay(ctx, st); err != nil {
		s.logger.Error("register stay persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register stay commit failed", zap.Error(err))
		return err
	}
	s.logger.Info("register stay success",
		zap.String("student_id", req.StudentID),
		zap.String("date", req.Date),
		zap.Int("seq", seq),
	)
	return nil
}

func (s *service) ListStays(ctx context.Context, studentID string) ([]StayListRow, error) {
	stays, err := s.repo.FindOpenStaysByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	rows := make([]StayListRow, len(stays))
	for i, st := range stays {
		rows[i] = StayListRow{
			Seq:          st.Seq,
			SleepOutDate: st.SleepOutDate,
			ReturnDate:   st.ReturnDate,
			Reason:       st.ReasonName,
		}
		if rows[i].Reason == "" {
			rows[i].Reason = st.Reason
		}
	}
	return rows, nil
}

func (s *service) ReturnStay(ctx context.Context, req ReturnStayRequest, actualReturnDate, actualReturnTime string) error {
	s.logger.Debug("stay return requested",
		zap.String("sleep_out_date", req.SleepOutDate),
		zap.Int("seq", req.Seq),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("stay return begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	st, err := qtx.FindStayBySeq(ctx, req.SleepOutDate, req.Seq)
	if err != nil {
		return mapRepositoryError(err)
	}
	if st.ActualReturnDate != nil {
		return recordstoreerrors.ErrAlreadyReturned
	}

	st.ActualReturnDate = &actualReturnDate
	st.ActualReturnTime = &actualReturnTime
	st.ReturnType = &req.ReturnType
	if req.Note != "" {
		st.Note = &req.Note
	}
	if err := qtx.UpdateStay(ctx, st); err != nil {
		s.logger.Error("stay return persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("stay return commit failed", zap.Error(err))
		return err
	}
	s.logger.Info("stay return success",
		zap.String("sleep_out_date", req.SleepOutDate),
		zap.Int("seq", req.Seq),
	)
	return nil
}
