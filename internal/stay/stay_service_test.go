package stay_test

import (
	"context"
	"regexp"
	"testing"

	"go-outpass/internal/domain"
	"go-outpass/internal/gateway"
	gatewayerrors "go-outpass/internal/gateway/errors"
	gatewayMock "go-outpass/internal/gateway/mock"
	lifecycleerrors "go-outpass/internal/lifecycle/errors"
	"go-outpass/internal/session"
	"go-outpass/internal/stay"
	stayerrors "go-outpass/internal/stay/errors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type serviceDeps struct {
	gw      *gatewayMock.MockClient
	sess    *session.State
	service stay.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := gatewayMock.NewMockClient(ctrl)

	sessions := session.NewManager()
	sess := sessions.Create(domain.Student{ID: "20240101", Name: "김철수", Grade: "2"})

	svc := stay.NewService(gw, stayCatalog(), nil)

	return &serviceDeps{gw: gw, sess: sess, service: svc}
}

func TestStayService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success posts the payload and appends pending", func(t *testing.T) {
		deps := setupServiceTest(t)

		var posted gateway.StayRegistration
		deps.gw.EXPECT().
			RegisterStay(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reg gateway.StayRegistration) error {
				posted = reg
				return nil
			})

		resp, err := deps.service.Register(ctx, deps.sess, validRegister())
		assert.NoError(t, err)

		assert.Equal(t, "20240101", posted.StudentID)
		assert.Equal(t, "2024-06-07", posted.Date)
		assert.Equal(t, "2024-06-09", posted.ReturnDate)
		assert.Equal(t, "S01", posted.Reason)

		assert.Equal(t, string(domain.StatusPending), resp.Status)
		assert.Equal(t, 0, resp.Seq)
		assert.Equal(t, "가정방문", resp.ReasonName)
		assert.Empty(t, resp.ActualReturnDate)

		stored := deps.sess.Requests.StaysFor("20240101")
		assert.Len(t, stored, 1)
		assert.Equal(t, domain.StatusPending, stored[0].Status)
		assert.Equal(t, 0, stored[0].Seq)
	})

	t.Run("validation failure never reaches the gateway", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := validRegister()
		req.ReturnDate = "2024-06-01"

		_, err := deps.service.Register(ctx, deps.sess, req)
		assert.ErrorIs(t, err, stayerrors.ErrReturnBeforeDeparture)
		assert.Empty(t, deps.sess.Requests.StaysFor("20240101"))
	})

	t.Run("submission failure leaves the store untouched", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.gw.EXPECT().
			RegisterStay(gomock.Any(), gomock.Any()).
			Return(gatewayerrors.ErrSubmissionFailed)

		_, err := deps.service.Register(ctx, deps.sess, validRegister())
		assert.ErrorIs(t, err, gatewayerrors.ErrSubmissionFailed)
		assert.Empty(t, deps.sess.Requests.StaysFor("20240101"))
	})
}

func TestStayService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the collection wholesale", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sess.Requests.AppendStay(domain.StayRequest{ID: "local", StudentID: "20240101"})

		deps.gw.EXPECT().
			ListStays(gomock.Any(), "20240101").
			Return([]gateway.StayListItem{
				{Seq: 1, SleepOutDate: "2024-06-07", ReturnDate: "2024-06-09", Reason: "가정방문"},
				{Seq: 2, SleepOutDate: "2024-06-07", ReturnDate: "2024-06-08", Reason: "기타"},
			}, nil)

		resp, err := deps.service.Refresh(ctx, deps.sess)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)

		assert.Equal(t, "2024-06-07_1", resp[0].ID)
		assert.Equal(t, "2024-06-07_2", resp[1].ID)
		assert.Equal(t, string(domain.StatusPending), resp[0].Status)
		assert.Equal(t, "2024-06-09", resp[0].ReturnDate)

		_, err = deps.sess.Requests.FindStay("local")
		assert.ErrorIs(t, err, lifecycleerrors.ErrRequestNotFound)
	})

	t.Run("fetch failure keeps the current collection", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sess.Requests.AppendStay(domain.StayRequest{ID: "local", StudentID: "20240101"})

		deps.gw.EXPECT().
			ListStays(gomock.Any(), "20240101").
			Return(nil, gatewayerrors.ErrRecordStoreUnavailable)

		_, err := deps.service.Refresh(ctx, deps.sess)
		assert.ErrorIs(t, err, gatewayerrors.ErrRecordStoreUnavailable)
		assert.Len(t, deps.sess.Requests.StaysFor("20240101"), 1)
	})
}

func TestStayService_Returnable(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.sess.Requests.ReplaceStays([]domain.StayRequest{
		{ID: "future", StudentID: "20240101", Date: "2024-06-07", ReturnDate: "9999-12-31", Status: domain.StatusPending},
		{ID: "elapsed", StudentID: "20240101", Date: "2024-06-01", ReturnDate: "2000-01-01", Status: domain.StatusPending},
		{ID: "done", StudentID: "20240101", Date: "2024-06-02", ReturnDate: "9999-12-31", Status: domain.StatusCompleted},
	})

	resp, err := deps.service.Returnable(ctx, deps.sess)
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "future", resp[0].ID)
}

func TestStayService_Return(t *testing.T) {
	ctx := context.Background()

	seed := func(deps *serviceDeps) {
		deps.sess.Requests.ReplaceStays([]domain.StayRequest{{
			ID:         "2024-06-07_2",
			StudentID:  "20240101",
			Date:       "2024-06-07",
			ReturnDate: "2024-06-09",
			Reason:     "S01",
			Status:     domain.StatusPending,
			Seq:        2,
		}})
	}

	t.Run("success completes the request and stamps today", func(t *testing.T) {
		deps := setupServiceTest(t)
		seed(deps)

		deps.gw.EXPECT().
			SubmitStayReturn(gomock.Any(), gateway.StayReturn{
				SleepOutDate: "2024-06-07", Seq: 2, ReturnType: "EARLY", Note: "조기 귀가",
			}).
			Return(nil)

		resp, err := deps.service.Return(ctx, deps.sess, stay.ReturnStayRequest{
			ID: "2024-06-07_2", ReturnType: "EARLY", Note: "조기 귀가",
		})
		assert.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), resp.Status)
		assert.Regexp(t, datePattern, resp.ActualReturnDate)
		assert.Regexp(t, clockPattern, resp.ActualReturnTime)
		assert.Equal(t, "조기 귀가", resp.Note)
	})

	t.Run("gateway failure leaves the request pending", func(t *testing.T) {
		deps := setupServiceTest(t)
		seed(deps)

		deps.gw.EXPECT().
			SubmitStayReturn(gomock.Any(), gomock.Any()).
			Return(gatewayerrors.ErrSubmissionFailed)

		_, err := deps.service.Return(ctx, deps.sess, stay.ReturnStayRequest{
			ID: "2024-06-07_2", ReturnType: "NORMAL",
		})
		assert.ErrorIs(t, err, gatewayerrors.ErrSubmissionFailed)

		r, findErr := deps.sess.Requests.FindStay("2024-06-07_2")
		assert.NoError(t, findErr)
		assert.Equal(t, domain.StatusPending, r.Status)
	})

	t.Run("already completed is rejected before the gateway is called", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sess.Requests.ReplaceStays([]domain.StayRequest{{
			ID:               "2024-06-07_2",
			StudentID:        "20240101",
			Date:             "2024-06-07",
			Status:           domain.StatusCompleted,
			ActualReturnDate: "2024-06-09",
			ActualReturnTime: "19:30",
			Seq:              2,
		}})

		_, err := deps.service.Return(ctx, deps.sess, stay.ReturnStayRequest{
			ID: "2024-06-07_2", ReturnType: "NORMAL",
		})
		assert.ErrorIs(t, err, lifecycleerrors.ErrAlreadyCompleted)
	})

	t.Run("unknown request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		seed(deps)

		_, err := deps.service.Return(ctx, deps.sess, stay.ReturnStayRequest{
			ID: "missing", ReturnType: "NORMAL",
		})
		assert.ErrorIs(t, err, lifecycleerrors.ErrRequestNotFound)
	})
}
