package auth_test

import (
	"context"
	"testing"

	"go-outpass/internal/auth"
	autherrors "go-outpass/internal/auth/errors"
	"go-outpass/internal/gateway"
	gatewayerrors "go-outpass/internal/gateway/errors"
	gatewayMock "go-outpass/internal/gateway/mock"
	"go-outpass/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authDeps struct {
	gw       *gatewayMock.MockClient
	sessions *session.Manager
	service  auth.Service
}

func setupAuthTest(t *testing.T) *authDeps {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	gw := gatewayMock.NewMockClient(ctrl)
	sessions := session.NewManager()

	return &authDeps{
		gw:       gw,
		sessions: sessions,
		service:  auth.NewService(gw, sessions),
	}
}

func studentRecord(t *testing.T, password string) gateway.StudentRecord {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return gateway.StudentRecord{
		StudentID: "20240101",
		Name:      "김철수",
		Grade:     "2",
		Phone:     "01012345678",
		Class:     "3",
		Password:  string(hash),
	}
}

func TestAuthService_LookupName(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the preview fields only", func(t *testing.T) {
		deps := setupAuthTest(t)
		deps.gw.EXPECT().
			StudentByPhone(gomock.Any(), "01012345678").
			Return(studentRecord(t, "pw"), nil)

		resp, err := deps.service.LookupName(ctx, "01012345678")
		assert.NoError(t, err)
		assert.Equal(t, "김철수", resp.Name)
		assert.Equal(t, "2", resp.Grade)
	})

	t.Run("unknown phone passes through", func(t *testing.T) {
		deps := setupAuthTest(t)
		deps.gw.EXPECT().
			StudentByPhone(gomock.Any(), gomock.Any()).
			Return(gateway.StudentRecord{}, gatewayerrors.ErrStudentNotFound)

		_, err := deps.service.LookupName(ctx, "0000")
		assert.ErrorIs(t, err, gatewayerrors.ErrStudentNotFound)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a token bound to a live session", func(t *testing.T) {
		deps := setupAuthTest(t)
		deps.gw.EXPECT().
			StudentByPhone(gomock.Any(), "01012345678").
			Return(studentRecord(t, "secret-pw"), nil)

		token, resp, err := deps.service.Login(ctx, "01012345678", "secret-pw")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, token, resp.Token)
		assert.Equal(t, "20240101", resp.Student.StudentID)

		parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)

		st, ok := deps.sessions.Get(claims["session_id"].(string))
		assert.True(t, ok)
		assert.Equal(t, "20240101", st.Student.ID)
		assert.NotNil(t, st.Requests)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupAuthTest(t)
		deps.gw.EXPECT().
			StudentByPhone(gomock.Any(), gomock.Any()).
			Return(studentRecord(t, "secret-pw"), nil)

		_, _, err := deps.service.Login(ctx, "01012345678", "not-it")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown student is indistinguishable from wrong password", func(t *testing.T) {
		deps := setupAuthTest(t)
		deps.gw.EXPECT().
			StudentByPhone(gomock.Any(), gomock.Any()).
			Return(gateway.StudentRecord{}, gatewayerrors.ErrStudentNotFound)

		_, _, err := deps.service.Login(ctx, "0000", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	deps := setupAuthTest(t)

	deps.gw.EXPECT().
		StudentByPhone(gomock.Any(), gomock.Any()).
		Return(studentRecord(t, "pw"), nil)

	token, _, err := deps.service.Login(ctx, "01012345678", "pw")
	assert.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	sessionID := parsed.Claims.(jwt.MapClaims)["session_id"].(string)

	deps.service.Logout(sessionID)

	_, ok := deps.sessions.Get(sessionID)
	assert.False(t, ok)
}
