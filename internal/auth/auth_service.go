package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-outpass/internal/auth/errors"
	"go-outpass/internal/domain"
	"go-outpass/internal/gateway"
	"go-outpass/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// LookupName previews the student behind a phone number during login.
	LookupName(ctx context.Context, phone string) (NameLookupResponse, error)
	Login(ctx context.Context, phone, password string) (string, LoginResponse, error)
	Logout(sessionID string)
}

type service struct {
	gw       gateway.Client
	sessions *session.Manager
	tokenTTL time.Duration
	logger   *zap.Logger
}

func NewService(gw gateway.Client, sessions *session.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{gw: gw, sessions: sessions, tokenTTL: 12 * time.Hour, logger: l}
}

func (s *service) LookupName(ctx context.Context, phone string) (NameLookupResponse, error) {
	rec, err := s.gw.StudentByPhone(ctx, phone)
	if err != nil {
		return NameLookupResponse{}, err
	}
	return NameLookupResponse{
		StudentID: rec.StudentID,
		Name:      rec.Name,
		Grade:     rec.Grade,
	}, nil
}

func (s *service) Login(ctx context.Context, phone, password string) (string, LoginResponse, error) {
	rec, err := s.gw.StudentByPhone(ctx, phone)
	if err != nil {
		// A missing student and a wrong password are indistinguishable to
		// the caller.
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.Password), []byte(password)); err != nil {
		s.logger.Warn("login rejected", zap.String("student_id", rec.StudentID))
		return "", LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	st := s.sessions.Create(domain.Student{
		ID:    rec.StudentID,
		Name:  rec.Name,
		Grade: rec.Grade,
		Phone: rec.Phone,
		Class: rec.Class,
	})

	token, err := s.generateToken(st.ID, rec.StudentID, s.tokenTTL)
	if err != nil {
		s.sessions.Destroy(st.ID)
		return "", LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("student_id", rec.StudentID))

	return token, LoginResponse{
		Token: token,
		Student: StudentResponse{
			StudentID: rec.StudentID,
			Name:      rec.Name,
			Grade:     rec.Grade,
			Class:     rec.Class,
		},
	}, nil
}

func (s *service) Logout(sessionID string) {
	s.sessions.Destroy(sessionID)
	s.logger.Info("session destroyed", zap.String("session_id", sessionID))
}

func (s *service) generateToken(sessionID, studentID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"student_id": studentID,
		"exp":        time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
