// Package gateway is the HTTP client for the external record store. It owns
// serialization to the wire format and maps transport or non-success
// outcomes into the submission-failure taxonomy; it never touches the
// lifecycle store itself.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gatewayerrors "go-outpass/internal/gateway/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=gateway_client.go -destination=mock/gateway_client_mock.go -package=mock
type Client interface {
	StudentByPhone(ctx context.Context, phone string) (StudentRecord, error)
	OutingReasons(ctx context.Context) ([]ReasonRecord, error)
	StayReasons(ctx context.Context) ([]ReasonRecord, error)
	RegisterOuting(ctx context.Context, reg OutingRegistration) error
	ListOutings(ctx context.Context, studentID string) ([]OutingListItem, error)
	SubmitOutingReturn(ctx context.Context, ret OutingReturn) (string, error)
	RegisterStay(ctx context.Context, reg StayRegistration) error
	ListStays(ctx context.Context, studentID string) ([]StayListItem, error)
	SubmitStayReturn(ctx context.Context, ret StayReturn) error
}

type client struct {
	baseURL string
	hc      *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) Client {
	l := zap.L().Named("gateway.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gateway.client")
	}
	return &client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 10 * time.Second},
		logger:  l,
	}
}

func (c *client) getJSON(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
}

func (c *client) postJSON(ctx context.Context, path string, body, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, fmt.Errorf("POST %s: status %d", path, resp.StatusCode)
	}

	if out == nil {
		return resp.StatusCode, nil
	}
	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
}

func (c *client) StudentByPhone(ctx context.Context, phone string) (StudentRecord, error) {
	var rec StudentRecord
	status, err := c.getJSON(ctx, "/students/"+url.PathEscape(phone), &rec)
	if err != nil {
		if status == http.StatusNotFound {
			return StudentRecord{}, gatewayerrors.ErrStudentNotFound
		}
		c.logger.Error("student lookup failed", zap.String("phone", phone), zap.Error(err))
		return StudentRecord{}, gatewayerrors.ErrRecordStoreUnavailable
	}
	return rec, nil
}

func (c *client) OutingReasons(ctx context.Context) ([]ReasonRecord, error) {
	var reasons []ReasonRecord
	if _, err := c.getJSON(ctx, "/outing/reasons", &reasons); err != nil {
		c.logger.Error("outing reasons fetch failed", zap.Error(err))
		return nil, gatewayerrors.ErrRecordStoreUnavailable
	}
	return reasons, nil
}

func (c *client) StayReasons(ctx context.Context) ([]ReasonRecord, error) {
	var reasons []ReasonRecord
	if _, err := c.getJSON(ctx, "/stay/reasons", &reasons); err != nil {
		c.logger.Error("stay reasons fetch failed", zap.Error(err))
		return nil, gatewayerrors.ErrRecordStoreUnavailable
	}
	return reasons, nil
}

func (c *client) RegisterOuting(ctx context.Context, reg OutingRegistration) error {
	if _, err := c.postJSON(ctx, "/outing/register", reg, nil); err != nil {
		c.logger.Warn("outing registration rejected",
			zap.String("student_id", reg.StudentID),
			zap.String("date", reg.Date),
			zap.Error(err),
		)
		return gatewayerrors.ErrSubmissionFailed
	}
	return nil
}

func (c *client) ListOutings(ctx context.Context, studentID string) ([]OutingListItem, error) {
	var items []OutingListItem
	if _, err := c.getJSON(ctx, "/outing/list/"+url.PathEscape(studentID), &items); err != nil {
		c.logger.Error("outing list fetch failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, gatewayerrors.ErrRecordStoreUnavailable
	}
	return items, nil
}

func (c *client) SubmitOutingReturn(ctx context.Context, ret OutingReturn) (string, error) {
	var result OutingReturnResult
	if _, err := c.postJSON(ctx, "/outing/return", ret, &result); err != nil {
		c.logger.Warn("outing return rejected",
			zap.String("date", ret.Date),
			zap.Int("seq", ret.Seq),
			zap.Error(err),
		)
		return "", gatewayerrors.ErrSubmissionFailed
	}
	return result.Message, nil
}

func (c *client) RegisterStay(ctx context.Context, reg StayRegistration) error {
	if _, err := c.postJSON(ctx, "/stay/register", reg, nil); err != nil {
		c.logger.Warn("stay registration rejected",
			zap.String("student_id", reg.StudentID),
			zap.String("date", reg.Date),
			zap.Error(err),
		)
		return gatewayerrors.ErrSubmissionFailed
	}
	return nil
}

func (c *client) ListStays(ctx context.Context, studentID string) ([]StayListItem, error) {
	var items []StayListItem
	if _, err := c.getJSON(ctx, "/stay/list/"+url.PathEscape(studentID), &items); err != nil {
		c.logger.Error("stay list fetch failed", zap.String("student_id", studentID), zap.Error(err))
		return nil, gatewayerrors.ErrRecordStoreUnavailable
	}
	return items, nil
}

func (c *client) SubmitStayReturn(ctx context.Context, ret StayReturn) error {
	if _, err := c.postJSON(ctx, "/stay/return", ret, nil); err != nil {
		c.logger.Warn("stay return rejected",
			zap.String("sleep_out_date", ret.SleepOutDate),
			zap.Int("seq", ret.Seq),
			zap.Error(err),
		)
		return gatewayerrors.ErrSubmissionFailed
	}
	return nil
}
