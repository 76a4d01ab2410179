// Package catalog holds the enumerated leave reason codes. The in-process
// map is authoritative for Resolve; redis sits in front of the record store
// as a warm tier so every session start does not refetch the same list.
package catalog

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	catalogerrors "go-outpass/internal/catalog/errors"
	"go-outpass/internal/gateway"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Kind string

const (
	KindOuting Kind = "outing"
	KindStay   Kind = "stay"
)

type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

//go:generate mockgen -source=catalog_service.go -destination=mock/catalog_service_mock.go -package=mock
type Service interface {
	// Load fetches the reason list for a kind. On failure the cache for that
	// kind stays empty and the caller must block submission until retried.
	Load(ctx context.Context, kind Kind) ([]Entry, error)
	// Resolve returns the display name for a code, or "" when the code is
	// unknown. Never errors; a stale cache degrades to blank names.
	Resolve(kind Kind, code string) string
}

type service struct {
	gw     gateway.Client
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger

	mu     sync.RWMutex
	byCode map[Kind]map[string]string
}

func NewService(gw gateway.Client, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &service{
		gw:     gw,
		rdb:    rdb,
		ttl:    ttl,
		logger: l,
		byCode: make(map[Kind]map[string]string),
	}
}

func cacheKey(kind Kind) string {
	return "reasons:" + string(kind)
}

func (s *service) Load(ctx context.Context, kind Kind) ([]Entry, error) {
	if entries, ok := s.fromRedis(ctx, kind); ok {
		s.install(kind, entries)
		return entries, nil
	}

	entries, err := s.fromUpstream(ctx, kind)
	if err != nil {
		s.logger.Error("reason catalog load failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, catalogerrors.ErrCatalogUnavailable
	}

	s.toRedis(ctx, kind, entries)
	s.install(kind, entries)

	s.logger.Debug("reason catalog loaded",
		zap.String("kind", string(kind)),
		zap.Int("count", len(entries)),
	)
	return entries, nil
}

func (s *service) Resolve(kind Kind, code string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byCode[kind][code]
}

func (s *service) fromUpstream(ctx context.Context, kind Kind) ([]Entry, error) {
	var (
		records []gateway.ReasonRecord
		err     error
	)
	if kind == KindStay {
		records, err = s.gw.StayReasons(ctx)
	} else {
		records, err = s.gw.OutingReasons(ctx)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{Code: r.Code, Name: r.Name}
	}
	return entries, nil
}

func (s *service) fromRedis(ctx context.Context, kind Kind) ([]Entry, bool) {
	if s.rdb == nil {
		return nil, false
	}

	raw, err := s.rdb.Get(ctx, cacheKey(kind)).Result()
	if err != nil {
		return nil, false
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logger.Warn("corrupt catalog cache entry dropped", zap.String("kind", string(kind)), zap.Error(err))
		return nil, false
	}
	return entries, true
}

func (s *service) toRedis(ctx context.Context, kind Kind, entries []Entry) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(kind), raw, s.ttl).Err(); err != nil {
		// Warm tier only; the in-process map already has the data.
		s.logger.Warn("catalog cache write failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}

func (s *service) install(kind Kind, entries []Entry) {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Code] = e.Name
	}

	s.mu.Lock()
	s.byCode[kind] = m
	s.mu.Unlock()
}
