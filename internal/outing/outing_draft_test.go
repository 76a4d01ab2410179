package outing_test

import (
	"context"
	"testing"

	"go-outpass/internal/catalog"
	"go-outpass/internal/outing"
	outingerrors "go-outpass/internal/outing/errors"

	"github.com/stretchr/testify/assert"
)

type fakeCatalog struct {
	names map[string]string
}

func (f *fakeCatalog) Load(ctx context.Context, kind catalog.Kind) ([]catalog.Entry, error) {
	entries := make([]catalog.Entry, 0, len(f.names))
	for code, name := range f.names {
		entries = append(entries, catalog.Entry{Code: code, Name: name})
	}
	return entries, nil
}

func (f *fakeCatalog) Resolve(kind catalog.Kind, code string) string {
	return f.names[code]
}

func outingCatalog() *fakeCatalog {
	return &fakeCatalog{names: map[string]string{
		"B01": "병원",
		"B02": "약국",
		"B99": "기타",
	}}
}

func validRegister() outing.RegisterOutingRequest {
	return outing.RegisterOutingRequest{
		Date:       "2024-06-01",
		Time:       "09:00",
		ReturnTime: "12:00",
		Reason1:    "B01",
	}
}

func TestBuildDraft(t *testing.T) {
	t.Run("resolves reason names and normalizes times", func(t *testing.T) {
		req := validRegister()
		req.Time = "09:04"
		req.ReturnTime = "11:58"
		req.Reason2 = "B99"
		req.OtherReason = "학용품 구매"

		draft, err := outing.BuildDraft("20240101", req, outingCatalog())
		assert.NoError(t, err)
		assert.Equal(t, "20240101", draft.StudentID)
		assert.Equal(t, "09:00", draft.Time)
		assert.Equal(t, "12:00", draft.ReturnTime)
		assert.Equal(t, "병원", draft.Reason1Name)
		assert.Equal(t, "기타", draft.Reason2Name)
	})

	t.Run("fails fast in field order", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*outing.RegisterOutingRequest)
			want   error
		}{
			{"missing date", func(r *outing.RegisterOutingRequest) { r.Date = "" }, outingerrors.ErrDateRequired},
			{"missing time", func(r *outing.RegisterOutingRequest) { r.Time = "" }, outingerrors.ErrTimeRequired},
			{"missing return time", func(r *outing.RegisterOutingRequest) { r.ReturnTime = "" }, outingerrors.ErrReturnTimeRequired},
			{"missing reason1", func(r *outing.RegisterOutingRequest) { r.Reason1 = "" }, outingerrors.ErrReason1Required},
			{"malformed time", func(r *outing.RegisterOutingRequest) { r.Time = "morning" }, outingerrors.ErrInvalidTime},
			{"malformed return time", func(r *outing.RegisterOutingRequest) { r.ReturnTime = "25:99" }, outingerrors.ErrInvalidReturnTime},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validRegister()
				tc.mutate(&req)
				_, err := outing.BuildDraft("20240101", req, outingCatalog())
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("date missing wins over reason missing", func(t *testing.T) {
		req := validRegister()
		req.Date = ""
		req.Reason1 = ""
		_, err := outing.BuildDraft("20240101", req, outingCatalog())
		assert.ErrorIs(t, err, outingerrors.ErrDateRequired)
	})

	t.Run("unknown reason code degrades to blank name", func(t *testing.T) {
		req := validRegister()
		req.Reason1 = "ZZZ"
		draft, err := outing.BuildDraft("20240101", req, outingCatalog())
		assert.NoError(t, err)
		assert.Equal(t, "ZZZ", draft.Reason1)
		assert.Empty(t, draft.Reason1Name)
	})
}
