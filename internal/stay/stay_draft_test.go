package stay_test

import (
	"context"
	"testing"

	"go-outpass/internal/catalog"
	"go-outpass/internal/stay"
	stayerrors "go-outpass/internal/stay/errors"

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

func stayCatalog() *fakeCatalog {
	return &fakeCatalog{names: map[string]string{
		"S01": "가정방문",
		"S99": "기타",
	}}
}

func validRegister() stay.RegisterStayRequest {
	return stay.RegisterStayRequest{
		Date:       "2024-06-07",
		Time:       "18:00",
		ReturnDate: "2024-06-09",
		ReturnTime: "20:00",
		Reason:     "S01",
	}
}

func TestBuildDraft(t *testing.T) {
	t.Run("resolves the reason name and normalizes times", func(t *testing.T) {
		req := validRegister()
		req.Time = "18:04"
		req.ReturnTime = "19:58"

		draft, err := stay.BuildDraft("20240101", req, stayCatalog())
		assert.NoError(t, err)
		assert.Equal(t, "20240101", draft.StudentID)
		assert.Equal(t, "18:00", draft.Time)
		assert.Equal(t, "20:00", draft.ReturnTime)
		assert.Equal(t, "가정방문", draft.ReasonName)
	})

	t.Run("same-day stay is allowed", func(t *testing.T) {
		req := validRegister()
		req.ReturnDate = req.Date

		_, err := stay.BuildDraft("20240101", req, stayCatalog())
		assert.NoError(t, err)
	})

	t.Run("return date before departure is rejected", func(t *testing.T) {
		req := validRegister()
		req.ReturnDate = "2024-06-06"

		_, err := stay.BuildDraft("20240101", req, stayCatalog())
		assert.ErrorIs(t, err, stayerrors.ErrReturnBeforeDeparture)
	})

	t.Run("fails fast in field order", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*stay.RegisterStayRequest)
			want   error
		}{
			{"missing date", func(r *stay.RegisterStayRequest) { r.Date = "" }, stayerrors.ErrDateRequired},
			{"missing time", func(r *stay.RegisterStayRequest) { r.Time = "" }, stayerrors.ErrTimeRequired},
			{"missing return date", func(r *stay.RegisterStayRequest) { r.ReturnDate = "" }, stayerrors.ErrReturnDateRequired},
			{"missing return time", func(r *stay.RegisterStayRequest) { r.ReturnTime = "" }, stayerrors.ErrReturnTimeRequired},
			{"missing reason", func(r *stay.RegisterStayRequest) { r.Reason = "" }, stayerrors.ErrReasonRequired},
			{"malformed time", func(r *stay.RegisterStayRequest) { r.Time = "evening" }, stayerrors.ErrInvalidTime},
			{"malformed return time", func(r *stay.RegisterStayRequest) { r.ReturnTime = "24:00" }, stayerrors.ErrInvalidReturnTime},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validRegister()
				tc.mutate(&req)
				_, err := stay.BuildDraft("20240101", req, stayCatalog())
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("date missing wins over reason missing", func(t *testing.T) {
		req := validRegister()
		req.Date = ""
		req.Reason = ""
		_, err := stay.BuildDraft("20240101", req, stayCatalog())
		assert.ErrorIs(t, err, stayerrors.ErrDateRequired)
	})

	t.Run("unknown reason code degrades to blank name", func(t *testing.T) {
		req := validRegister()
		req.Reason = "ZZZ"
		draft, err := stay.BuildDraft("20240101", req, stayCatalog())
		assert.NoError(t, err)
		assert.Equal(t, "ZZZ", draft.Reason)
		assert.Empty(t, draft.ReasonName)
	})
}
