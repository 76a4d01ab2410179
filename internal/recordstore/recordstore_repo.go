package recordstore

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=recordstore_repo.go -destination=mock/recordstore_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindStudentByPhone(ctx context.Context, phone string) (*Student, error)
	ReasonsByKind(ctx context.Context, kind string) ([]ReasonCode, error)

	NextOutingSeq(ctx context.Context, date string) (int, error)
	CreateOuting(ctx context.Context, o *OutingRecord) error
	FindOutingsByStudent(ctx context.Context, studentID string) ([]OutingRecord, error)
	FindOutingBySeq(ctx context.Context, date string, seq int) (*OutingRecord, error)
	UpdateOuting(ctx context.Context, o *OutingRecord) error

	NextStaySeq(ctx context.Context, sleepOutDate string) (int, error)
	CreateStay(ctx context.Context, s *StayRecord) error
	FindOpenStaysByStudent(ctx context.Context, studentID string) ([]StayRecord, error)
	FindStayBySeq(ctx context.Context, sleepOutDate string, seq int) (*StayRecord, error)
	UpdateStay(ctx context.Context, s *StayRecord) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindStudentByPhone(ctx context.Context, phone string) (*Student, error) {
	var s Student
	err := r.db.WithContext(ctx).
		First(&s, "phone = ?", phone).Error
	return &s, err
}

func (r *repository) ReasonsByKind(ctx context.Context, kind string) ([]ReasonCode, error) {
	var reasons []ReasonCode
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("sort_order ASC, code ASC").
		Find(&reasons).Error
	return reasons, err
}

// NextOutingSeq assigns the per-day ordinal. Seq is unique per date across
// students because returns identify a record by (date, seq) alone.
func (r *repository) NextOutingSeq(ctx context.Context, date string) (int, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&OutingRecord{}).
		Where("date = ?", date).
		Select("MAX(seq)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return int(max.Int64) + 1, nil
}

func (r *repository) CreateOuting(ctx context.Context, o *OutingRecord) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindOutingsByStudent(ctx context.Context, studentID string) ([]OutingRecord, error) {
	var outings []OutingRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC, seq DESC").
		Find(&outings).Error
	return outings, err
}

func (r *repository) FindOutingBySeq(ctx context.Context, date string, seq int) (*OutingRecord, error) {
	var o OutingRecord
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&o, "seq = ?", seq).Error
	return &o, err
}

func (r *repository) UpdateOuting(ctx context.Context, o *OutingRecord) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) NextStaySeq(ctx context.Context, sleepOutDate string) (int, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&StayRecord{}).
		Where("sleep_out_date = ?", sleepOutDate).
		Select("MAX(seq)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return int(max.Int64) + 1, nil
}

func (r *repository) CreateStay(ctx context.Context, s *StayRecord) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// FindOpenStaysByStudent serves the list endpoint, which only shows stays a
// return can still be filed against.
func (r *repository) FindOpenStaysByStudent(ctx context.Context, studentID string) ([]StayRecord, error) {
	var stays []StayRecord
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Where("actual_return_date IS NULL").
		Order("sleep_out_date DESC, seq DESC").
		Find(&stays).Error
	return stays, err
}

func (r *repository) FindStayBySeq(ctx context.Context, sleepOutDate string, seq int) (*StayRecord, error) {
	var s StayRecord
	err := r.db.WithContext(ctx).
		Where("sleep_out_date = ?", sleepOutDate).
		First(&s, "seq = ?", seq).Error
	return &s, err
}

func (r *repository) UpdateStay(ctx context.Context, s *StayRecord) error {
	return r.db.WithContext(ctx).Save(s).Error
}
