package recordstore

import (
	"time"

	"github.com/google/uuid"
)

// Dates and clock values are stored as the wire strings (YYYY-MM-DD, HH:MM).
// The leave desk treats them as opaque labels, so the record store does too;
// ordering still works because both formats sort lexicographically.

type Student struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_students_student_id"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Grade     string    `gorm:"type:varchar(10);not null"`
	Class     string    `gorm:"type:varchar(10)"`
	Phone     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_students_phone"`
	Password  string    `gorm:"type:varchar(100);not null"` // bcrypt hash

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReasonCode is one catalog entry. Kind separates the outing catalog from the
// stay catalog; the same code value may exist in both.
type ReasonCode struct {
	Code      string `gorm:"type:varchar(10);primaryKey"`
	Kind      string `gorm:"type:varchar(10);primaryKey"`
	Name      string `gorm:"type:varchar(50);not null"`
	SortOrder int    `gorm:"type:int;not null;default:0"`
}

// OutingRecord is one registered same-day leave. Seq is the per-day ordinal
// assigned at registration; (date, seq) is the identity returns are submitted
// against, so it is unique on its own.
type OutingRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID string    `gorm:"type:varchar(20);not null;index:idx_outings_student"`
	Date      string    `gorm:"type:char(10);not null;uniqueIndex:idx_outings_identity"`
	Seq       int       `gorm:"type:int;not null;uniqueIndex:idx_outings_identity"`

	Time       string `gorm:"type:char(5);not null"`
	ReturnTime string `gorm:"type:char(5);not null"` // expected return

	Reason1     string `gorm:"type:varchar(10);not null"`
	Reason1Name string `gorm:"type:varchar(50)"`
	Reason2     string `gorm:"type:varchar(10)"`
	Reason2Name string `gorm:"type:varchar(50)"`
	OtherReason string `gorm:"type:text"`

	ActualReturnTime *string `gorm:"type:char(5)"`
	ReturnType       *string `gorm:"type:varchar(20)"`
	Note             *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StayRecord is one registered overnight leave, keyed by sleep-out date the
// same way outings are keyed by date.
type StayRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID    string    `gorm:"type:varchar(20);not null;index:idx_stays_student"`
	SleepOutDate string    `gorm:"type:char(10);not null;uniqueIndex:idx_stays_identity"`
	Seq          int       `gorm:"type:int;not null;uniqueIndex:idx_stays_identity"`

	Time       string `gorm:"type:char(5);not null"`
	ReturnDate string `gorm:"type:char(10);not null"`
	ReturnTime string `gorm:"type:char(5);not null"`

	Reason      string `gorm:"type:varchar(10);not null"`
	ReasonName  string `gorm:"type:varchar(50)"`
	OtherReason string `gorm:"type:text"`

	ActualReturnDate *string `gorm:"type:char(10)"`
	ActualReturnTime *string `gorm:"type:char(5)"`
	ReturnType       *string `gorm:"type:varchar(20)"`
	Note             *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
