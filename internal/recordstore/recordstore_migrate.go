package recordstore

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Student{},
		&ReasonCode{},
		&OutingRecord{},
		&StayRecord{},
	)
}

// SeedReasons installs the reason catalogs. Idempotent: existing codes keep
// their names so a deployment can rename entries without them being reverted
// on restart.
func SeedReasons(db *gorm.DB) error {
	reasons := []ReasonCode{
		{Code: "B01", Kind: KindOuting, Name: "병원", SortOrder: 1},
		{Code: "B02", Kind: KindOuting, Name: "약국", SortOrder: 2},
		{Code: "B03", Kind: KindOuting, Name: "은행", SortOrder: 3},
		{Code: "B99", Kind: KindOuting, Name: "기타", SortOrder: 99},

		{Code: "S01", Kind: KindStay, Name: "가정방문", SortOrder: 1},
		{Code: "S99", Kind: KindStay, Name: "기타", SortOrder: 99},
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reasons).Error
}
