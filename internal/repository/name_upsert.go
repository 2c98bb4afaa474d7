package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertIgnoreByName 依赖 name 唯一索引写入，冲突时不报错。
// 并发创建同名记录时只有一条落库，调用方随后按名称回查。
func insertIgnoreByName(db *gorm.DB, value interface{}) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(value).Error
}

func errNameUpsertLost(kind, name string) error {
	return fmt.Errorf("%s %q not found after insert", kind, name)
}
