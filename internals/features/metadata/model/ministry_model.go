package model

type MinistryModel struct {
	MinistryID   uint   `gorm:"column:id;primaryKey;autoIncrement"`
	MinistryCode string `gorm:"column:code;type:varchar(2);uniqueIndex;not null"`
	MinistryName string `gorm:"column:name;type:varchar(200);uniqueIndex;not null"`
}

func (MinistryModel) TableName() string {
	return "ministries"
}
