package model

type StateModel struct {
	StateID   uint   `gorm:"column:id;primaryKey;autoIncrement"`
	StateCode string `gorm:"column:code;type:varchar(2);uniqueIndex;not null"`
	StateName string `gorm:"column:name;type:varchar(200);uniqueIndex;not null"`
}

func (StateModel) TableName() string {
	return "states"
}
