package model

type CurrentAffairModel struct {
	CurrentAffairID            uint    `gorm:"column:id;primaryKey;autoIncrement"`
	CurrentAffairTitle         string  `gorm:"column:title;type:text;not null"`
	CurrentAffairDescription   string  `gorm:"column:description;type:text"`
	CurrentAffairURL           *string `gorm:"column:url;type:text"`
	CurrentAffairPDFPath       *string `gorm:"column:pdf_path;type:text"`
	CurrentAffairPublishedDate string  `gorm:"column:published_date;type:varchar(10);not null;index"`
}

func (CurrentAffairModel) TableName() string {
	return "current_affairs"
}
