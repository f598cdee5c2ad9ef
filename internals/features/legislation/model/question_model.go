package model

type QuestionModel struct {
	QuestionID              uint    `gorm:"column:id;primaryKey;autoIncrement"`
	QuestionCode            string  `gorm:"column:question_code;type:varchar(16);uniqueIndex;not null"`
	QuestionTitle           string  `gorm:"column:question_title;type:text;not null"`
	QuestionIntroducedBy    string  `gorm:"column:introduced_by;type:text"`
	QuestionMinistryCode    string  `gorm:"column:ministry_code;type:varchar(2);not null;index"`
	QuestionLegislativeBody string  `gorm:"column:legislative_body;type:varchar(20);not null;index"`
	QuestionStateCode       *string `gorm:"column:state_code;type:varchar(2);index"`
	QuestionType            string  `gorm:"column:q_type;type:varchar(10);not null"`
	QuestionCurrentStatus   string  `gorm:"column:current_status;type:varchar(16);not null"`
	QuestionPDFPath         *string `gorm:"column:pdf_path;type:text"`
	QuestionIntroducedDate  string  `gorm:"column:introduced_date;type:varchar(10);not null;index"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

type QuestionRow struct {
	QuestionModel
	MinistryName string  `gorm:"column:ministry_name"`
	StateName    *string `gorm:"column:state_name"`
}
