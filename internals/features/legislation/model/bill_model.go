package model

// BillModel: satu RUU. StateCode hanya terisi untuk State Assembly.
type BillModel struct {
	BillID              uint    `gorm:"column:id;primaryKey;autoIncrement"`
	BillCode            string  `gorm:"column:bill_code;type:varchar(16);uniqueIndex;not null"`
	BillName            string  `gorm:"column:bill_name;type:text;not null"`
	BillIntroducedBy    string  `gorm:"column:introduced_by;type:text"`
	BillMinistryCode    string  `gorm:"column:ministry_code;type:varchar(2);not null;index"`
	BillLegislativeBody string  `gorm:"column:legislative_body;type:varchar(20);not null;index"`
	BillStateCode       *string `gorm:"column:state_code;type:varchar(2);index"`
	BillVotesFavour     int     `gorm:"column:votes_favour;not null"`
	BillVotesAgainst    int     `gorm:"column:votes_against;not null"`
	BillCurrentStatus   string  `gorm:"column:current_status;type:varchar(16);not null"`
	BillApprovalStatus  string  `gorm:"column:approval_status;type:varchar(24);not null"`
	BillApprovalResult  string  `gorm:"column:approval_result;type:varchar(8);not null"`
	BillIsMoneyBill     bool    `gorm:"column:is_money_bill;not null"`
	BillPDFPath         *string `gorm:"column:pdf_path;type:text"`
	BillIntroducedDate  string  `gorm:"column:introduced_date;type:varchar(10);not null;index"`
}

func (BillModel) TableName() string {
	return "bills"
}

// BillRow = bill + nama ministry/state hasil join (untuk list & detail).
type BillRow struct {
	BillModel
	MinistryName string  `gorm:"column:ministry_name"`
	StateName    *string `gorm:"column:state_name"`
}
