package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReportScan struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserIndex  int            `gorm:"not null"`
	Source     string         `gorm:"type:varchar(20);not null"`
	Conditions datatypes.JSON `gorm:"type:jsonb"`
	Chars      int            `gorm:"not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (ReportScan) TableName() string {
	return "report_scans"
}
