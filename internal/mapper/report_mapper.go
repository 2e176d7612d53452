package mapper

import (
	"encoding/json"

	"dr-dine-be/internal/entity"
	"dr-dine-be/internal/model"

	"gorm.io/datatypes"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ReportScanToModel(s *entity.ReportScan) *model.ReportScan {
	if s == nil {
		return nil
	}

	conditions, _ := json.Marshal(s.Conditions)

	return &model.ReportScan{
		Id:         s.Id,
		SessionId:  s.SessionId,
		UserIndex:  s.UserIndex,
		Source:     s.Source,
		Conditions: datatypes.JSON(conditions),
		Chars:      s.Chars,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *ReportMapper) ReportScanToEntity(s *model.ReportScan) *entity.ReportScan {
	if s == nil {
		return nil
	}

	var conditions []string
	_ = json.Unmarshal(s.Conditions, &conditions)

	return &entity.ReportScan{
		Id:         s.Id,
		SessionId:  s.SessionId,
		UserIndex:  s.UserIndex,
		Source:     s.Source,
		Conditions: conditions,
		Chars:      s.Chars,
		CreatedAt:  s.CreatedAt,
	}
}
