package implementation

import (
	"context"

	"dr-dine-be/internal/entity"
	"dr-dine-be/internal/mapper"
	"dr-dine-be/internal/model"
	"dr-dine-be/internal/repository/contract"
	"dr-dine-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReportScanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReportMapper
}

func NewReportScanRepository(db *gorm.DB) contract.ReportScanRepository {
	return &ReportScanRepositoryImpl{
		db:     db,
		mapper: mapper.NewReportMapper(),
	}
}

func (r *ReportScanRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReportScanRepositoryImpl) Create(ctx context.Context, scan *entity.ReportScan) error {
	m := r.mapper.ReportScanToModel(scan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scan = *r.mapper.ReportScanToEntity(m)
	return nil
}

func (r *ReportScanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReportScan, error) {
	var models []*model.ReportScan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ReportScan, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ReportScanToEntity(m)
	}
	return entities, nil
}

func (r *ReportScanRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ReportScan{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
