package contract

import (
	"context"

	"dr-dine-be/internal/entity"
	"dr-dine-be/internal/repository/specification"
)

type ReportScanRepository interface {
	Create(ctx context.Context, scan *entity.ReportScan) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReportScan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
