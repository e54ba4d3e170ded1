package interfaces

import (
	"context"
	"outorga_monitor/internal/domain/entities"
)

// IMeterReadingRepository is the read-only view of monthly readings used by history reconstruction.

type IMeterReadingRepository interface {
	ListFinalizedByLicense(ctx context.Context, licenseID string) ([]entities.MeterReading, error)
}
