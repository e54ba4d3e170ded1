package interfaces

import (
	"context"
	"outorga_monitor/internal/domain/entities"
)

// ILicenseRepository abstracts DynamoDB persistence for License.
//
// GetByID returns a zero License (empty ID) when nothing matches.

type ILicenseRepository interface {
	GetByID(ctx context.Context, id string) (entities.License, error)
}
