package interfaces

import (
	"context"
	"errors"
	"outorga_monitor/internal/domain/entities"
)

// ErrAutomatedRecordConflict is returned by Create when another automated record already
// holds the (contract, period) pair.
var ErrAutomatedRecordConflict = errors.New("automated record already claimed for period")

// INDNERecordRepository abstracts DynamoDB persistence for NDNERecord.
//
// The reconciler must be able to:
//   - insert a record (manual form or automated intake)
//   - overwrite a record in place on edit / automated upsert
//   - find the automated-origin record of a (contract, period) pair
//   - list a contract's records with optional period/origin/year predicates
//
// Lookups return a zero record (empty ID) when nothing matches. FindAutomated must be
// read-your-writes consistent, and Update of an automated-origin record must not land on a
// record that has been edited to manual since it was read.

type INDNERecordRepository interface {
	Create(ctx context.Context, r entities.NDNERecord) (entities.NDNERecord, error)
	GetByID(ctx context.Context, id string) (entities.NDNERecord, error)
	Update(ctx context.Context, r entities.NDNERecord) (entities.NDNERecord, error)
	FindAutomated(ctx context.Context, contractID string, period entities.Period) (entities.NDNERecord, error)
	ListByContract(ctx context.Context, contractID string, filter entities.NDNEFilter) ([]entities.NDNERecord, error)
}
