package usecase

import (
	"context"
	"errors"
	"fmt"
	"outorga_monitor/internal/domain/entities"
	"outorga_monitor/internal/infrastructure/logging"
	"outorga_monitor/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNDNERecordNotFound    = errors.New("ndne record not found")
	ErrAutomatedRecordExists = errors.New("an automated record already exists for this period, use edit")
	ErrInvalidContractID     = errors.New("invalid contract_id")
	ErrInvalidNDNERecordID   = errors.New("invalid ndne record id")
	ErrInvalidActor          = errors.New("invalid actor")
	ErrInvalidNDNEFilter     = errors.New("invalid ndne filter")
	ErrLockerNotConfigured   = errors.New("key locker not configured")
)

// INDNEUseCase exposes the ND/NE reconciler.
//
//   - Validate(): field checks only, nothing is stored
//   - Create(): manual form submission, rejected when an automated record owns the period
//   - Update(): manual edit, provenance preserved
//   - UpsertAutomated(): automated intake, one automated record per (contract, period)
//   - List()/GetByID(): retrieval

type INDNEUseCase interface {
	Validate(fields NDNEFields) *ValidationError
	Create(ctx context.Context, contractID string, fields NDNEFields, actor string) (entities.NDNERecord, error)
	Update(ctx context.Context, id string, fields NDNEFields, actor string) (entities.NDNERecord, error)
	UpsertAutomated(ctx context.Context, contractID string, fields NDNEFields, actor string) (entities.NDNERecord, error)
	GetByID(ctx context.Context, id string) (entities.NDNERecord, error)
	List(ctx context.Context, contractID string, filter entities.NDNEFilter) ([]entities.NDNERecord, error)
}

type NDNEUseCase struct {
	repo   interfaces.INDNERecordRepository
	locker interfaces.IKeyLocker
	now    func() time.Time
	log    *logrus.Entry
}

var _ INDNEUseCase = (*NDNEUseCase)(nil)

func NewNDNEUseCase(repo interfaces.INDNERecordRepository, locker interfaces.IKeyLocker) *NDNEUseCase {
	return &NDNEUseCase{
		repo:   repo,
		locker: locker,
		now:    func() time.Time { return time.Now().UTC() },
		log:    logging.Module("ndne", "usecase"),
	}
}

// PeriodLockKey is the serialization key of the duplicate-automated guard.
func PeriodLockKey(contractID string, period entities.Period) string {
	return fmt.Sprintf("ndne:%s:%s", contractID, period)
}

func (u *NDNEUseCase) Validate(fields NDNEFields) *ValidationError {
	return ValidateNDNE(fields)
}

func (u *NDNEUseCase) Create(ctx context.Context, contractID string, fields NDNEFields, actor string) (entities.NDNERecord, error) {
	contractID = strings.TrimSpace(contractID)
	actor = strings.TrimSpace(actor)
	if contractID == "" {
		return entities.NDNERecord{}, ErrInvalidContractID
	}
	if actor == "" {
		return entities.NDNERecord{}, ErrInvalidActor
	}

	values, verr := parseNDNE(fields)
	if verr != nil {
		u.log.WithFields(logrus.Fields{"op": "create", "contract_id": contractID, "fields": verr.Fields}).Info("validation failed")
		return entities.NDNERecord{}, verr
	}

	unlock, err := u.lock(ctx, contractID, values.period)
	if err != nil {
		return entities.NDNERecord{}, err
	}
	defer unlock()

	// Business rule: a manual entry never shadows the automated record of its period.
	existing, err := u.repo.FindAutomated(ctx, contractID, values.period)
	if err != nil {
		logging.LogError("ndne", "Create", "find automated record", contractID, err)
		return entities.NDNERecord{}, storageErr("find automated", err)
	}
	if existing.ID != "" {
		u.log.WithFields(logrus.Fields{"op": "create", "contract_id": contractID, "period": values.period, "existing_id": existing.ID}).Info("automated record already exists")
		return entities.NDNERecord{}, ErrAutomatedRecordExists
	}

	rec := entities.NDNERecord{
		ID:         uuid.NewString(),
		ContractID: contractID,
		Origin:     entities.OriginManual,
		CreatedAt:  u.now(),
		CreatedBy:  actor,
	}
	values.applyTo(&rec)

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		logging.LogError("ndne", "Create", "insert record", rec.ID, err)
		return entities.NDNERecord{}, storageErr("create", err)
	}
	u.log.WithFields(logrus.Fields{"op": "create", "contract_id": contractID, "id": created.ID, "period": created.Period}).Info("record created")
	return created, nil
}

func (u *NDNEUseCase) Update(ctx context.Context, id string, fields NDNEFields, actor string) (entities.NDNERecord, error) {
	id = strings.TrimSpace(id)
	actor = strings.TrimSpace(actor)
	if id == "" {
		return entities.NDNERecord{}, ErrInvalidNDNERecordID
	}
	if actor == "" {
		return entities.NDNERecord{}, ErrInvalidActor
	}

	existing, err := u.load(ctx, id)
	if err != nil {
		return entities.NDNERecord{}, err
	}

	// An edit may move the record to the other period, so both keys of the contract are held.
	unlock, err := u.lock(ctx, existing.ContractID, entities.PeriodDry, entities.PeriodWet)
	if err != nil {
		return entities.NDNERecord{}, err
	}
	defer unlock()

	existing, err = u.load(ctx, id)
	if err != nil {
		return entities.NDNERecord{}, err
	}

	values, verr := parseNDNE(merge(fieldsOf(existing), fields))
	if verr != nil {
		u.log.WithFields(logrus.Fields{"op": "update", "id": id, "fields": verr.Fields}).Info("validation failed")
		return entities.NDNERecord{}, verr
	}

	if values.period != existing.Period {
		other, err := u.repo.FindAutomated(ctx, existing.ContractID, values.period)
		if err != nil {
			logging.LogError("ndne", "Update", "find automated record", existing.ContractID, err)
			return entities.NDNERecord{}, storageErr("find automated", err)
		}
		if other.ID != "" && other.ID != existing.ID {
			u.log.WithFields(logrus.Fields{"op": "update", "id": id, "period": values.period, "existing_id": other.ID}).Info("automated record already exists")
			return entities.NDNERecord{}, ErrAutomatedRecordExists
		}
	}

	// The pre-edit origin becomes the original exactly once.
	preserved := existing.Origin
	if existing.OriginalOrigin != nil {
		preserved = *existing.OriginalOrigin
	}
	now := u.now()

	rec := existing
	values.applyTo(&rec)
	rec.OriginalOrigin = &preserved
	rec.Origin = entities.OriginManual
	rec.EditedAt = &now
	rec.EditedBy = actor

	updated, err := u.repo.Update(ctx, rec)
	if err != nil {
		logging.LogError("ndne", "Update", "write record", id, err)
		return entities.NDNERecord{}, storageErr("update", err)
	}
	if updated.ID == "" {
		return entities.NDNERecord{}, ErrNDNERecordNotFound
	}
	u.log.WithFields(logrus.Fields{"op": "update", "id": id, "original_origin": preserved}).Info("record updated")
	return updated, nil
}

func (u *NDNEUseCase) UpsertAutomated(ctx context.Context, contractID string, fields NDNEFields, actor string) (entities.NDNERecord, error) {
	contractID = strings.TrimSpace(contractID)
	actor = strings.TrimSpace(actor)
	if contractID == "" {
		return entities.NDNERecord{}, ErrInvalidContractID
	}
	if actor == "" {
		return entities.NDNERecord{}, ErrInvalidActor
	}

	values, verr := parseNDNE(fields)
	if verr != nil {
		u.log.WithFields(logrus.Fields{"op": "upsert-automated", "contract_id": contractID, "fields": verr.Fields}).Info("validation failed")
		return entities.NDNERecord{}, verr
	}

	unlock, err := u.lock(ctx, contractID, values.period)
	if err != nil {
		return entities.NDNERecord{}, err
	}
	defer unlock()

	existing, err := u.repo.FindAutomated(ctx, contractID, values.period)
	if err != nil {
		logging.LogError("ndne", "UpsertAutomated", "find automated record", contractID, err)
		return entities.NDNERecord{}, storageErr("find automated", err)
	}

	if existing.ID != "" {
		rec := existing
		values.applyTo(&rec)
		updated, err := u.repo.Update(ctx, rec)
		if err != nil {
			logging.LogError("ndne", "UpsertAutomated", "overwrite record", existing.ID, err)
			return entities.NDNERecord{}, storageErr("update", err)
		}
		if updated.ID != "" {
			u.log.WithFields(logrus.Fields{"op": "upsert-automated", "contract_id": contractID, "id": updated.ID}).Info("automated record overwritten")
			return updated, nil
		}
		// Edited to manual (or removed) since it was read: the period gets a new automated record.
		u.log.WithFields(logrus.Fields{"op": "upsert-automated", "contract_id": contractID, "id": existing.ID}).Info("automated record no longer automated")
	}

	rec := entities.NDNERecord{
		ID:         uuid.NewString(),
		ContractID: contractID,
		Origin:     entities.OriginAutomated,
		CreatedAt:  u.now(),
		CreatedBy:  actor,
	}
	values.applyTo(&rec)

	created, err := u.repo.Create(ctx, rec)
	if errors.Is(err, interfaces.ErrAutomatedRecordConflict) {
		u.log.WithFields(logrus.Fields{"op": "upsert-automated", "contract_id": contractID, "period": values.period}).Warn("automated record claimed concurrently")
		return entities.NDNERecord{}, ErrAutomatedRecordExists
	}
	if err != nil {
		logging.LogError("ndne", "UpsertAutomated", "insert record", rec.ID, err)
		return entities.NDNERecord{}, storageErr("create", err)
	}
	u.log.WithFields(logrus.Fields{"op": "upsert-automated", "contract_id": contractID, "id": created.ID}).Info("automated record created")
	return created, nil
}

func (u *NDNEUseCase) GetByID(ctx context.Context, id string) (entities.NDNERecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.NDNERecord{}, ErrInvalidNDNERecordID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.NDNERecord{}, storageErr("get", err)
	}
	if r.ID == "" {
		return entities.NDNERecord{}, ErrNDNERecordNotFound
	}
	return r, nil
}

func (u *NDNEUseCase) List(ctx context.Context, contractID string, filter entities.NDNEFilter) ([]entities.NDNERecord, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	if filter.Period != nil && !filter.Period.Valid() {
		return nil, ErrInvalidNDNEFilter
	}
	if filter.Origin != nil && !filter.Origin.Valid() {
		return nil, ErrInvalidNDNEFilter
	}

	records, err := u.repo.ListByContract(ctx, contractID, filter)
	if err != nil {
		logging.LogError("ndne", "List", "list records", contractID, err)
		return nil, storageErr("list", err)
	}

	out := make([]entities.NDNERecord, 0, len(records))
	for _, r := range records {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].MeasuredOn.Equal(out[j].MeasuredOn) {
			return out[i].MeasuredOn.After(out[j].MeasuredOn)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *NDNEUseCase) load(ctx context.Context, id string) (entities.NDNERecord, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		logging.LogError("ndne", "Update", "load record", id, err)
		return entities.NDNERecord{}, storageErr("get", err)
	}
	if rec.ID == "" {
		return entities.NDNERecord{}, ErrNDNERecordNotFound
	}
	return rec, nil
}

// lock takes the period keys of a contract in the order given and returns a release for all of them.
// Callers holding several keys pass them in a fixed order (dry before wet).
func (u *NDNEUseCase) lock(ctx context.Context, contractID string, periods ...entities.Period) (func(), error) {
	if u.locker == nil {
		return nil, ErrLockerNotConfigured
	}
	unlocks := make([]func(), 0, len(periods))
	release := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
	for _, p := range periods {
		key := PeriodLockKey(contractID, p)
		unlock, err := u.locker.Lock(ctx, key)
		if err != nil {
			logging.LogError("ndne", "lock", "obtain period lock", key, err)
			release()
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return release, nil
}
