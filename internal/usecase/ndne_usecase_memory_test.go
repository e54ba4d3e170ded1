package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"outorga_monitor/internal/domain/entities"
	"outorga_monitor/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryNDNERepository is an in-memory INDNERecordRepository for property-style tests.
// It follows the store contract: one automated record per (contract, period) on Create,
// and automated writes never land on a record that is manual by now.
type memoryNDNERepository struct {
	mu      sync.Mutex
	records map[string]entities.NDNERecord

	// afterFindAutomated runs once the lookup returns, outside the repository mutex.
	afterFindAutomated func()
}

func newMemoryNDNERepository() *memoryNDNERepository {
	return &memoryNDNERepository{records: map[string]entities.NDNERecord{}}
}

func (m *memoryNDNERepository) Create(_ context.Context, r entities.NDNERecord) (entities.NDNERecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[r.ID]; ok {
		return entities.NDNERecord{}, errors.New("duplicate id")
	}
	if r.Origin == entities.OriginAutomated {
		for _, cur := range m.records {
			if cur.ContractID == r.ContractID && cur.Period == r.Period && cur.Origin == entities.OriginAutomated {
				return entities.NDNERecord{}, interfaces.ErrAutomatedRecordConflict
			}
		}
	}
	m.records[r.ID] = r
	return r, nil
}

func (m *memoryNDNERepository) GetByID(_ context.Context, id string) (entities.NDNERecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id], nil
}

func (m *memoryNDNERepository) Update(_ context.Context, r entities.NDNERecord) (entities.NDNERecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.records[r.ID]
	if !ok {
		return entities.NDNERecord{}, nil
	}
	if r.Origin == entities.OriginAutomated && cur.Origin != entities.OriginAutomated {
		return entities.NDNERecord{}, nil
	}
	m.records[r.ID] = r
	return r, nil
}

func (m *memoryNDNERepository) FindAutomated(_ context.Context, contractID string, period entities.Period) (entities.NDNERecord, error) {
	found := m.findAutomated(contractID, period)
	if m.afterFindAutomated != nil {
		m.afterFindAutomated()
	}
	return found, nil
}

func (m *memoryNDNERepository) findAutomated(contractID string, period entities.Period) entities.NDNERecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ContractID == contractID && r.Period == period && r.Origin == entities.OriginAutomated {
			return r
		}
	}
	return entities.NDNERecord{}
}

func (m *memoryNDNERepository) ListByContract(_ context.Context, contractID string, filter entities.NDNEFilter) ([]entities.NDNERecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.NDNERecord
	for _, r := range m.records {
		if r.ContractID == contractID && filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryNDNERepository) countAutomated(contractID string, period entities.Period) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.records {
		if r.ContractID == contractID && r.Period == period && r.Origin == entities.OriginAutomated {
			n++
		}
	}
	return n
}

type mutexLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *mutexLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = map[string]*sync.Mutex{}
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock, nil
}

func TestNDNEUseCase_AtMostOneAutomatedRecordPerPeriod(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryNDNERepository()
	uc := NewNDNEUseCase(repo, &mutexLocker{})

	first, err := uc.UpsertAutomated(ctx, "C1", validFields(), "intake")
	require.NoError(t, err)

	f := validFields()
	f.DynamicLevel = strp("14")
	second, err := uc.UpsertAutomated(ctx, "C1", f, "intake")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.countAutomated("C1", entities.PeriodWet))

	_, err = uc.Create(ctx, "C1", validFields(), "user-1")
	assert.ErrorIs(t, err, ErrAutomatedRecordExists)
	assert.Equal(t, 1, repo.countAutomated("C1", entities.PeriodWet))

	all, err := uc.List(ctx, "C1", entities.NDNEFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Other period of the same contract is free.
	dry := validFields()
	dry.Period = periodp(entities.PeriodDry)
	dry.MeasuredOn = strp("2024-06-03")
	_, err = uc.Create(ctx, "C1", dry, "user-1")
	assert.NoError(t, err)
}

func TestNDNEUseCase_ConcurrentUpsertsKeepOneAutomatedRecord(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryNDNERepository()
	uc := NewNDNEUseCase(repo, &mutexLocker{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.UpsertAutomated(ctx, "C1", validFields(), "intake")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, repo.countAutomated("C1", entities.PeriodWet))
}

func TestNDNEUseCase_ProvenanceAcrossEdits(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryNDNERepository()
	uc := NewNDNEUseCase(repo, &mutexLocker{})

	rec, err := uc.UpsertAutomated(ctx, "C1", validFields(), "intake")
	require.NoError(t, err)
	require.Nil(t, rec.OriginalOrigin)
	require.Equal(t, entities.OriginAutomated, rec.Origin)

	edited, err := uc.Update(ctx, rec.ID, NDNEFields{DynamicLevel: strp("13")}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, edited.OriginalOrigin)
	assert.Equal(t, entities.OriginAutomated, *edited.OriginalOrigin)
	assert.Equal(t, entities.OriginManual, edited.Origin)
	assert.Equal(t, entities.ProvenanceEdited, edited.Provenance())

	again, err := uc.Update(ctx, rec.ID, NDNEFields{ResponsibleName: strp("Carla")}, "user-2")
	require.NoError(t, err)
	require.NotNil(t, again.OriginalOrigin)
	assert.Equal(t, entities.OriginAutomated, *again.OriginalOrigin)
	assert.Equal(t, "user-2", again.EditedBy)

	// Once edited the record is manual, so the period is open for a new automated record.
	assert.Equal(t, 0, repo.countAutomated("C1", entities.PeriodWet))
	_, err = uc.Create(ctx, "C1", validFields(), "user-3")
	assert.NoError(t, err)
}

func TestNDNEUseCase_ListYearFilter(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryNDNERepository()
	uc := NewNDNEUseCase(repo, &mutexLocker{})

	for _, d := range []string{"2023-12-31", "2024-01-01", "2024-12-31", "2025-01-01"} {
		f := validFields()
		f.MeasuredOn = strp(d)
		_, err := uc.Create(ctx, "C1", f, "user-1")
		require.NoError(t, err)
	}

	year := 2024
	got, err := uc.List(ctx, "C1", entities.NDNEFilter{Year: &year})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-12-31", got[0].MeasuredOn.Format(MeasuredOnLayout))
	assert.Equal(t, "2024-01-01", got[1].MeasuredOn.Format(MeasuredOnLayout))
}

func TestNDNEUseCase_EditDuringAutomatedUpsertIsKept(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryNDNERepository()
	uc := NewNDNEUseCase(repo, &mutexLocker{})

	rec, err := uc.UpsertAutomated(ctx, "C1", validFields(), "intake")
	require.NoError(t, err)

	var (
		once    sync.Once
		editErr error
		edited  = make(chan struct{})
	)
	// The edit starts while the upsert sits between its read and its write.
	repo.afterFindAutomated = func() {
		once.Do(func() {
			go func() {
				defer close(edited)
				_, editErr = uc.Update(ctx, rec.ID, NDNEFields{DynamicLevel: strp("99")}, "alice")
			}()
			time.Sleep(50 * time.Millisecond)
		})
	}

	f := validFields()
	f.DynamicLevel = strp("11")
	_, err = uc.UpsertAutomated(ctx, "C1", f, "intake")
	require.NoError(t, err)
	<-edited
	require.NoError(t, editErr)

	got, err := uc.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OriginManual, got.Origin)
	require.NotNil(t, got.OriginalOrigin)
	assert.Equal(t, entities.OriginAutomated, *got.OriginalOrigin)
	assert.Equal(t, "alice", got.EditedBy)
	assert.Equal(t, "99", got.DynamicLevel.String())
	assert.Equal(t, entities.ProvenanceEdited, got.Provenance())
	assert.LessOrEqual(t, repo.countAutomated("C1", entities.PeriodWet), 1)
}

func TestNDNEUseCase_AutomatedWriteSkipsRecordEditedOutsideTheLock(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryNDNERepository()
	uc := NewNDNEUseCase(repo, &mutexLocker{})

	rec, err := uc.UpsertAutomated(ctx, "C1", validFields(), "intake")
	require.NoError(t, err)

	// Another process flips the record to manual right after the lookup.
	repo.afterFindAutomated = func() {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		r := repo.records[rec.ID]
		automated := entities.OriginAutomated
		r.Origin, r.OriginalOrigin, r.EditedBy = entities.OriginManual, &automated, "bob"
		repo.records[rec.ID] = r
		repo.afterFindAutomated = nil
	}

	f := validFields()
	f.DynamicLevel = strp("12")
	fresh, err := uc.UpsertAutomated(ctx, "C1", f, "intake")
	require.NoError(t, err)
	assert.NotEqual(t, rec.ID, fresh.ID)
	assert.Equal(t, entities.OriginAutomated, fresh.Origin)

	kept, err := uc.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OriginManual, kept.Origin)
	assert.Equal(t, "bob", kept.EditedBy)
	assert.Equal(t, "10", kept.DynamicLevel.String())
	assert.Equal(t, 1, repo.countAutomated("C1", entities.PeriodWet))
}

func TestNDNEUseCase_EditCannotShadowAutomatedPeriod(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryNDNERepository()
	uc := NewNDNEUseCase(repo, &mutexLocker{})

	dry := validFields()
	dry.Period = periodp(entities.PeriodDry)
	dry.MeasuredOn = strp("2024-06-03")
	_, err := uc.UpsertAutomated(ctx, "C1", dry, "intake")
	require.NoError(t, err)

	manual, err := uc.Create(ctx, "C1", validFields(), "user-1")
	require.NoError(t, err)

	_, err = uc.Update(ctx, manual.ID, NDNEFields{Period: periodp(entities.PeriodDry), MeasuredOn: strp("2024-06-10")}, "user-1")
	assert.ErrorIs(t, err, ErrAutomatedRecordExists)

	got, err := uc.GetByID(ctx, manual.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PeriodWet, got.Period)
}
