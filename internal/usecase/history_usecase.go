package usecase

import (
	"context"
	"errors"
	"outorga_monitor/internal/domain/entities"
	"outorga_monitor/internal/infrastructure/logging"
	"outorga_monitor/internal/usecase/interfaces"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidLicenseID = errors.New("invalid license_id")
	ErrLicenseNotFound  = errors.New("license not found")
)

// IHistoryUseCase reconstructs a license's 12-month monitoring history.
//
// A license without finalized readings is not an error: the result comes back with
// Started=false and no months.

type IHistoryUseCase interface {
	ReconstructHistory(ctx context.Context, licenseID string) (entities.MonitoringHistory, error)
}

type HistoryUseCase struct {
	licenses interfaces.ILicenseRepository
	readings interfaces.IMeterReadingRepository
	log      *logrus.Entry
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(licenses interfaces.ILicenseRepository, readings interfaces.IMeterReadingRepository) *HistoryUseCase {
	return &HistoryUseCase{
		licenses: licenses,
		readings: readings,
		log:      logging.Module("history", "usecase"),
	}
}

func (u *HistoryUseCase) ReconstructHistory(ctx context.Context, licenseID string) (entities.MonitoringHistory, error) {
	licenseID = strings.TrimSpace(licenseID)
	if licenseID == "" {
		return entities.MonitoringHistory{}, ErrInvalidLicenseID
	}

	lic, err := u.licenses.GetByID(ctx, licenseID)
	if err != nil {
		logging.LogError("history", "ReconstructHistory", "load license", licenseID, err)
		return entities.MonitoringHistory{}, storageErr("get license", err)
	}
	if lic.ID == "" {
		return entities.MonitoringHistory{}, ErrLicenseNotFound
	}

	rows, err := u.readings.ListFinalizedByLicense(ctx, licenseID)
	if err != nil {
		logging.LogError("history", "ReconstructHistory", "list finalized readings", licenseID, err)
		return entities.MonitoringHistory{}, storageErr("list readings", err)
	}

	byMonth := make(map[entities.YearMonth]entities.MeterReading, len(rows))
	var (
		anchor entities.YearMonth
		found  bool
	)
	for _, r := range rows {
		if r.Status != entities.ReadingStatusFinalized {
			continue
		}
		ym := r.Period()
		if !ym.Valid() {
			u.log.WithFields(logrus.Fields{"license_id": licenseID, "reading_id": r.ID, "month": r.Month}).Warn("skipping reading with invalid month")
			continue
		}
		if !found || ym.Before(anchor) {
			anchor = ym
			found = true
		}
		if cur, ok := byMonth[ym]; !ok || r.Supersedes(cur) {
			byMonth[ym] = r
		}
	}

	if !found {
		u.log.WithField("license_id", licenseID).Debug("monitoring not started")
		return entities.MonitoringHistory{LicenseID: licenseID}, nil
	}

	window := entities.MonthWindow(anchor, entities.HistoryWindowMonths)
	months := make([]entities.MonthlyReading, 0, len(window))
	for _, ym := range window {
		m := entities.MonthlyReading{
			MonthLabel: ym.Label(),
			Month:      int(ym.Month),
			Year:       ym.Year,
		}
		if r, ok := byMonth[ym]; ok {
			m.Hydrometer = r.HydrometerValue
			m.HourMeter = r.HourMeterValue
			m.DynamicLevel = r.DynamicLevel
			m.StaticLevel = r.StaticLevel
		}
		months = append(months, m)
	}

	u.log.WithFields(logrus.Fields{"license_id": licenseID, "anchor": anchor.Label(), "readings": len(byMonth)}).Debug("history reconstructed")
	return entities.MonitoringHistory{
		LicenseID: licenseID,
		Started:   true,
		Months:    months,
	}, nil
}
