package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/client/session"
	"github.com/agoramujeres/agora-client/internal/common"
)

type recordGateway interface {
	GetMonthlyRecord(ctx context.Context, deviceID string) (*models.MonthlyPainRecord, error)
	SaveMonthlyRecord(ctx context.Context, deviceID string, payload models.MonthlyPainRecordCreate) (*models.MonthlyPainRecord, error)
	DeleteMonthlyRecord(ctx context.Context, deviceID string) error
}

// RecordService maintains the device's monthly pain record: at most one
// intensity per calendar date over a rolling 30-day cycle.
type RecordService interface {
	Get(ctx context.Context) (*models.MonthlyPainRecord, error)
	SetIntensity(ctx context.Context, date string, intensity int, notes string) (*models.MonthlyPainRecord, error)
	Delete(ctx context.Context) error
}

type recordService struct {
	gateway recordGateway
	sess    *session.Container
	now     func() time.Time
}

func NewRecordService(gateway recordGateway, sess *session.Container) RecordService {
	return &recordService{gateway: gateway, sess: sess, now: time.Now}
}

// Get returns the device's monthly record. A device with no record yet gets
// a fresh empty one whose cycle starts today; nothing is persisted until
// the first intensity is set.
func (s *recordService) Get(ctx context.Context) (*models.MonthlyPainRecord, error) {
	record, err := s.gateway.GetMonthlyRecord(ctx, s.sess.DeviceID())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return s.emptyRecord(), nil
		}
		return nil, fmt.Errorf("fetching monthly record: %w", err)
	}
	return record, nil
}

// SetIntensity applies one edit to the record and saves it. An intensity of
// models.PainIntensityNone removes the date's entry.
func (s *recordService) SetIntensity(ctx context.Context, date string, intensity int, notes string) (*models.MonthlyPainRecord, error) {
	record, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	records, err := models.SetIntensity(record.Records, date, intensity, notes)
	if err != nil {
		return nil, err
	}

	payload := models.MonthlyPainRecordCreate{
		Records:        records,
		CycleStartDate: record.CycleStartDate.UTC().Format("2006-01-02"),
	}
	saved, err := s.gateway.SaveMonthlyRecord(ctx, s.sess.DeviceID(), payload)
	if err != nil {
		return nil, fmt.Errorf("saving monthly record: %w", err)
	}
	return saved, nil
}

func (s *recordService) Delete(ctx context.Context) error {
	if err := s.gateway.DeleteMonthlyRecord(ctx, s.sess.DeviceID()); err != nil {
		return fmt.Errorf("deleting monthly record: %w", err)
	}
	return nil
}

func (s *recordService) emptyRecord() *models.MonthlyPainRecord {
	today := s.now().UTC().Truncate(24 * time.Hour)
	return &models.MonthlyPainRecord{
		DeviceID:       s.sess.DeviceID(),
		Records:        []models.PainRecord{},
		CycleStartDate: models.Timestamp{Time: today},
	}
}
