package services

import (
	"context"
	"fmt"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/client/session"
)

type cycleGateway interface {
	CreateCycleEntry(ctx context.Context, payload models.CycleEntryCreate) (*models.CycleEntry, error)
	ListCycleEntries(ctx context.Context, deviceID string, limit int) ([]models.CycleEntry, error)
}

// CycleService records and lists menstrual cycle entries.
type CycleService interface {
	Add(ctx context.Context, start models.Timestamp, end *models.Timestamp, notes string) (*models.CycleEntry, error)
	List(ctx context.Context, limit int) ([]models.CycleEntry, error)
}

type cycleService struct {
	gateway cycleGateway
	sess    *session.Container
}

func NewCycleService(gateway cycleGateway, sess *session.Container) CycleService {
	return &cycleService{gateway: gateway, sess: sess}
}

func (s *cycleService) Add(ctx context.Context, start models.Timestamp, end *models.Timestamp, notes string) (*models.CycleEntry, error) {
	payload := models.CycleEntryCreate{
		DeviceID:  s.sess.DeviceID(),
		StartDate: start,
		EndDate:   end,
		Notes:     notes,
	}
	entry, err := s.gateway.CreateCycleEntry(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("creating cycle entry: %w", err)
	}
	return entry, nil
}

func (s *cycleService) List(ctx context.Context, limit int) ([]models.CycleEntry, error) {
	return s.gateway.ListCycleEntries(ctx, s.sess.DeviceID(), limit)
}
