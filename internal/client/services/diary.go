package services

import (
	"context"
	"fmt"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/client/session"
	"github.com/agoramujeres/agora-client/internal/logging"
)

// diaryGateway is the slice of the REST client the diary service needs.
type diaryGateway interface {
	CreateDiaryEntry(ctx context.Context, payload models.DiaryEntryCreate) (*models.DiaryEntry, error)
	ListDiaryEntries(ctx context.Context, deviceID string, limit, offset int) ([]models.DiaryEntry, error)
	GetPatterns(ctx context.Context, deviceID string, days int) (*models.Patterns, error)
	GetWeather(ctx context.Context, lat, lon float64) (*models.Weather, error)
}

// DiaryService composes and submits diary entries and fetches the derived
// pattern analysis.
type DiaryService interface {
	Create(ctx context.Context, texto string, emotional models.EmotionalState, physical *models.PhysicalState) (*models.DiaryEntry, error)
	List(ctx context.Context, limit, offset int) ([]models.DiaryEntry, error)
	Patterns(ctx context.Context, days int) (*models.Patterns, error)
}

type diaryService struct {
	gateway  diaryGateway
	sess     *session.Container
	log      logging.Logger
	lat, lon float64
}

// NewDiaryService constructs a DiaryService. When lat and lon are both
// non-zero, each created entry gets a weather snapshot attached.
func NewDiaryService(gateway diaryGateway, sess *session.Container, log logging.Logger, lat, lon float64) DiaryService {
	return &diaryService{
		gateway: gateway,
		sess:    sess,
		log:     log.With("component", "diary"),
		lat:     lat,
		lon:     lon,
	}
}

// Create validates and submits a new diary entry. The weather lookup is
// best effort: a failure is logged and the entry is sent without it.
func (s *diaryService) Create(ctx context.Context, texto string, emotional models.EmotionalState, physical *models.PhysicalState) (*models.DiaryEntry, error) {
	payload := models.DiaryEntryCreate{
		DeviceID:       s.sess.DeviceID(),
		Texto:          texto,
		EmotionalState: emotional,
		PhysicalState:  physical,
	}

	if s.lat != 0 || s.lon != 0 {
		weather, err := s.gateway.GetWeather(ctx, s.lat, s.lon)
		if err != nil {
			s.log.Warn(ctx, "weather lookup failed", "error", err)
		} else {
			payload.Weather = weather
		}
	}

	entry, err := s.gateway.CreateDiaryEntry(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("creating diary entry: %w", err)
	}
	return entry, nil
}

func (s *diaryService) List(ctx context.Context, limit, offset int) ([]models.DiaryEntry, error) {
	return s.gateway.ListDiaryEntries(ctx, s.sess.DeviceID(), limit, offset)
}

func (s *diaryService) Patterns(ctx context.Context, days int) (*models.Patterns, error) {
	return s.gateway.GetPatterns(ctx, s.sess.DeviceID(), days)
}
