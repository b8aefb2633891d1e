package services

import (
	"context"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// stubAPI implements every gateway slice the services consume, with
// scripted responses and recorded calls.
type stubAPI struct {
	createdDiary  []models.DiaryEntryCreate
	diaryErr      error
	diaryEntries  []models.DiaryEntry
	patterns      *models.Patterns
	weather       *models.Weather
	weatherErr    error
	weatherCalls  int
	createdCycles []models.CycleEntryCreate
	cycles        []models.CycleEntry

	record     *models.MonthlyPainRecord
	recordErr  error
	saved      []models.MonthlyPainRecordCreate
	saveErr    error
	deleted    int
	deleteErr  error

	customerID    string
	customerErr   error
	customers     []models.CustomerCreate
	intent        *models.PaymentIntent
	intentErr     error
	activated     []string
	activateErr   error
	activatedResp string
}

func (a *stubAPI) CreateDiaryEntry(ctx context.Context, payload models.DiaryEntryCreate) (*models.DiaryEntry, error) {
	a.createdDiary = append(a.createdDiary, payload)
	if a.diaryErr != nil {
		return nil, a.diaryErr
	}
	return &models.DiaryEntry{ID: "e1", DeviceID: payload.DeviceID, Texto: payload.Texto,
		EmotionalState: payload.EmotionalState, PhysicalState: payload.PhysicalState, Weather: payload.Weather}, nil
}

func (a *stubAPI) ListDiaryEntries(ctx context.Context, deviceID string, limit, offset int) ([]models.DiaryEntry, error) {
	return a.diaryEntries, nil
}

func (a *stubAPI) GetPatterns(ctx context.Context, deviceID string, days int) (*models.Patterns, error) {
	return a.patterns, nil
}

func (a *stubAPI) GetWeather(ctx context.Context, lat, lon float64) (*models.Weather, error) {
	a.weatherCalls++
	return a.weather, a.weatherErr
}

func (a *stubAPI) CreateCycleEntry(ctx context.Context, payload models.CycleEntryCreate) (*models.CycleEntry, error) {
	a.createdCycles = append(a.createdCycles, payload)
	return &models.CycleEntry{ID: "c1", DeviceID: payload.DeviceID, StartDate: payload.StartDate,
		EndDate: payload.EndDate, Notes: payload.Notes}, nil
}

func (a *stubAPI) ListCycleEntries(ctx context.Context, deviceID string, limit int) ([]models.CycleEntry, error) {
	return a.cycles, nil
}

func (a *stubAPI) GetMonthlyRecord(ctx context.Context, deviceID string) (*models.MonthlyPainRecord, error) {
	return a.record, a.recordErr
}

func (a *stubAPI) SaveMonthlyRecord(ctx context.Context, deviceID string, payload models.MonthlyPainRecordCreate) (*models.MonthlyPainRecord, error) {
	a.saved = append(a.saved, payload)
	if a.saveErr != nil {
		return nil, a.saveErr
	}
	return &models.MonthlyPainRecord{DeviceID: deviceID, Records: payload.Records}, nil
}

func (a *stubAPI) DeleteMonthlyRecord(ctx context.Context, deviceID string) error {
	a.deleted++
	return a.deleteErr
}

func (a *stubAPI) CreateCustomer(ctx context.Context, payload models.CustomerCreate) (string, error) {
	a.customers = append(a.customers, payload)
	return a.customerID, a.customerErr
}

func (a *stubAPI) CreatePaymentIntent(ctx context.Context, deviceID string) (*models.PaymentIntent, error) {
	return a.intent, a.intentErr
}

func (a *stubAPI) ActivateSubscription(ctx context.Context, deviceID, paymentIntentID string) (string, error) {
	a.activated = append(a.activated, paymentIntentID)
	return a.activatedResp, a.activateErr
}
