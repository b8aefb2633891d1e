package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/client/session"
	"github.com/agoramujeres/agora-client/internal/logging"
)

func emotional() models.EmotionalState {
	return models.EmotionalState{Calma: 3, Fatiga: 2, NieblaMental: 1, DolorDifuso: 0, Gratitud: 4, Tension: 2}
}

func TestDiaryService_Create(t *testing.T) {
	ctx := context.Background()
	sess := session.New("d1", "es")
	log := logging.NewNopLogger()

	t.Run("without coordinates no weather lookup", func(t *testing.T) {
		api := &stubAPI{}
		svc := NewDiaryService(api, sess, log, 0, 0)

		entry, err := svc.Create(ctx, "hoy estoy mejor", emotional(), nil)
		require.NoError(t, err)
		assert.Equal(t, "d1", entry.DeviceID)
		assert.Zero(t, api.weatherCalls)

		require.Len(t, api.createdDiary, 1)
		assert.Nil(t, api.createdDiary[0].Weather)
		assert.Nil(t, api.createdDiary[0].PhysicalState)
	})

	t.Run("with coordinates attaches weather", func(t *testing.T) {
		api := &stubAPI{weather: &models.Weather{Temperature: 21.5, Condition: "clear"}}
		svc := NewDiaryService(api, sess, log, 40.4168, -3.7038)

		_, err := svc.Create(ctx, "", emotional(), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, api.weatherCalls)
		require.Len(t, api.createdDiary, 1)
		require.NotNil(t, api.createdDiary[0].Weather)
		assert.InDelta(t, 21.5, api.createdDiary[0].Weather.Temperature, 1e-9)
	})

	t.Run("weather failure is non-fatal", func(t *testing.T) {
		api := &stubAPI{weatherErr: errors.New("upstream down")}
		svc := NewDiaryService(api, sess, log, 40.4168, -3.7038)

		_, err := svc.Create(ctx, "sin tiempo", emotional(), nil)
		require.NoError(t, err)
		require.Len(t, api.createdDiary, 1)
		assert.Nil(t, api.createdDiary[0].Weather)
	})

	t.Run("physical state passed through", func(t *testing.T) {
		api := &stubAPI{}
		svc := NewDiaryService(api, sess, log, 0, 0)

		physical := &models.PhysicalState{NivelDolor: 6, Energia: 3, Sensibilidad: 5}
		_, err := svc.Create(ctx, "", emotional(), physical)
		require.NoError(t, err)
		require.Len(t, api.createdDiary, 1)
		assert.Equal(t, physical, api.createdDiary[0].PhysicalState)
	})
}
