package service_test

import (
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mzaikin/wakecall/internal/repository/mocks"
	"github.com/mzaikin/wakecall/internal/service"
	servicemocks "github.com/mzaikin/wakecall/internal/service/mocks"
)

// Redis intentionally points at a closed port: every health check sees a
// disconnected cache.
func disconnectedRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "localhost:9999"})
}

func TestHealthService_GetHealth(t *testing.T) {
	tests := []struct {
		name              string
		setupMocks        func(*mocks.MockRepository, *servicemocks.MockRefresherService, *servicemocks.MockScheduleService)
		expectedStatus    service.HealthState
		expectedRefresher service.ComponentState
		expectedDatabase  service.ComponentState
		expectedCBState   service.BreakerState
	}{
		{
			name: "database up, refresher running",
			setupMocks: func(repo *mocks.MockRepository, refresher *servicemocks.MockRefresherService, schedule *servicemocks.MockScheduleService) {
				refresher.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(nil)
				schedule.EXPECT().GetCircuitBreakerStatus().Return(service.BreakerClosed, uint32(100), uint32(5))
			},
			expectedStatus:    service.HealthStateUnhealthy, // redis is down in every case
			expectedRefresher: service.ComponentRunning,
			expectedDatabase:  service.ComponentConnected,
			expectedCBState:   service.BreakerClosed,
		},
		{
			name: "refresher stopped",
			setupMocks: func(repo *mocks.MockRepository, refresher *servicemocks.MockRefresherService, schedule *servicemocks.MockScheduleService) {
				refresher.EXPECT().IsRunning().Return(false)
				repo.EXPECT().Ping().Return(nil)
				schedule.EXPECT().GetCircuitBreakerStatus().Return(service.BreakerClosed, uint32(50), uint32(10))
			},
			expectedStatus:    service.HealthStateUnhealthy,
			expectedRefresher: service.ComponentStopped,
			expectedDatabase:  service.ComponentConnected,
			expectedCBState:   service.BreakerClosed,
		},
		{
			name: "database disconnected",
			setupMocks: func(repo *mocks.MockRepository, refresher *servicemocks.MockRefresherService, schedule *servicemocks.MockScheduleService) {
				refresher.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(errors.New("connection failed"))
				schedule.EXPECT().GetCircuitBreakerStatus().Return(service.BreakerClosed, uint32(0), uint32(0))
			},
			expectedStatus:    service.HealthStateUnhealthy,
			expectedRefresher: service.ComponentRunning,
			expectedDatabase:  service.ComponentDisconnected,
			expectedCBState:   service.BreakerClosed,
		},
		{
			name: "open breaker degrades",
			setupMocks: func(repo *mocks.MockRepository, refresher *servicemocks.MockRefresherService, schedule *servicemocks.MockScheduleService) {
				refresher.EXPECT().IsRunning().Return(true)
				repo.EXPECT().Ping().Return(nil)
				schedule.EXPECT().GetCircuitBreakerStatus().Return(service.BreakerOpen, uint32(100), uint32(60))
			},
			expectedStatus:    service.HealthStateDegraded,
			expectedRefresher: service.ComponentRunning,
			expectedDatabase:  service.ComponentConnected,
			expectedCBState:   service.BreakerOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRepository(ctrl)
			mockRefresher := servicemocks.NewMockRefresherService(ctrl)
			mockSchedule := servicemocks.NewMockScheduleService(ctrl)
			tt.setupMocks(mockRepo, mockRefresher, mockSchedule)

			healthService := service.NewHealthService(mockRepo, disconnectedRedis(), mockRefresher, mockSchedule)
			status := healthService.GetHealth()

			require.NotNil(t, status)
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, tt.expectedRefresher, status.RefresherStatus)
			assert.Equal(t, tt.expectedDatabase, status.DatabaseStatus)
			assert.Equal(t, service.ComponentDisconnected, status.RedisStatus)
			assert.Equal(t, tt.expectedCBState, status.CircuitBreakerState)
			assert.NotEmpty(t, status.CircuitBreakerStatus)
		})
	}
}

func TestHealthService_BreakerCountsFormatting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockRefresher := servicemocks.NewMockRefresherService(ctrl)
	mockSchedule := servicemocks.NewMockScheduleService(ctrl)

	mockRefresher.EXPECT().IsRunning().Return(true)
	mockRepo.EXPECT().Ping().Return(nil)
	mockSchedule.EXPECT().GetCircuitBreakerStatus().Return(service.BreakerClosed, uint32(100), uint32(5))

	status := service.NewHealthService(mockRepo, disconnectedRedis(), mockRefresher, mockSchedule).GetHealth()
	assert.Equal(t, "Requests: 100, Failures: 5 (5.0%)", status.CircuitBreakerStatus)
}

func TestHealthService_NoRequestsYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	mockRefresher := servicemocks.NewMockRefresherService(ctrl)
	mockSchedule := servicemocks.NewMockScheduleService(ctrl)

	mockRefresher.EXPECT().IsRunning().Return(false)
	mockRepo.EXPECT().Ping().Return(nil)
	mockSchedule.EXPECT().GetCircuitBreakerStatus().Return(service.BreakerClosed, uint32(0), uint32(0))

	status := service.NewHealthService(mockRepo, disconnectedRedis(), mockRefresher, mockSchedule).GetHealth()
	assert.Equal(t, "No requests yet", status.CircuitBreakerStatus)
}
