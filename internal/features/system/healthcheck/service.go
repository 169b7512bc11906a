package system_healthcheck

import (
	"context"
	"time"

	"lessonbook/internal/cache"
	"lessonbook/internal/storage"
)

type HealthcheckService struct{}

type ComponentStatus struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

type HealthcheckResponseDTO struct {
	Healthy  bool            `json:"healthy"`
	Database ComponentStatus `json:"database"`
	Cache    ComponentStatus `json:"cache"`
}

// CheckHealth pings the database and the Valkey cache. The endpoint
// reports per-component state so a degraded instance is diagnosable
// from the outside.
func (s *HealthcheckService) CheckHealth() *HealthcheckResponseDTO {
	response := &HealthcheckResponseDTO{
		Database: s.checkDatabase(),
		Cache:    s.checkCache(),
	}

	response.Healthy = response.Database.Healthy && response.Cache.Healthy

	return response
}

func (s *HealthcheckService) checkDatabase() ComponentStatus {
	sqlDB, err := storage.GetDb().DB()
	if err != nil {
		return ComponentStatus{Healthy: false, Error: err.Error()}
	}

	if err := sqlDB.Ping(); err != nil {
		return ComponentStatus{Healthy: false, Error: err.Error()}
	}

	return ComponentStatus{Healthy: true}
}

func (s *HealthcheckService) checkCache() ComponentStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client := cache.GetCache()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		return ComponentStatus{Healthy: false, Error: err.Error()}
	}

	return ComponentStatus{Healthy: true}
}
