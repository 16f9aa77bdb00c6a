package usecase

import (
	"context"

	"go-portfolio-backend/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	redisEnabled bool
}

// NewHealthUsecase reports redis as "disabled" when it was never configured.
func NewHealthUsecase(redisEnabled bool) HealthUsecase {
	return &healthUsecase{redisEnabled: redisEnabled}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":  "ok",
		"emailjs": "configured", // startup fails otherwise
		"redis":   "disabled",
	}

	if u.redisEnabled {
		status["redis"] = "up"
		if err := redis.HealthCheck(ctx); err != nil {
			status["redis"] = "down"
		}
	}

	return status
}
