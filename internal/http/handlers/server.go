package handlers

import (
	"github.com/rogerio-castellano/beerstock/internal/auth"
	"github.com/rogerio-castellano/beerstock/internal/repo"
	"github.com/rogerio-castellano/beerstock/internal/service"
	"go.uber.org/zap"
)

var (
	beerService  service.BeerService
	movementRepo repo.MovementRepository
	metricsRepo  repo.MetricsRepository
	userRepo     repo.UserRepository
	jwtManager   *auth.JWTManager

	logger = zap.NewNop()
)

func SetBeerService(s service.BeerService) {
	beerService = s
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetJWTManager(m *auth.JWTManager) {
	jwtManager = m
}

func SetLogger(l *zap.Logger) {
	logger = l
}
