//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/soulmatch/internal/bootstrap"
	"github.com/yanqian/soulmatch/internal/domain/astrology"
	"github.com/yanqian/soulmatch/internal/domain/auth"
	"github.com/yanqian/soulmatch/internal/infra/config"
	httpiface "github.com/yanqian/soulmatch/internal/interface/http"
	"github.com/yanqian/soulmatch/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAstrologyConfig,
		provideAuthConfig,
		provideChartRepository,
		provideChartStore,
		provideChartArchive,
		astrology.NewService,
		auth.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
