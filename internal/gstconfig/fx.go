package gstconfig

import (
	"github.com/avinaxhroy/billme/internal/gstconfig/repository"
	"github.com/avinaxhroy/billme/internal/gstconfig/service"
	"go.uber.org/fx"
)

var Module = fx.Module("gstconfig.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
	fx.Provide(service.NewProvider),
)
