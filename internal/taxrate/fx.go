package taxrate

import (
	"github.com/avinaxhroy/billme/internal/taxrate/repository"
	"github.com/avinaxhroy/billme/internal/taxrate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("taxrate.service",
	fx.Provide(repository.NewRepository),
	fx.Provide(service.NewService),
	fx.Provide(service.NewResolver),
)
