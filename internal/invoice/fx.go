package invoice

import (
	"github.com/avinaxhroy/billme/internal/invoice/repository"
	"github.com/avinaxhroy/billme/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(
		repository.NewRepository,
		service.NewSequencer,
		service.NewService,
	),
)
