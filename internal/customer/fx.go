package customer

import (
	"github.com/avinaxhroy/billme/internal/customer/repository"
	"github.com/avinaxhroy/billme/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
	),
)
