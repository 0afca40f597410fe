package product

import (
	"github.com/avinaxhroy/billme/internal/product/repository"
	"github.com/avinaxhroy/billme/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
	),
)
