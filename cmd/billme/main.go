package main

import (
	"github.com/avinaxhroy/billme/internal/clock"
	"github.com/avinaxhroy/billme/internal/config"
	"github.com/avinaxhroy/billme/internal/customer"
	"github.com/avinaxhroy/billme/internal/dashboard"
	"github.com/avinaxhroy/billme/internal/gstconfig"
	"github.com/avinaxhroy/billme/internal/invoice"
	"github.com/avinaxhroy/billme/internal/migration"
	"github.com/avinaxhroy/billme/internal/observability/metrics"
	"github.com/avinaxhroy/billme/internal/product"
	"github.com/avinaxhroy/billme/internal/server"
	"github.com/avinaxhroy/billme/internal/taxrate"
	"github.com/avinaxhroy/billme/pkg/db"
	"github.com/avinaxhroy/billme/pkg/log"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		metrics.Module,
		migration.Module,

		gstconfig.Module,
		taxrate.Module,
		customer.Module,
		product.Module,
		invoice.Module,
		dashboard.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
