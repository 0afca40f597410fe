package migration

import (
	"github.com/avinaxhroy/billme/internal/config"
	customerdomain "github.com/avinaxhroy/billme/internal/customer/domain"
	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	"github.com/avinaxhroy/billme/internal/seed"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		// Versioned SQL migrations run against postgres; the other
		// dialects (sqlite for dev and tests, mysql) use gorm's schema
		// sync instead because golang-migrate needs one driver per
		// dialect and the SQL is written for postgres.
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			err := conn.AutoMigrate(
				&gstconfigdomain.GSTConfiguration{},
				&taxdomain.GSTRate{},
				&customerdomain.Customer{},
				&productdomain.Product{},
				&invoicedomain.Invoice{},
				&invoicedomain.InvoiceLineItem{},
				&invoicedomain.InvoiceGSTDetails{},
			)
			if err != nil {
				return err
			}
		}

		if cfg.SeedStandardRates {
			return seed.EnsureStandardRates(conn)
		}
		return nil
	}),
)
