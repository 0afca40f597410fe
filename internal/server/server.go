// Package server wires the HTTP surface: the gin engine, middleware, and
// the route handlers over the feature services.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avinaxhroy/billme/internal/config"
	customerdomain "github.com/avinaxhroy/billme/internal/customer/domain"
	dashboarddomain "github.com/avinaxhroy/billme/internal/dashboard/domain"
	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	invoicedomain "github.com/avinaxhroy/billme/internal/invoice/domain"
	"github.com/avinaxhroy/billme/internal/observability/metrics"
	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, m *metrics.Metrics) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(m.Middleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", m.Handler())

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config

	invoiceSvc   invoicedomain.Service
	customerSvc  customerdomain.Service
	productSvc   productdomain.Service
	taxRateSvc   taxdomain.Service
	gstConfigSvc gstconfigdomain.Service
	dashboardSvc dashboarddomain.Service
}

type ServerParams struct {
	fx.In

	Gin *gin.Engine
	Cfg config.Config

	InvoiceSvc   invoicedomain.Service
	CustomerSvc  customerdomain.Service
	ProductSvc   productdomain.Service
	TaxRateSvc   taxdomain.Service
	GSTConfigSvc gstconfigdomain.Service
	DashboardSvc dashboarddomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		invoiceSvc:   p.InvoiceSvc,
		customerSvc:  p.CustomerSvc,
		productSvc:   p.ProductSvc,
		taxRateSvc:   p.TaxRateSvc,
		gstConfigSvc: p.GSTConfigSvc,
		dashboardSvc: p.DashboardSvc,
	}

	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/v1")

	// -------- Invoices --------
	v1.POST("/invoices", s.CreateInvoice)
	v1.GET("/invoices", s.ListInvoices)
	v1.GET("/invoices/:id", s.GetInvoiceByID)

	// -------- GST configuration --------
	v1.GET("/gst/config", s.GetGSTConfig)
	v1.PUT("/gst/config", s.UpsertGSTConfig)

	// -------- GSTIN validation --------
	v1.GET("/gst/gstin/:gstin", s.ValidateGSTIN)

	// -------- Tax rates --------
	v1.GET("/gst/rates", s.ListTaxRates)
	v1.POST("/gst/rates", s.CreateTaxRate)
	v1.PATCH("/gst/rates/:id", s.UpdateTaxRate)

	// -------- Customers --------
	v1.GET("/customers", s.ListCustomers)
	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers/:id", s.GetCustomerByID)
	v1.PATCH("/customers/:id", s.UpdateCustomer)

	// -------- Products --------
	v1.GET("/products", s.ListProducts)
	v1.POST("/products", s.CreateProduct)
	v1.GET("/products/:id", s.GetProductByID)
	v1.PATCH("/products/:id", s.UpdateProduct)
	v1.GET("/products/low-stock", s.ListLowStockProducts)

	// -------- Dashboard --------
	v1.GET("/dashboard/summary", s.GetDashboardSummary)
}
