package api

import (
	"net/http"
	"os"

	authService "github.com/crmbridge/acrm-cust/auth/service"
	"github.com/crmbridge/acrm-cust/cmd/api/handlers"
	"github.com/crmbridge/acrm-cust/common"
	"github.com/crmbridge/acrm-cust/countries"
	customerDAL "github.com/crmbridge/acrm-cust/customer/dal"
	customerHandlers "github.com/crmbridge/acrm-cust/customer/handlers"
	customerService "github.com/crmbridge/acrm-cust/customer/service"
	"github.com/crmbridge/acrm-cust/framework/mid"
	"github.com/crmbridge/acrm-cust/framework/web"
	"github.com/crmbridge/acrm-cust/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown  chan os.Signal
	log       *logger.Logging
	cfg       *common.Config
	countries *countries.Table
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, cfg *common.Config, table *countries.Table) *API {
	return &API{
		shutdown:  shutdown,
		log:       logging,
		cfg:       cfg,
		countries: table,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())
	app.Use(mid.Cors())

	app.Get("/health", handlers.Health)

	verifier := authService.NewAuthService(a.cfg)
	search := customerDAL.NewElasticSearch(a.cfg)
	svc := customerService.NewCustomerService(loggerProvider, search, a.countries)
	customer := customerHandlers.NewCustomerHandler(loggerProvider, svc)

	lookupGroup := web.NewGroup(app, "/acrm-cust", mid.Auth(verifier))

	lookupGroup.Post("/callCustomerSearch", customer.CallCustomerSearch)
	lookupGroup.Post("/live", customer.Live)

	return app
}
