package router

import (
	"net/http"

	"github.com/DavidL050/Forex/common"
	_ "github.com/DavidL050/Forex/docs"
	"github.com/DavidL050/Forex/handler"
	"github.com/DavidL050/Forex/service"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires every route. The returned handler logs each request and
// recovers from panics.
func NewRouter(auth *service.AuthService, authHandler *handler.AuthHandler, userHandler *handler.UserHandler, quoteHandler *handler.QuoteHandler) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.Handle("/api/login", handler.ErrorHandlingMiddleware(authHandler.Login)).Methods(http.MethodPost)
	r.Handle("/api/currencies", handler.ErrorHandlingMiddleware(quoteHandler.ListCurrencies)).Methods(http.MethodGet)

	requireAuth := handler.AuthMiddleware(auth)
	guard := func(h func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return requireAuth(handler.ErrorHandlingMiddleware(h))
	}

	r.Handle("/api/logout", guard(authHandler.Logout)).Methods(http.MethodPost)
	r.Handle("/api/verify-token", guard(authHandler.VerifyToken)).Methods(http.MethodGet, http.MethodPost)

	for _, path := range []string{"/api/user/preferences", "/user/preferences"} {
		r.Handle(path, guard(userHandler.GetPreferences)).Methods(http.MethodGet)
		r.Handle(path, guard(userHandler.UpdatePreferences)).Methods(http.MethodPut)
	}

	r.Handle("/api/rates", guard(quoteHandler.GetRates)).Methods(http.MethodGet)
	r.Handle("/api/analysis/{pair:.+}", guard(quoteHandler.GetAnalysis)).Methods(http.MethodGet)
	r.Handle("/api/history/{pair:.+}", guard(quoteHandler.GetHistory)).Methods(http.MethodGet)

	return handler.RequestLogger(handler.Recoverer(r))
}
