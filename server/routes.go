package server

import (
	"net/http"
	"strings"

	"github.com/jrsteele09/go-wallet-web/internal/metrics"
	"github.com/rs/zerolog/log"
)

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteEntry+"{$}", ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare()...))

	// AUTH
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.FormMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteRegister, ChainMiddleware(s.RegisterPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteRegister, ChainMiddleware(s.RegisterSubmissionHandler(), s.FormMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleWare()...))

	s.RegisterRouteHandler("GET "+RouteForgotPassword, ChainMiddleware(s.ForgotPasswordPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteForgotPassword, ChainMiddleware(s.ForgotPasswordSubmissionHandler(), s.FormMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteResetPassword, ChainMiddleware(s.ResetPasswordPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteResetPassword, ChainMiddleware(s.ResetPasswordSubmissionHandler(), s.FormMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteChangePassword, ChainMiddleware(s.ChangePasswordPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteChangePassword, ChainMiddleware(s.ChangePasswordSubmissionHandler(), s.HTMLMiddleWare()...))

	// WALLET
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteProfile, ChainMiddleware(s.ProfileHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteTransactions, ChainMiddleware(s.TransactionsHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteTransaction, ChainMiddleware(s.TransactionDetailHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteReceipt, ChainMiddleware(s.ReceiptHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteTransfer, ChainMiddleware(s.TransferPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteTransfer, ChainMiddleware(s.TransferSubmissionHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteTransferLookup, ChainMiddleware(s.RecipientLookupHandler(), s.HTMLMiddleWare()...))

	// PAYMENTS
	s.RegisterRouteHandler("GET "+RouteAddMoney, ChainMiddleware(s.AddMoneyPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteAddMoney, ChainMiddleware(s.AddMoneySubmissionHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteCheckoutSuccess, ChainMiddleware(s.CheckoutSuccessHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteCheckoutFailure, ChainMiddleware(s.CheckoutFailureHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteMetrics, metrics.Handler(s.registry))

	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteStaticJS, ChainMiddleware(s.serveFileHandler(), s.StaticMiddleware()...))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		if err := s.serveAsset(w, r, filePath); err != nil {
			logError("GET", filePath, err.Error())
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}

func logError(method, path, error string) {
	log.Error().Msgf("[%-19s] %s %s", colouredMethod(method), path, Red+error+ResetColor)
}
