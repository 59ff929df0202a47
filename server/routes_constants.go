package server

import "github.com/jrsteele09/go-wallet-web/ui"

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteEntry          = ui.PathEntry
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteLogout         = "/logout"
	RouteChangePassword = "/change-password"
	RouteForgotPassword = "/forgot-password"
	RouteResetPassword  = ui.PathResetPassword

	// Wallet Routes
	RouteDashboard       = ui.PathDashboard
	RouteTransactions    = "/transactions"
	RouteTransaction     = "/transactions/{txnRef}"
	RouteReceipt         = "/transactions/{txnRef}/receipt"
	RouteTransfer        = "/transfer"
	RouteTransferLookup  = "/transfer/lookup"
	RouteProfile         = ui.PathProfile
	RouteAddMoney        = "/add-money"
	RouteCheckoutSuccess = "/checkout/{orderId}/success"
	RouteCheckoutFailure = "/checkout/{orderId}/failure"

	// Operational Routes
	RouteMetrics = "/metrics"

	// Static Asset Routes (patterns)
	RouteStaticCSS = "/css/{file}"
	RouteStaticJS  = "/js/{file}"
)
