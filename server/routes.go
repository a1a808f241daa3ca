package server

const (
	RouteAPIRoot     = "/api/"
	RouteAPICheckout = "/api/checkout"
	RouteAPIOrders   = "/api/orders"
	RouteAPIStatus   = "/api/status"
)

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteAPIRoot, ChainMiddleware(s.HelloHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteAPICheckout, ChainMiddleware(s.CheckoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("OPTIONS "+RouteAPICheckout, ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("GET "+RouteAPIOrders, ChainMiddleware(s.OrdersHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteAPIStatus, ChainMiddleware(s.StatusCreateHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIStatus, ChainMiddleware(s.StatusListHandler(), s.APIMiddleware()...))
}
