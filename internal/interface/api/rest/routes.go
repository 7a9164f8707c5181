package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	RouteUsers       = RouteApiV1 + "/users"
	RouteUser        = RouteUsers + "/:user_id"
	RouteUserFiles   = RouteUser + "/files"
	RouteUserShared  = RouteUser + "/shared"
	RouteFiles       = RouteApiV1 + "/files"
	RouteFile        = RouteFiles + "/:file_id"
	RouteShares      = RouteApiV1 + "/shares"
	RouteScan        = RouteApiV1 + "/scan"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
