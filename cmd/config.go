package cmd

// Config carries the environment-backed settings of the service. All values
// arrive as strings from the environment; parsing happens in the
// composition root.
type Config struct {
	HTTPPort              string
	BackendBaseURL        string
	BackendTimeoutSeconds string
	DispatchScheme        string
	DispatchChannel       string
	DispatchRouteBaseURL  string
	DispatchSuggestedFee  string
	WatchedRestaurantID   string
	BoardRefreshSchedule  string
	DispatchAlertSchedule string
}
