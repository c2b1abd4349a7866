package models

// AnalyticsCounts holds the raw aggregate counts read from the store. The
// derived unavailable count is computed at the service layer, not queried.
type AnalyticsCounts struct {
	TotalFaculty     int64
	TotalLocations   int64
	AvailableFaculty int64
	AvailableHODs    int64
	AvailableCCs     int64
}
