package dto

// AnalyticsData is the dashboard aggregate response. The invariant
// unavailable_faculty + available_faculty == total_faculty always holds
// because the unavailable count is derived, never queried separately.
type AnalyticsData struct {
	TotalFaculty       int64 `json:"total_faculty"`
	TotalLocations     int64 `json:"total_locations"`
	AvailableFaculty   int64 `json:"available_faculty"`
	UnavailableFaculty int64 `json:"unavailable_faculty"`
	AvailableHODs      int64 `json:"available_hods"`
	AvailableCCs       int64 `json:"available_ccs"`
}
