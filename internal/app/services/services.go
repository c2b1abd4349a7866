package services

// Services defined in this package:
// - LocationService: CRUD for campus locations
// - FacultyService: CRUD and availability updates for faculty members
// - FlashNewsService: ticker announcements
// - AuthService: admin and faculty login flows
// - AnalyticsService: dashboard aggregate counts
