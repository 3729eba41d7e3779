package requests

type FindDashboard struct {
	SessionData string `json:"-"`
}
