package repositories

// Repositories groups the data sources used by the API handlers.
type Repositories struct {
	DashboardClient DashboardClientInterface
}

func NewRepositories(dashboardClient DashboardClientInterface) *Repositories {
	return &Repositories{
		DashboardClient: dashboardClient,
	}
}
