package repositories

import (
	"context"
	"log/slog"

	"github.com/gameforge/arcade-dashboard/internal/mocks"
	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/pkg/arcade"
	"github.com/gameforge/arcade-dashboard/pkg/pagination"
)

type ToolsInterface interface {
	ListTools(ctx context.Context, q models.ToolQuery) (*pagination.Page[models.Tool], error)
	GetTool(ctx context.Context, id string) (*models.ToolDetail, error)
}

type ServersInterface interface {
	ListServers(ctx context.Context, q models.ServerQuery) (*pagination.Page[models.Server], error)
	GetServer(ctx context.Context, id string) (*models.ServerDetail, error)
}

type AccountInterface interface {
	GetUser(ctx context.Context) (*models.User, error)
	GetAuthStatus(ctx context.Context) (*models.AuthStatus, error)
}

// DashboardClientInterface is everything the dashboard routes read. It is
// implemented by the live Arcade client and by mocks.DashboardClientMock.
type DashboardClientInterface interface {
	ToolsInterface
	ServersInterface
	AccountInterface
	ListCategories(ctx context.Context) (*models.CategoryList, error)
	// Mode reports models.ModeLive or models.ModeMock.
	Mode() string
}

// ArcadeDashboardClient serves tools from the Arcade API. The API has no
// server, user or auth status endpoints yet, so those are answered from the
// mock dataset.
type ArcadeDashboardClient struct {
	logger *slog.Logger
	ArcadeTools
	static *mocks.DashboardClientMock
}

func NewArcadeDashboardClient(client *arcade.Client, logger *slog.Logger) *ArcadeDashboardClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArcadeDashboardClient{
		logger:      logger,
		ArcadeTools: NewArcadeTools(client, logger),
		static:      mocks.NewDashboardClientMock(logger),
	}
}

func (c *ArcadeDashboardClient) Mode() string {
	return models.ModeLive
}

func (c *ArcadeDashboardClient) ListServers(ctx context.Context, q models.ServerQuery) (*pagination.Page[models.Server], error) {
	return c.static.ListServers(ctx, q)
}

func (c *ArcadeDashboardClient) GetServer(ctx context.Context, id string) (*models.ServerDetail, error) {
	return c.static.GetServer(ctx, id)
}

func (c *ArcadeDashboardClient) GetUser(ctx context.Context) (*models.User, error) {
	return c.static.GetUser(ctx)
}

func (c *ArcadeDashboardClient) GetAuthStatus(ctx context.Context) (*models.AuthStatus, error) {
	return c.static.GetAuthStatus(ctx)
}

func (c *ArcadeDashboardClient) ListCategories(ctx context.Context) (*models.CategoryList, error) {
	return c.static.ListCategories(ctx)
}

var (
	_ DashboardClientInterface = (*ArcadeDashboardClient)(nil)
	_ DashboardClientInterface = (*mocks.DashboardClientMock)(nil)
)
