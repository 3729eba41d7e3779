package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
)

// StatsRepository answers the aggregate queries behind the dashboards.
// Filters use mongo query syntax.
type StatsRepository interface {
	Count(ctx context.Context, collection string, filter map[string]interface{}) (int64, error)
	Sum(ctx context.Context, collection, field string, filter map[string]interface{}) (float64, error)
	Average(ctx context.Context, collection, field string, filter map[string]interface{}) (float64, error)
	CountDistinct(ctx context.Context, collection, field string, filter map[string]interface{}) (int64, error)
}

type DashboardUsecase interface {
	GetAdminDashboard(ctx context.Context, request *requests.FindDashboard) (*responses.AdminDashboard, error)
	GetFriendDashboard(ctx context.Context, request *requests.FindDashboard) (*responses.FriendDashboard, error)
}
