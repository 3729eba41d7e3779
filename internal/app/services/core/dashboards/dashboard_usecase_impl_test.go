package dashboards

import (
	"context"
	"testing"

	"github.com/Bricklabsai/theralink/internal/app/contracts/mocks"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDashboardUsecase(policy FailurePolicy) (*dashboardUsecase, *mocks.StatsRepository) {
	stats := new(mocks.StatsRepository)
	sessions := new(mocks.SessionService)
	sessions.On("ParseSessionData", mock.Anything, "admin").Return(&models.Session{UserID: "a-1", Role: constvars.RoleAdmin}, nil)
	sessions.On("ParseSessionData", mock.Anything, "friend").Return(&models.Session{UserID: "f-1", Role: constvars.RoleFriend}, nil)
	return &dashboardUsecase{
		StatsRepository: stats,
		SessionService:  sessions,
		Policy:          policy,
		Log:             zap.NewNop(),
	}, stats
}

func roleFilter(role string) map[string]interface{} {
	return map[string]interface{}{"role": role}
}

func stubAdminCounts(stats *mocks.StatsRepository) {
	stats.On("Count", mock.Anything, constvars.MongoCollectionProfiles, map[string]interface{}(nil)).Return(int64(40), nil)
	stats.On("Count", mock.Anything, constvars.MongoCollectionProfiles, roleFilter(constvars.RoleTherapist)).Return(int64(6), nil)
	stats.On("Count", mock.Anything, constvars.MongoCollectionProfiles, roleFilter(constvars.RoleFriend)).Return(int64(3), nil)
	stats.On("Count", mock.Anything, constvars.MongoCollectionProfiles, roleFilter(constvars.RoleClient)).Return(int64(30), nil)
	stats.On("Count", mock.Anything, constvars.MongoCollectionProfiles, roleFilter(constvars.RoleAdmin)).Return(int64(1), nil)
	stats.On("Count", mock.Anything, constvars.MongoCollectionFriendDetails, map[string]interface{}(nil)).Return(int64(5), nil)
	stats.On("Average", mock.Anything, constvars.MongoCollectionReviews, "rating", map[string]interface{}(nil)).Return(float64(0), nil)
	stats.On("Sum", mock.Anything, constvars.MongoCollectionTransactions, "amount", mock.Anything).Return(float64(2500), nil)
	stats.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(int64(2), nil)
}

func TestGetAdminDashboard(t *testing.T) {
	uc, stats := newDashboardUsecase(FailWhole)
	stubAdminCounts(stats)

	dashboard, err := uc.GetAdminDashboard(context.Background(), &requests.FindDashboard{SessionData: "admin"})
	require.NoError(t, err)

	assert.Equal(t, int64(40), dashboard.Users)
	assert.Equal(t, int64(6), dashboard.Therapists)
	assert.Equal(t, int64(3), dashboard.Friends)
	assert.Equal(t, int64(30), dashboard.Clients)
	assert.Equal(t, int64(1), dashboard.Admins)
	assert.Equal(t, dashboard.Users, dashboard.Admins+dashboard.Therapists+dashboard.Friends+dashboard.Clients,
		"every profile is counted under exactly one role")
	assert.Equal(t, float64(2500), dashboard.TotalRevenue)
	assert.Zero(t, dashboard.AverageRating)
	assert.Zero(t, dashboard.PendingFriends, "more friend details than friends clamps to zero")
	assert.Zero(t, dashboard.ContactMessages)
	assert.Empty(t, dashboard.FailedFields)
}

func TestGetAdminDashboard_FailWhole(t *testing.T) {
	uc, stats := newDashboardUsecase(FailWhole)
	stats.On("Average", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(float64(0), assert.AnError)
	stats.On("Sum", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(float64(0), nil)
	stats.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)

	dashboard, err := uc.GetAdminDashboard(context.Background(), &requests.FindDashboard{SessionData: "admin"})

	assert.Nil(t, dashboard)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.ErrClientDashboardUnavailable, customErr.ClientMessage)
	assert.Contains(t, customErr.DevMessage, "average_rating")
}

func TestGetAdminDashboard_PerField(t *testing.T) {
	uc, stats := newDashboardUsecase(PerField)
	stats.On("Count", mock.Anything, constvars.MongoCollectionProfiles, roleFilter(constvars.RoleFriend)).Return(int64(0), assert.AnError)
	stats.On("Average", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(float64(0), assert.AnError)
	stats.On("Sum", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(float64(100), nil)
	stats.On("Count", mock.Anything, mock.Anything, mock.Anything).Return(int64(4), nil)

	dashboard, err := uc.GetAdminDashboard(context.Background(), &requests.FindDashboard{SessionData: "admin"})
	require.NoError(t, err)

	assert.Equal(t, []string{"average_rating", "friends", "pending_friends"}, dashboard.FailedFields)
	assert.Equal(t, int64(4), dashboard.Users)
	assert.Equal(t, float64(100), dashboard.TotalRevenue)
}

func TestGetAdminDashboard_RequiresAdmin(t *testing.T) {
	uc, stats := newDashboardUsecase(FailWhole)

	_, err := uc.GetAdminDashboard(context.Background(), &requests.FindDashboard{SessionData: "friend"})
	require.Error(t, err)
	stats.AssertNotCalled(t, "Count", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetFriendDashboard(t *testing.T) {
	uc, stats := newDashboardUsecase(FailWhole)
	stats.On("CountDistinct", mock.Anything, constvars.MongoCollectionBookingRequests, "client_id", mock.Anything).Return(int64(3), nil)
	stats.On("Count", mock.Anything, constvars.MongoCollectionBookingRequests, mock.Anything).Return(int64(7), nil)
	stats.On("Count", mock.Anything, constvars.MongoCollectionMessages, map[string]interface{}{
		"receiver_id": "f-1",
		"is_read":     false,
	}).Return(int64(2), nil)
	stats.On("Count", mock.Anything, constvars.MongoCollectionBookingNotes, map[string]interface{}{
		"therapist_id": "f-1",
	}).Return(int64(9), nil)

	dashboard, err := uc.GetFriendDashboard(context.Background(), &requests.FindDashboard{SessionData: "friend"})
	require.NoError(t, err)

	assert.Equal(t, int64(3), dashboard.ActiveClients)
	assert.Equal(t, int64(7), dashboard.TotalSessions)
	assert.Equal(t, int64(2), dashboard.UnreadMessages)
	assert.Equal(t, int64(9), dashboard.Notes)
}
