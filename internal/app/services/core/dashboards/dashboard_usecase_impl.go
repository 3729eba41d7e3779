package dashboards

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/requests"
	"github.com/Bricklabsai/theralink/internal/pkg/dto/responses"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	panelAdmin  = "admin"
	panelFriend = "friend"
)

type dashboardUsecase struct {
	StatsRepository contracts.StatsRepository
	SessionService  contracts.SessionService
	Policy          FailurePolicy
	Log             *zap.Logger
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	statsRepository contracts.StatsRepository,
	sessionService contracts.SessionService,
	partialFailure bool,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		policy := FailWhole
		if partialFailure {
			policy = PerField
		}
		dashboardUsecaseInstance = &dashboardUsecase{
			StatsRepository: statsRepository,
			SessionService:  sessionService,
			Policy:          policy,
			Log:             logger,
		}
	})
	return dashboardUsecaseInstance
}

// GetAdminDashboard recomputes every platform counter on each call.
func (uc *dashboardUsecase) GetAdminDashboard(ctx context.Context, request *requests.FindDashboard) (*responses.AdminDashboard, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsAdmin() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	dashboard := new(responses.AdminDashboard)
	var friendDetails int64

	queries := []namedQuery{
		uc.count("users", &dashboard.Users, constvars.MongoCollectionProfiles, nil),
		uc.count("therapists", &dashboard.Therapists, constvars.MongoCollectionProfiles, map[string]interface{}{"role": constvars.RoleTherapist}),
		uc.count("friends", &dashboard.Friends, constvars.MongoCollectionProfiles, map[string]interface{}{"role": constvars.RoleFriend}),
		uc.count("clients", &dashboard.Clients, constvars.MongoCollectionProfiles, map[string]interface{}{"role": constvars.RoleClient}),
		uc.count("admins", &dashboard.Admins, constvars.MongoCollectionProfiles, map[string]interface{}{"role": constvars.RoleAdmin}),
		uc.count("appointments", &dashboard.Appointments, constvars.MongoCollectionAppointments, nil),
		uc.count("completed_appointments", &dashboard.CompletedAppointments, constvars.MongoCollectionAppointments, map[string]interface{}{"status": constvars.AppointmentStatusCompleted}),
		uc.count("cancelled_appointments", &dashboard.CancelledAppointments, constvars.MongoCollectionAppointments, map[string]interface{}{"status": constvars.AppointmentStatusCancelled}),
		uc.count("transactions", &dashboard.Transactions, constvars.MongoCollectionTransactions, map[string]interface{}{"status": constvars.TransactionStatusSuccess}),
		uc.sum("total_revenue", &dashboard.TotalRevenue, constvars.MongoCollectionTransactions, "amount", map[string]interface{}{"status": constvars.TransactionStatusSuccess}),
		uc.count("session_notes", &dashboard.SessionNotes, constvars.MongoCollectionSessionNotes, nil),
		uc.count("unread_feedback", &dashboard.UnreadFeedback, constvars.MongoCollectionFeedback, map[string]interface{}{"is_read": false}),
		uc.count("unread_messages", &dashboard.UnreadMessages, constvars.MongoCollectionContactMessages, map[string]interface{}{"is_read": false}),
		uc.count("reviews", &dashboard.Reviews, constvars.MongoCollectionReviews, nil),
		uc.average("average_rating", &dashboard.AverageRating, constvars.MongoCollectionReviews, "rating", nil),
		uc.count("pending_therapists", &dashboard.PendingTherapists, constvars.MongoCollectionTherapists, map[string]interface{}{
			"application_status": map[string]interface{}{"$in": []interface{}{constvars.ApplicationStatusPending, nil}},
		}),
		uc.count("friend_details", &friendDetails, constvars.MongoCollectionFriendDetails, nil),
		uc.count("blogs", &dashboard.Blogs, constvars.MongoCollectionBlogs, nil),
		uc.count("published_blogs", &dashboard.PublishedBlogs, constvars.MongoCollectionBlogs, map[string]interface{}{"published": true}),
	}

	failed, err := uc.run(ctx, panelAdmin, queries)
	if err != nil {
		return nil, err
	}

	// Friends who have not filled in their details yet
	dashboard.PendingFriends = dashboard.Friends - friendDetails
	if dashboard.PendingFriends < 0 {
		dashboard.PendingFriends = 0
	}
	if containsAny(failed, "friends", "friend_details") {
		failed = append(failed, "pending_friends")
		sort.Strings(failed)
	}
	dashboard.FailedFields = failed
	dashboard.ContactMessages = 0

	return dashboard, nil
}

func (uc *dashboardUsecase) GetFriendDashboard(ctx context.Context, request *requests.FindDashboard) (*responses.FriendDashboard, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsProvider() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	dashboard := new(responses.FriendDashboard)
	queries := uc.friendQueries(session, dashboard)

	failed, err := uc.run(ctx, panelFriend, queries)
	if err != nil {
		return nil, err
	}
	dashboard.FailedFields = failed
	return dashboard, nil
}

func (uc *dashboardUsecase) friendQueries(session *models.Session, dashboard *responses.FriendDashboard) []namedQuery {
	return []namedQuery{
		{
			field: "active_clients",
			run: func(ctx context.Context) (err error) {
				dashboard.ActiveClients, err = uc.StatsRepository.CountDistinct(ctx, constvars.MongoCollectionBookingRequests, "client_id", map[string]interface{}{
					"therapist_id": session.UserID,
					"status": map[string]interface{}{"$in": []string{
						constvars.BookingRequestStatusScheduled,
						constvars.BookingRequestStatusConfirmed,
					}},
				})
				return err
			},
		},
		uc.count("total_sessions", &dashboard.TotalSessions, constvars.MongoCollectionBookingRequests, map[string]interface{}{
			"therapist_id": session.UserID,
			"status":       constvars.BookingRequestStatusCompleted,
		}),
		uc.count("unread_messages", &dashboard.UnreadMessages, constvars.MongoCollectionMessages, map[string]interface{}{
			"receiver_id": session.UserID,
			"is_read":     false,
		}),
		uc.count("notes", &dashboard.Notes, constvars.MongoCollectionBookingNotes, map[string]interface{}{
			"therapist_id": session.UserID,
		}),
	}
}

func (uc *dashboardUsecase) run(ctx context.Context, panel string, queries []namedQuery) ([]string, error) {
	requestID := utils.GetRequestID(ctx)

	failed, err := runQueries(ctx, uc.Policy, queries)
	if err != nil {
		field := ""
		var qErr *queryError
		if errors.As(err, &qErr) {
			field = qErr.field
		}
		uc.Log.Error("dashboardUsecase query failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPanelKey, panel),
			zap.String(constvars.LoggingFieldKey, field),
			zap.Error(err),
		)
		return nil, exceptions.ErrDashboardQuery(err, field)
	}

	if len(failed) > 0 {
		uc.Log.Warn("dashboardUsecase returning partial panel",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPanelKey, panel),
			zap.Strings(constvars.LoggingFieldKey, failed),
		)
	}
	return failed, nil
}

func (uc *dashboardUsecase) count(field string, target *int64, collection string, filter map[string]interface{}) namedQuery {
	return namedQuery{
		field: field,
		run: func(ctx context.Context) error {
			value, err := uc.StatsRepository.Count(ctx, collection, filter)
			if err != nil {
				return err
			}
			*target = value
			return nil
		},
	}
}

func (uc *dashboardUsecase) sum(field string, target *float64, collection, sumField string, filter map[string]interface{}) namedQuery {
	return namedQuery{
		field: field,
		run: func(ctx context.Context) error {
			value, err := uc.StatsRepository.Sum(ctx, collection, sumField, filter)
			if err != nil {
				return err
			}
			*target = value
			return nil
		},
	}
}

func (uc *dashboardUsecase) average(field string, target *float64, collection, avgField string, filter map[string]interface{}) namedQuery {
	return namedQuery{
		field: field,
		run: func(ctx context.Context) error {
			value, err := uc.StatsRepository.Average(ctx, collection, avgField, filter)
			if err != nil {
				return err
			}
			*target = value
			return nil
		},
	}
}

func containsAny(values []string, candidates ...string) bool {
	for _, value := range values {
		for _, candidate := range candidates {
			if value == candidate {
				return true
			}
		}
	}
	return false
}
