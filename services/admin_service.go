package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

var (
	ErrCannotDemoteSelf    = errors.New("cannot demote yourself")
	ErrCannotDeleteSelf    = errors.New("cannot delete yourself")
	ErrCannotDemoteMain    = errors.New("cannot demote the main admin")
	ErrCannotDeleteMain    = errors.New("cannot delete the main admin")
	ErrInvalidDateFilter   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidBulkAction   = errors.New("valid action is required")
	ErrMissingBulkUserIDs  = errors.New("user_ids array is required")
	ErrInvalidHistoryScope = errors.New("valid category is required")
)

var bulkActions = map[string]bool{
	"delete": true, "verify": true, "unverify": true,
	"promote": true, "demote": true,
}

// AdminService backs the admin dashboard: user management, audit logs and
// aggregate statistics across both datastores.
type AdminService struct{}

func NewAdminService() *AdminService { return &AdminService{} }

// mongoUserID is the key user documents are stored under in Mongo.
func mongoUserID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

type AdminUserSummary struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"email_verified"`
	IsAdmin       bool       `json:"is_admin"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login"`
}

type UserPage struct {
	Users      []AdminUserSummary `json:"users"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int64              `json:"total_pages"`
}

func (s *AdminService) ListUsers(page, limit int, search string) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	query := config.DB.Model(&models.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("email ILIKE ? OR name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]AdminUserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, AdminUserSummary{
			ID:            u.ID,
			Name:          u.Name,
			Email:         u.Email,
			EmailVerified: u.EmailVerified,
			IsAdmin:       u.IsAdmin,
			CreatedAt:     u.CreatedAt,
			LastLogin:     u.LastLogin,
		})
	}

	return &UserPage{
		Users:      summaries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}

type UserStats struct {
	TotalMealsDays         int64   `json:"total_meals_days"`
	TotalActivityDays      int64   `json:"total_activity_days"`
	TotalGoalsDays         int64   `json:"total_goals_days"`
	TotalFoodLogs          int64   `json:"total_food_logs"`
	DaysSinceFirstActivity int     `json:"days_since_first_activity"`
	EngagementRate         float64 `json:"engagement_rate"`
}

type RecentMealsDay struct {
	Date          string        `json:"date"`
	MealsCount    int           `json:"meals_count"`
	TotalCalories float64       `json:"total_calories"`
	Meals         []models.Meal `json:"meals"`
}

type RecentActivityDay struct {
	Date                string  `json:"date"`
	ExercisesCount      int     `json:"exercises_count"`
	WaterIntake         float64 `json:"water_intake"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
}

type AdminUserDetail struct {
	AdminUserSummary
	Profile        map[string]any      `json:"profile"`
	Stats          UserStats           `json:"stats"`
	RecentMeals    []RecentMealsDay    `json:"recent_meals"`
	RecentActivity []RecentActivityDay `json:"recent_activity"`
	CurrentGoals   map[string]any      `json:"current_goals"`
}

func (s *AdminService) UserDetail(ctx context.Context, userID uint) (*AdminUserDetail, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	uid := mongoUserID(userID)
	db := config.MongoDB

	detail := &AdminUserDetail{
		AdminUserSummary: AdminUserSummary{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			EmailVerified: user.EmailVerified,
			IsAdmin:       user.IsAdmin,
			CreatedAt:     user.CreatedAt,
			LastLogin:     user.LastLogin,
		},
		RecentMeals:    []RecentMealsDay{},
		RecentActivity: []RecentActivityDay{},
	}

	var profileDoc models.UserProfile
	err := db.Collection("user_profiles").FindOne(ctx, bson.M{"userId": uid}).Decode(&profileDoc)
	if err == nil {
		detail.Profile = profileDoc.Profile
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	mealsDays, err := db.Collection("daily_meals").CountDocuments(ctx, bson.M{"userId": uid})
	if err != nil {
		return nil, err
	}
	activityDays, err := db.Collection("daily_activity").CountDocuments(ctx, bson.M{"userId": uid})
	if err != nil {
		return nil, err
	}
	goalsDays, err := db.Collection("user_goals").CountDocuments(ctx, bson.M{"userId": uid})
	if err != nil {
		return nil, err
	}
	foodLogs, err := db.Collection("user_food_logs").CountDocuments(ctx, bson.M{"user_id": uid})
	if err != nil {
		return nil, err
	}

	recentOpts := options.Find().SetSort(bson.M{"date": -1}).SetLimit(10)
	cur, err := db.Collection("daily_meals").Find(ctx, bson.M{"userId": uid}, recentOpts)
	if err != nil {
		return nil, err
	}
	var mealDocs []models.DailyMeals
	if err := cur.All(ctx, &mealDocs); err != nil {
		return nil, err
	}
	for _, doc := range mealDocs {
		cal, _, _, _ := mealTotals(doc.Meals)
		preview := doc.Meals
		if len(preview) > 5 {
			preview = preview[:5]
		}
		detail.RecentMeals = append(detail.RecentMeals, RecentMealsDay{
			Date:          doc.Date,
			MealsCount:    len(doc.Meals),
			TotalCalories: cal,
			Meals:         preview,
		})
	}

	cur, err = db.Collection("daily_activity").Find(ctx, bson.M{"userId": uid}, recentOpts)
	if err != nil {
		return nil, err
	}
	var activityDocs []models.DailyActivity
	if err := cur.All(ctx, &activityDocs); err != nil {
		return nil, err
	}
	for _, doc := range activityDocs {
		burned, _ := activityTotals(doc.Activity)
		detail.RecentActivity = append(detail.RecentActivity, RecentActivityDay{
			Date:                doc.Date,
			ExercisesCount:      len(doc.Activity.Exercises),
			WaterIntake:         doc.Activity.WaterIntake,
			TotalCaloriesBurned: burned,
		})
	}

	var goalsDoc models.UserGoals
	err = db.Collection("user_goals").FindOne(ctx, bson.M{"userId": uid}).Decode(&goalsDoc)
	if err == nil {
		detail.CurrentGoals = goalsDoc.Goals
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	daysSinceFirst := 0
	var firstMeals models.DailyMeals
	err = db.Collection("daily_meals").
		FindOne(ctx, bson.M{"userId": uid}, options.FindOne().SetSort(bson.M{"date": 1})).
		Decode(&firstMeals)
	if err == nil && firstMeals.Date != "" {
		if first, perr := time.Parse("2006-01-02", firstMeals.Date); perr == nil {
			daysSinceFirst = int(time.Since(first).Hours() / 24)
		}
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	engagement := 0.0
	if daysSinceFirst > 0 {
		engagement = round2(float64(mealsDays+activityDays) / float64(daysSinceFirst) * 100)
	}
	detail.Stats = UserStats{
		TotalMealsDays:         mealsDays,
		TotalActivityDays:      activityDays,
		TotalGoalsDays:         goalsDays,
		TotalFoodLogs:          foodLogs,
		DaysSinceFirstActivity: daysSinceFirst,
		EngagementRate:         engagement,
	}
	return detail, nil
}

// SetAdmin promotes or demotes a user. Admins cannot demote themselves and
// the main admin account can never be demoted.
func (s *AdminService) SetAdmin(ctx context.Context, adminID, userID uint, isAdmin bool, ip string) error {
	if userID == adminID && !isAdmin {
		return ErrCannotDemoteSelf
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if config.App.AdminEmail != "" && user.Email == config.App.AdminEmail && !isAdmin {
		return ErrCannotDemoteMain
	}
	if err := config.DB.Model(&user).Update("is_admin", isAdmin).Error; err != nil {
		return err
	}
	s.LogAction(ctx, adminID, "toggle_admin", map[string]any{
		"user_id":  userID,
		"is_admin": isAdmin,
	}, ip)
	return nil
}

// DeleteUser removes the account and every document it owns.
func (s *AdminService) DeleteUser(ctx context.Context, adminID, userID uint, ip string) error {
	if userID == adminID {
		return ErrCannotDeleteSelf
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if config.App.AdminEmail != "" && user.Email == config.App.AdminEmail {
		return ErrCannotDeleteMain
	}

	if err := s.deleteUserData(ctx, userID); err != nil {
		return err
	}
	if err := config.DB.Unscoped().Delete(&user).Error; err != nil {
		return err
	}
	s.LogAction(ctx, adminID, "delete_user", map[string]any{
		"user_id":    userID,
		"user_email": user.Email,
	}, ip)
	return nil
}

func (s *AdminService) deleteUserData(ctx context.Context, userID uint) error {
	uid := mongoUserID(userID)
	db := config.MongoDB
	for _, c := range []struct {
		name string
		key  string
	}{
		{"user_food_logs", "user_id"},
		{"daily_meals", "userId"},
		{"daily_activity", "userId"},
		{"user_goals", "userId"},
		{"user_profiles", "userId"},
	} {
		if _, err := db.Collection(c.name).DeleteMany(ctx, bson.M{c.key: uid}); err != nil {
			return err
		}
	}
	return nil
}

type HistoryDeletion struct {
	DeletedCounts map[string]int64 `json:"deleted_counts"`
	TotalDeleted  int64            `json:"total_deleted"`
	DateFilter    string           `json:"date_filter,omitempty"`
	Category      string           `json:"category"`
}

// DeleteUserHistory wipes tracked data but keeps the account. category is one
// of meals, food_logs, activity, goals or all; dateFilter optionally narrows
// the wipe to a single day.
func (s *AdminService) DeleteUserHistory(ctx context.Context, adminID, userID uint, category, dateFilter, ip string) (*HistoryDeletion, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if category == "" {
		category = "all"
	}
	switch category {
	case "meals", "food_logs", "activity", "goals", "all":
	default:
		return nil, ErrInvalidHistoryScope
	}

	var dayStart, dayEnd time.Time
	if dateFilter != "" {
		day, err := time.Parse("2006-01-02", dateFilter)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		dayStart = day
		dayEnd = day.Add(24*time.Hour - time.Nanosecond)
	}

	uid := mongoUserID(userID)
	db := config.MongoDB
	result := &HistoryDeletion{
		DeletedCounts: map[string]int64{},
		DateFilter:    dateFilter,
		Category:      category,
	}

	byDate := func(base bson.M) bson.M {
		if dateFilter != "" {
			base["date"] = dateFilter
		}
		return base
	}

	if category == "meals" || category == "all" {
		res, err := db.Collection("daily_meals").DeleteMany(ctx, byDate(bson.M{"userId": uid}))
		if err != nil {
			return nil, err
		}
		result.DeletedCounts["meals"] = res.DeletedCount
	}
	if category == "food_logs" || category == "all" {
		filter := bson.M{"user_id": uid}
		if dateFilter != "" {
			filter["logged_at"] = bson.M{"$gte": dayStart, "$lte": dayEnd}
		}
		res, err := db.Collection("user_food_logs").DeleteMany(ctx, filter)
		if err != nil {
			return nil, err
		}
		result.DeletedCounts["food_logs"] = res.DeletedCount
	}
	if category == "activity" || category == "all" {
		res, err := db.Collection("daily_activity").DeleteMany(ctx, byDate(bson.M{"userId": uid}))
		if err != nil {
			return nil, err
		}
		result.DeletedCounts["activity"] = res.DeletedCount
	}
	if category == "goals" || category == "all" {
		res, err := db.Collection("user_goals").DeleteMany(ctx, bson.M{"userId": uid})
		if err != nil {
			return nil, err
		}
		result.DeletedCounts["goals"] = res.DeletedCount
	}

	for _, n := range result.DeletedCounts {
		result.TotalDeleted += n
	}
	s.LogAction(ctx, adminID, "delete_history", map[string]any{
		"user_id":        userID,
		"user_email":     user.Email,
		"date_filter":    dateFilter,
		"category":       category,
		"deleted_counts": result.DeletedCounts,
	}, ip)
	return result, nil
}

type DailyTrend struct {
	MealsLogged    int64 `json:"meals_logged"`
	ActivityLogged int64 `json:"activity_logged"`
	NewUsers       int64 `json:"new_users"`
}

type AdminStats struct {
	TotalUsers           int64                 `json:"total_users"`
	VerifiedUsers        int64                 `json:"verified_users"`
	AdminUsers           int64                 `json:"admin_users"`
	RecentSignups        int64                 `json:"recent_signups"`
	ActiveUsers          int                   `json:"active_users"`
	TotalMealsDays       int64                 `json:"total_meals_days"`
	TotalFoodLogs        int64                 `json:"total_food_logs"`
	AvgMealsPerUser      float64               `json:"avg_meals_per_user"`
	TotalCaloriesLogged  float64               `json:"total_calories_logged"`
	TotalExercisesLogged int                   `json:"total_exercises_logged"`
	TotalCaloriesBurned  float64               `json:"total_calories_burned"`
	UsersWithMeals       int                   `json:"users_with_meals"`
	UsersWithActivity    int                   `json:"users_with_activity"`
	EngagementRate       float64               `json:"engagement_rate"`
	SignupsByDay         map[string]int64      `json:"signups_by_day"`
	DailyActivityTrend   map[string]DailyTrend `json:"daily_activity_trend"`
}

func (s *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{
		SignupsByDay:       map[string]int64{},
		DailyActivityTrend: map[string]DailyTrend{},
	}
	db := config.MongoDB
	now := time.Now().UTC()

	users := config.DB.Model(&models.User{})
	if err := users.Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).Where("email_verified = ?", true).Count(&stats.VerifiedUsers).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&stats.AdminUsers).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.User{}).
		Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Count(&stats.RecentSignups).Error; err != nil {
		return nil, err
	}

	var recentUsers []models.User
	err := config.DB.Where("created_at >= ?", now.AddDate(0, 0, -30)).Find(&recentUsers).Error
	if err != nil {
		return nil, err
	}
	for _, u := range recentUsers {
		stats.SignupsByDay[u.CreatedAt.UTC().Format("2006-01-02")]++
	}

	sevenDaysAgo := now.AddDate(0, 0, -7).Format("2006-01-02")
	activeIDs, err := db.Collection("daily_meals").Distinct(ctx, "userId", bson.M{"date": bson.M{"$gte": sevenDaysAgo}})
	if err != nil {
		return nil, err
	}
	stats.ActiveUsers = len(activeIDs)

	stats.TotalMealsDays, err = db.Collection("daily_meals").CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	stats.TotalFoodLogs, err = db.Collection("user_food_logs").CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalUsers := stats.TotalUsers
	if totalUsers < 1 {
		totalUsers = 1
	}
	stats.AvgMealsPerUser = round2(float64(stats.TotalMealsDays) / float64(totalUsers))

	cur, err := db.Collection("daily_meals").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var allMeals []models.DailyMeals
	if err := cur.All(ctx, &allMeals); err != nil {
		return nil, err
	}
	for _, doc := range allMeals {
		cal, _, _, _ := mealTotals(doc.Meals)
		stats.TotalCaloriesLogged += cal
	}

	cur, err = db.Collection("daily_activity").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var allActivity []models.DailyActivity
	if err := cur.All(ctx, &allActivity); err != nil {
		return nil, err
	}
	for _, doc := range allActivity {
		burned, _ := activityTotals(doc.Activity)
		stats.TotalExercisesLogged += len(doc.Activity.Exercises)
		stats.TotalCaloriesBurned += burned
	}

	mealsUsers, err := db.Collection("daily_meals").Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return nil, err
	}
	activityUsers, err := db.Collection("daily_activity").Distinct(ctx, "userId", bson.M{})
	if err != nil {
		return nil, err
	}
	stats.UsersWithMeals = len(mealsUsers)
	stats.UsersWithActivity = len(activityUsers)
	stats.EngagementRate = round2(float64(stats.UsersWithMeals) / float64(totalUsers) * 100)

	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format("2006-01-02")
		dayStart := day.Truncate(24 * time.Hour)

		mealsLogged, err := db.Collection("daily_meals").CountDocuments(ctx, bson.M{"date": dateStr})
		if err != nil {
			return nil, err
		}
		activityLogged, err := db.Collection("daily_activity").CountDocuments(ctx, bson.M{"date": dateStr})
		if err != nil {
			return nil, err
		}
		var newUsers int64
		err = config.DB.Model(&models.User{}).
			Where("created_at >= ? AND created_at < ?", dayStart, dayStart.AddDate(0, 0, 1)).
			Count(&newUsers).Error
		if err != nil {
			return nil, err
		}
		stats.DailyActivityTrend[dateStr] = DailyTrend{
			MealsLogged:    mealsLogged,
			ActivityLogged: activityLogged,
			NewUsers:       newUsers,
		}
	}
	return stats, nil
}

type BulkResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// BulkUserOperation applies one action to a list of users, skipping the
// caller and the main admin for destructive actions.
func (s *AdminService) BulkUserOperation(ctx context.Context, adminID uint, userIDs []uint, action, ip string) (*BulkResult, error) {
	if len(userIDs) == 0 {
		return nil, ErrMissingBulkUserIDs
	}
	if !bulkActions[action] {
		return nil, ErrInvalidBulkAction
	}

	result := &BulkResult{Errors: []string{}}
	for _, id := range userIDs {
		if id == adminID && (action == "delete" || action == "demote") {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot %s yourself", action))
			continue
		}

		var user models.User
		if err := config.DB.First(&user, id).Error; err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("User not found: %d", id))
			continue
		}
		if config.App.AdminEmail != "" && user.Email == config.App.AdminEmail &&
			(action == "delete" || action == "demote") {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot %s main admin", action))
			continue
		}

		var err error
		switch action {
		case "delete":
			if err = s.deleteUserData(ctx, id); err == nil {
				err = config.DB.Unscoped().Delete(&user).Error
			}
		case "verify":
			err = config.DB.Model(&user).Update("email_verified", true).Error
		case "unverify":
			err = config.DB.Model(&user).Update("email_verified", false).Error
		case "promote":
			err = config.DB.Model(&user).Update("is_admin", true).Error
		case "demote":
			err = config.DB.Model(&user).Update("is_admin", false).Error
		}
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Error processing %d: %v", id, err))
			continue
		}
		result.Success++
	}

	s.LogAction(ctx, adminID, "bulk_"+action, map[string]any{
		"user_ids": userIDs,
		"results":  result,
	}, ip)
	return result, nil
}

// LogAction records an audit-trail entry. Logging never fails the request.
func (s *AdminService) LogAction(ctx context.Context, adminID uint, action string, details map[string]any, ipAddress string) {
	if details == nil {
		details = map[string]any{}
	}
	entry := models.AdminLog{
		AdminID:   mongoUserID(adminID),
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC(),
		IPAddress: ipAddress,
	}
	if _, err := config.MongoDB.Collection("admin_logs").InsertOne(ctx, entry); err != nil {
		log.Printf("Error writing admin log: %v", err)
	}
}

type AdminLogEntry struct {
	ID         string         `json:"id"`
	AdminID    string         `json:"admin_id"`
	AdminName  string         `json:"admin_name"`
	AdminEmail string         `json:"admin_email"`
	Action     string         `json:"action"`
	Details    map[string]any `json:"details"`
	Timestamp  string         `json:"timestamp"`
	IPAddress  string         `json:"ip_address,omitempty"`
}

type AdminLogPage struct {
	Logs       []AdminLogEntry `json:"logs"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int64           `json:"total_pages"`
}

func (s *AdminService) Logs(ctx context.Context, page, limit int, actionFilter string) (*AdminLogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	coll := config.MongoDB.Collection("admin_logs")
	filter := bson.M{}
	if actionFilter != "" {
		filter["action"] = bson.M{"$regex": actionFilter, "$options": "i"}
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, filter, options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetSkip(int64((page-1)*limit)).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	var logs []models.AdminLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}

	// Resolve admin identities once per page.
	names := map[string][2]string{}
	entries := make([]AdminLogEntry, 0, len(logs))
	for _, l := range logs {
		identity, ok := names[l.AdminID]
		if !ok {
			identity = [2]string{"Unknown", "Unknown"}
			if id, err := strconv.ParseUint(l.AdminID, 10, 64); err == nil {
				var admin models.User
				if config.DB.First(&admin, uint(id)).Error == nil {
					identity = [2]string{admin.Name, admin.Email}
				}
			}
			names[l.AdminID] = identity
		}
		entries = append(entries, AdminLogEntry{
			ID:         l.ID.Hex(),
			AdminID:    l.AdminID,
			AdminName:  identity[0],
			AdminEmail: identity[1],
			Action:     l.Action,
			Details:    l.Details,
			Timestamp:  l.Timestamp.Format(time.RFC3339),
			IPAddress:  l.IPAddress,
		})
	}

	return &AdminLogPage{
		Logs:       entries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}, nil
}
