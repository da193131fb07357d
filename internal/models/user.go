// ABOUTME: User model with daily nutritional goals.
// ABOUTME: Defines the default user seeded at schema provisioning time.
package models

// Defaults for the user seeded when the database is first provisioned.
const (
	DefaultUserID      int64 = 1
	DefaultUsername          = "default_user"
	DefaultCalorieGoal       = 2000
)

// User holds identity and daily goals. The calorie goal is required;
// the macro goals are optional.
type User struct {
	UserID           int64
	Username         string
	DailyCalorieGoal int
	DailyProteinGoal *int
	DailyCarbsGoal   *int
	DailyFatGoal     *int
}
