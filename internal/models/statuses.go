package models

type UserRole string
type RestaurantStatus string
type VoteValue string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	RestaurantStatusPending  RestaurantStatus = "pending"
	RestaurantStatusApproved RestaurantStatus = "approved"
	RestaurantStatusRejected RestaurantStatus = "rejected"

	VoteLike    VoteValue = "like"
	VoteDislike VoteValue = "dislike"
)

// ValidRole reports whether the role is one of the two the platform knows.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	default:
		return false
	}
}
