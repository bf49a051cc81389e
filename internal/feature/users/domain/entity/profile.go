// Package entity defines the projections returned by the users
// feature.
package entity

// Profile is the public profile page payload.
type Profile struct {
	ID             uint   `json:"_id"`
	FullName       string `json:"full_name"`
	UserName       string `json:"user_name"`
	ProfileTag     string `json:"profile_tag"`
	Avatar         string `json:"avatar"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	ReelsCount     int64  `json:"reels_count"`
	IsFollowing    bool   `json:"is_following"`
}
