// Package entity defines the projections returned by the search
// feature.
package entity

// Creator is a user summary ranked by audience size.
type Creator struct {
	ID             uint   `json:"_id"`
	UserName       string `json:"user_name"`
	Avatar         string `json:"avatar"`
	FollowersCount int64  `json:"followers_count"`
}
