package payloads

import "github.com/sbilibin2017/hackhub/internal/models"

// Friend is a friend card; friends_since is always set.
type Friend struct {
	UUID            string   `json:"uuid"`
	FriendsSince    int64    `json:"friends_since"`
	ProfileGradient []string `json:"profile_gradient"`
	DisplayName     string   `json:"display_name"`
	Username        string   `json:"username"`
	Level           int      `json:"level"`
	IsBlocked       bool     `json:"is_blocked"`
}

// NewFriend serializes the other side of a friendship.
func NewFriend(f models.FriendDB, v *Viewer) Friend {
	return Friend{
		UUID:            f.FriendID.String(),
		FriendsSince:    f.FriendsSince.Unix(),
		ProfileGradient: gradient(f.ProfileGradient),
		DisplayName:     shortName(f.FirstName, f.Username),
		Username:        f.Username,
		Level:           f.Level,
		IsBlocked:       v.IsBlocked(f.FriendID),
	}
}

// NewFriends serializes a page of friendships.
func NewFriends(friends []models.FriendDB, v *Viewer) []Friend {
	out := make([]Friend, 0, len(friends))
	for _, f := range friends {
		out = append(out, NewFriend(f, v))
	}
	return out
}
