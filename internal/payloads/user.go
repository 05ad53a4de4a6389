package payloads

import (
	"strconv"
	"strings"

	"github.com/sbilibin2017/hackhub/internal/models"
)

// Socials groups a user's external links.
type Socials struct {
	Discord   *string `json:"discord"`
	Instagram *string `json:"instagram"`
	Github    *string `json:"github"`
	Linkedin  *string `json:"linkedin"`
	Personal  *string `json:"personal"`
}

// UserCore is the public profile of a user as seen by a viewer.
type UserCore struct {
	UUID            string   `json:"uuid"`
	CreatedAt       int64    `json:"created_at"`
	ProfileGradient []string `json:"profile_gradient"`
	DisplayName     string   `json:"display_name"`
	Username        string   `json:"username"`
	School          *string  `json:"school"`
	GradYear        *string  `json:"grad_year"`
	Level           int      `json:"level"`
	Email           *string  `json:"email"`
	XP              int      `json:"xp"`
	XPNeeded        int      `json:"xp_needed"`
	IsPublic        bool     `json:"is_public"`
	Bio             string   `json:"bio"`
	Socials         Socials  `json:"socials"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	FriendsSince    *int64   `json:"friends_since"`
	IsBlocked       bool     `json:"is_blocked"`
}

// DisplayName falls back from first name to username to the email local part.
func DisplayName(u *models.UserDB) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return u.Username
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

// NewUserCore serializes u from v's perspective. With a nil viewer the email is
// always included; otherwise only for public profiles or the viewer's own.
func NewUserCore(u *models.UserDB, skills, interests []models.LookupDB, v *Viewer) UserCore {
	core := UserCore{
		UUID:            u.UserID.String(),
		CreatedAt:       u.DateJoined.Unix(),
		ProfileGradient: gradient(u.ProfileGradient),
		DisplayName:     DisplayName(u),
		Username:        u.Username,
		School:          u.SchoolName,
		Level:           u.Level,
		XP:              u.XP,
		XPNeeded:        u.XPNeeded,
		IsPublic:        u.IsPublic(),
		Socials: Socials{
			Discord:   u.Discord,
			Instagram: u.Instagram,
			Github:    u.Github,
			Linkedin:  u.Linkedin,
			Personal:  u.Personal,
		},
		Skills:       names(skills),
		Interests:    names(interests),
		FriendsSince: v.FriendsSince(u.UserID),
		IsBlocked:    v.IsBlocked(u.UserID),
	}
	if u.GradYear != nil {
		year := strconv.Itoa(*u.GradYear)
		core.GradYear = &year
	}
	if u.Bio != nil {
		core.Bio = *u.Bio
	}
	if v == nil || v.Is(u.UserID) || u.IsPublic() {
		email := u.Email
		core.Email = &email
	}
	return core
}

func gradient(l models.StringList) []string {
	if len(l) == 0 {
		return nil
	}
	return []string(l)
}

func names(items []models.LookupDB) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func ids(items []models.LookupDB) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
