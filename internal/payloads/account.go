package payloads

import "github.com/sbilibin2017/hackhub/internal/models"

// Account is the owner's full view of their own account.
type Account struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Username        string   `json:"username"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Visibility      string   `json:"visibility"`
	XP              int      `json:"xp"`
	Level           int      `json:"level"`
	School          *int64   `json:"school"`
	SchoolName      *string  `json:"school_name"`
	GradYear        *int     `json:"grad_year"`
	Major           *int64   `json:"major"`
	MajorName       *string  `json:"major_name"`
	Discord         *string  `json:"discord"`
	Instagram       *string  `json:"instagram"`
	Github          *string  `json:"github"`
	Linkedin        *string  `json:"linkedin"`
	Personal        *string  `json:"personal"`
	Bio             *string  `json:"bio"`
	Skills          []int64  `json:"skills"`
	SkillNames      []string `json:"skill_names"`
	Interests       []int64  `json:"interests"`
	InterestNames   []string `json:"interest_names"`
	Blocked         []string `json:"blocked"`
	DateJoined      int64    `json:"date_joined"`
	XPNeeded        int      `json:"xp_needed"`
	ProfileGradient []string `json:"profile_gradient"`
}

// NewAccount serializes u for its owner.
func NewAccount(u *models.UserDB, skills, interests []models.LookupDB) Account {
	blocked := []string(u.Blocked)
	if blocked == nil {
		blocked = []string{}
	}
	return Account{
		ID:              u.UserID.String(),
		Email:           u.Email,
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Visibility:      u.Visibility,
		XP:              u.XP,
		Level:           u.Level,
		School:          u.SchoolID,
		SchoolName:      u.SchoolName,
		GradYear:        u.GradYear,
		Major:           u.MajorID,
		MajorName:       u.MajorName,
		Discord:         u.Discord,
		Instagram:       u.Instagram,
		Github:          u.Github,
		Linkedin:        u.Linkedin,
		Personal:        u.Personal,
		Bio:             u.Bio,
		Skills:          ids(skills),
		SkillNames:      names(skills),
		Interests:       ids(interests),
		InterestNames:   names(interests),
		Blocked:         blocked,
		DateJoined:      u.DateJoined.Unix(),
		XPNeeded:        u.XPNeeded,
		ProfileGradient: gradient(u.ProfileGradient),
	}
}
