package services_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/hackhub/internal/models"
	"github.com/sbilibin2017/hackhub/internal/services"
)

type storeMocks struct {
	users       *services.MockUserReader
	writer      *services.MockUserWriter
	friendships *services.MockFriendshipReader
	hackathons  *services.MockHackathonReader
	teams       *services.MockTeamReader
	lookups     *services.MockLookupChecker
	defaults    *services.MockBackfiller
	events      *services.MockPublisher
}

func newStoreMocks(t *testing.T) storeMocks {
	ctrl := gomock.NewController(t)
	return storeMocks{
		users:       services.NewMockUserReader(ctrl),
		writer:      services.NewMockUserWriter(ctrl),
		friendships: services.NewMockFriendshipReader(ctrl),
		hackathons:  services.NewMockHackathonReader(ctrl),
		teams:       services.NewMockTeamReader(ctrl),
		lookups:     services.NewMockLookupChecker(ctrl),
		defaults:    services.NewMockBackfiller(ctrl),
		events:      services.NewMockPublisher(ctrl),
	}
}

// expectViewer stubs the two reads that build a viewer perspective.
func (m storeMocks) expectViewer(user *models.UserDB, since map[uuid.UUID]time.Time) {
	m.users.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
	m.friendships.EXPECT().SinceMap(gomock.Any(), user.UserID).Return(since, nil)
}

func newUser(name string) *models.UserDB {
	return &models.UserDB{
		UserID:          uuid.New(),
		Email:           name + "@uni.edu",
		Username:        name,
		Visibility:      models.VisibilityPublic,
		Level:           1,
		XPNeeded:        100,
		ProfileGradient: models.StringList{"000000", "ffffff"},
		DateJoined:      time.Unix(1700000000, 0),
	}
}

func newEntry(name string, teamID uuid.UUID, placement *int) models.HackathonEntryDB {
	return models.HackathonEntryDB{
		HackathonDB: models.HackathonDB{
			HackathonID:  uuid.New(),
			Name:         name,
			StartDate:    time.Unix(1700000000, 0),
			EndDate:      time.Unix(1700086400, 0),
			Participants: 3,
		},
		TeamID:   teamID,
		TeamName: "Team " + name,
	}
}

func member(u *models.UserDB) models.MemberDB {
	return models.MemberDB{UserID: u.UserID, Username: u.Username, FirstName: u.FirstName, Level: u.Level}
}

func intPtr(v int) *int { return &v }
