package payloads

// Bootstrap is the initial data bundle returned to a freshly authenticated client.
type Bootstrap struct {
	User       UserCore    `json:"user"`
	Hackathons []Hackathon `json:"hackathons"`
	Friends    []Friend    `json:"friends"`
}

// UserProfile is the user lookup payload.
type UserProfile struct {
	UserCore
	BestPlacement  *HackathonResult  `json:"best_placement"`
	PastHackathons []HackathonResult `json:"past_hackathons"`
}
