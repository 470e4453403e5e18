package fpl

// Upstream payload shapes. validate tags describe the minimum a payload must
// carry to be usable; anything failing them is a parse error.

type bootstrapEnvelope struct {
	Events   []eventWire   `json:"events" validate:"dive"`
	Teams    []teamWire    `json:"teams" validate:"required,min=1,dive"`
	Elements []elementWire `json:"elements" validate:"required,dive"`
}

type eventWire struct {
	ID           int     `json:"id" validate:"gt=0"`
	Name         string  `json:"name"`
	DeadlineTime *string `json:"deadline_time"`
	IsCurrent    bool    `json:"is_current"`
	IsNext       bool    `json:"is_next"`
	Finished     bool    `json:"finished"`
}

type teamWire struct {
	ID        int    `json:"id" validate:"gt=0"`
	Code      int    `json:"code"`
	Name      string `json:"name" validate:"required"`
	ShortName string `json:"short_name" validate:"required"`
	Strength  int    `json:"strength"`
}

type elementWire struct {
	ID                int    `json:"id" validate:"gt=0"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	WebName           string `json:"web_name" validate:"required"`
	Team              int    `json:"team" validate:"gt=0"`
	ElementType       int    `json:"element_type" validate:"min=1,max=4"`
	NowCost           int    `json:"now_cost" validate:"gte=0"`
	TotalPoints       int    `json:"total_points"`
	EventPoints       int    `json:"event_points"`
	GoalsScored       int    `json:"goals_scored"`
	Assists           int    `json:"assists"`
	CleanSheets       int    `json:"clean_sheets"`
	Minutes           int    `json:"minutes"`
	Bonus             int    `json:"bonus"`
	YellowCards       int    `json:"yellow_cards"`
	RedCards          int    `json:"red_cards"`
	Saves             int    `json:"saves"`
	PointsPerGame     string `json:"points_per_game"`
	SelectedByPercent string `json:"selected_by_percent"`
	Form              string `json:"form"`
	Status            string `json:"status"`
	News              string `json:"news"`
}

type fixtureList struct {
	Items []fixtureWire `validate:"dive"`
}

type fixtureWire struct {
	ID              int     `json:"id" validate:"gt=0"`
	Event           *int    `json:"event"`
	TeamH           int     `json:"team_h" validate:"gt=0"`
	TeamA           int     `json:"team_a" validate:"gt=0,nefield=TeamH"`
	TeamHDifficulty int     `json:"team_h_difficulty" validate:"min=0,max=5"`
	TeamADifficulty int     `json:"team_a_difficulty" validate:"min=0,max=5"`
	TeamHScore      *int    `json:"team_h_score"`
	TeamAScore      *int    `json:"team_a_score"`
	KickoffTime     *string `json:"kickoff_time"`
	Started         *bool   `json:"started"`
	Finished        bool    `json:"finished"`
}

type liveEnvelope struct {
	Elements []liveElementWire `json:"elements" validate:"dive"`
}

type liveElementWire struct {
	ID    int            `json:"id" validate:"gt=0"`
	Stats map[string]any `json:"stats"`
}
