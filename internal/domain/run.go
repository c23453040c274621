package domain

import "time"

type RunState string

const (
	RunPending  RunState = "PENDING"
	RunRunning  RunState = "RUNNING"
	RunFinished RunState = "FINISHED"
)

// Stage is the step of the per-account pipeline
type Stage string

const (
	StageCreatingCampaign Stage = "CREATING_CAMPAIGN"
	StageCreatingAdSquad  Stage = "CREATING_AD_SQUAD"
	StageFetchingCreative Stage = "FETCHING_CREATIVE"
	StageCreatingAd       Stage = "CREATING_AD"
	StageDone             Stage = "DONE"
	StageFailed           Stage = "FAILED"
)

// Run is one submission of the campaign form over a selection of ad accounts
type Run struct {
	ID             string           `json:"id"`
	OrganizationID string           `json:"organization_id"`
	AdAccountIDs   []string         `json:"ad_account_ids"`
	State          RunState         `json:"state"`
	StartedAt      time.Time        `json:"started_at"`
	FinishedAt     *time.Time       `json:"finished_at,omitempty"`
	Outcomes       []AccountOutcome `json:"outcomes"`
}

// AccountOutcome records where the pipeline of one account ended
type AccountOutcome struct {
	AdAccountID   string    `json:"ad_account_id"`
	AdAccountName string    `json:"ad_account_name"`
	Stage         Stage     `json:"stage"`
	FailedStage   Stage     `json:"failed_stage,omitempty"`
	Status        Status    `json:"status"`
	CampaignID    string    `json:"campaign_id,omitempty"`
	AdSquadID     string    `json:"ad_squad_id,omitempty"`
	CreativeID    string    `json:"creative_id,omitempty"`
	AdID          string    `json:"ad_id,omitempty"`
	FinishedAt    time.Time `json:"finished_at"`
}

func (o AccountOutcome) Succeeded() bool {
	return o.Stage == StageDone
}

// AccountRow is one line of the status board
type AccountRow struct {
	AdAccount AdAccount `json:"adaccount"`
	Status    Status    `json:"status"`
}

// RunReport is a run together with the board rows as they are now
type RunReport struct {
	Run  Run          `json:"run"`
	Rows []AccountRow `json:"rows"`
}

// StatusEvent is emitted every time a board row changes
type StatusEvent struct {
	RunID       string    `json:"run_id"`
	AdAccountID string    `json:"ad_account_id"`
	Stage       Stage     `json:"stage"`
	Status      Status    `json:"status"`
	Class       string    `json:"class"`
	At          time.Time `json:"at"`
}
