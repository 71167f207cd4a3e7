package models

// MatchEventType identifies what changed in a match
type MatchEventType string

const (
	// MatchEventStarted is published when a match is created
	MatchEventStarted MatchEventType = "match_started"

	// MatchEventPlayerUpdated is published when one player's state changes
	MatchEventPlayerUpdated MatchEventType = "player_updated"

	// MatchEventDraftUpdated is published when the settings draft changes
	MatchEventDraftUpdated MatchEventType = "draft_updated"

	// MatchEventSettingsApplied is published when the draft is committed
	MatchEventSettingsApplied MatchEventType = "settings_applied"

	// MatchEventLivesReset is published when every player is reset
	MatchEventLivesReset MatchEventType = "lives_reset"

	// MatchEventSpotlightTick is published for every highlight step
	MatchEventSpotlightTick MatchEventType = "spotlight_tick"

	// MatchEventSpotlightFinal is published when the starting player is chosen
	MatchEventSpotlightFinal MatchEventType = "spotlight_final"

	// MatchEventEnded is published when the match is discarded
	MatchEventEnded MatchEventType = "match_ended"
)

// MatchEvent notifies subscribers that a match changed
type MatchEvent struct {
	// Type is what changed
	Type MatchEventType `json:"type"`

	// MatchID is the match that changed
	MatchID string `json:"matchId"`

	// Seat is the affected seat for player events, -1 otherwise
	Seat int `json:"seat"`

	// Match is a snapshot of the match after the change
	Match *Match `json:"match,omitempty"`
}
