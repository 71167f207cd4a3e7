package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound       MatchError = "match not found"
	ErrPlayerNotFound      MatchError = "no player in that seat"
	ErrInvalidConfig       MatchError = "players must be 1-6 and starting life 20, 30 or 40"
	ErrInvalidDelta        MatchError = "invalid delta"
	ErrInvalidPanel        MatchError = "invalid panel"
	ErrInvalidColor        MatchError = "invalid color"
	ErrInvalidTimerAction  MatchError = "invalid timer action"
	ErrUnknownOpponent     MatchError = "unknown opponent"
	ErrNameTaken           MatchError = "another player already uses that name"
	ErrSpotlightSuperseded MatchError = "spotlight superseded"
	ErrServiceClosed       MatchError = "match service is closed"
	ErrNilConfig           MatchError = "config cannot be nil"
	ErrNilMatchRepo        MatchError = "match repository cannot be nil"
	ErrNilDiceRoller       MatchError = "dice roller cannot be nil"
	ErrNilClock            MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator    MatchError = "UUID generator cannot be nil"
)
