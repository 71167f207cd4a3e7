package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// EliminationReason is why a player lost
type EliminationReason string

const (
	// EliminationLife means life dropped to zero or below
	EliminationLife EliminationReason = "life"

	// EliminationPoison means the player reached ten poison counters
	EliminationPoison EliminationReason = "poison"
)

// ErrorType identifies a user-facing failure
type ErrorType string

const (
	ErrorTypeMatchNotFound   ErrorType = "match_not_found"
	ErrorTypePlayerNotFound  ErrorType = "player_not_found"
	ErrorTypeInvalidConfig   ErrorType = "invalid_config"
	ErrorTypeUnknownOpponent ErrorType = "unknown_opponent"
	ErrorTypeCardNotFound    ErrorType = "card_not_found"
	ErrorTypeUnknownFormat   ErrorType = "unknown_format"
	ErrorTypeGeneric         ErrorType = "generic"
)

// GetEliminationMessageInput contains parameters for an elimination message
type GetEliminationMessageInput struct {
	// PlayerName is the name of the player who lost
	PlayerName string

	// Reason is why the player lost
	Reason EliminationReason

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetEliminationMessageOutput contains the elimination message
type GetEliminationMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetSpotlightMessageInput contains parameters for a spotlight message
type GetSpotlightMessageInput struct {
	// PlayerName is the chosen starting player
	PlayerName string

	PreferredTone MessageTone
}

// GetSpotlightMessageOutput contains the spotlight message
type GetSpotlightMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	ErrorType     ErrorType
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed makes message selection repeatable, zero seeds from the clock
	Seed int64
}
