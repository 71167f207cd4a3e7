package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetEliminationMessage returns a message for when a player loses
func (s *service) GetEliminationMessage(ctx context.Context, input *GetEliminationMessageInput) (*GetEliminationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.Reason {
	case EliminationPoison:
		messages = []string{
			"%s has ten poison counters. The Phyrexians send their regards.",
			"%s got compleated. Ten poison, game over.",
			"Infect wins again! %s is out.",
			"%s should have played more artifact removal. Poisoned out!",
		}
	default:
		messages = []string{
			"%s has been knocked out!",
			"%s is out of life. Scoop it up!",
			"Down goes %s! Pass the turn.",
			"%s hit zero. Better luck next game.",
			"%s has left the battlefield.",
		}
	}

	if tone == ToneNeutral {
		messages = []string{"%s has lost the game."}
	}

	return &GetEliminationMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName),
		Tone:    tone,
	}, nil
}

// GetSpotlightMessage returns a message announcing the starting player
func (s *service) GetSpotlightMessage(ctx context.Context, input *GetSpotlightMessageInput) (*GetSpotlightMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	messages := []string{
		"%s goes first!",
		"The fates have spoken: %s starts.",
		"%s is on the play. Draw wisely.",
		"Shuffle up! %s takes the first turn.",
	}
	if tone == ToneNeutral {
		messages = []string{"%s starts."}
	}

	return &GetSpotlightMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName),
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeMatchNotFound:
		messages = []string{
			"There's no match here. Start one with /life start.",
			"No life counter in this channel yet. Try /life start.",
		}
	case ErrorTypePlayerNotFound:
		messages = []string{
			"That seat is empty.",
			"Nobody is sitting there.",
		}
	case ErrorTypeInvalidConfig:
		messages = []string{
			"Pick 1 to 6 players and 20, 30 or 40 life.",
		}
	case ErrorTypeUnknownOpponent:
		messages = []string{
			"That opponent isn't at this table.",
			"No commander by that name here.",
		}
	case ErrorTypeCardNotFound:
		messages = []string{
			"No cards found.",
			"Nothing matched. Check the spelling?",
			"That card is as hard to find as a fetchland in a pauper deck.",
		}
	case ErrorTypeUnknownFormat:
		messages = []string{
			"I don't have a banlist for that format.",
		}
	default:
		messages = []string{
			"Something went wrong. Try again.",
			"The stack fizzled. Try again.",
		}
	}

	if tone == ToneNeutral {
		messages = messages[:1]
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
