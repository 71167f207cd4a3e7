package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// customIDPrefix marks components owned by the life command
const customIDPrefix = "life"

// componentAction identifies what a button, select or modal does
type componentAction string

// Component actions
const (
	actionOpenPlayer   componentAction = "seat"
	actionLife         componentAction = "life"
	actionPoison       componentAction = "poison"
	actionPanel        componentAction = "panel"
	actionCommander    componentAction = "cmd"
	actionRotate       componentAction = "rotate"
	actionResetPlayer  componentAction = "reset"
	actionColor        componentAction = "color"
	actionRename       componentAction = "rename"
	actionRenameSubmit componentAction = "rename_submit"
	actionTimer        componentAction = "timer"
	actionSpotlight    componentAction = "spotlight"
	actionResetLives   componentAction = "reset_lives"
	actionApply        componentAction = "apply"
	actionCard         componentAction = "card"
)

// renameInputID is the text input inside the rename modal
const renameInputID = "name"

var errBadCustomID = errors.New("malformed custom id")

// customID is the routing information packed into a component custom ID.
// Seat is -1 for match-wide components.
type customID struct {
	Action  componentAction
	MatchID string
	Seat    int
	Arg     string
}

// String encodes the id as life:action:match:seat:arg
func (c customID) String() string {
	return strings.Join([]string{customIDPrefix, string(c.Action), c.MatchID, strconv.Itoa(c.Seat), c.Arg}, ":")
}

func parseCustomID(raw string) (customID, error) {
	parts := strings.SplitN(raw, ":", 5)
	if len(parts) != 5 || parts[0] != customIDPrefix || parts[1] == "" {
		return customID{}, fmt.Errorf("%w: %q", errBadCustomID, raw)
	}

	seat, err := strconv.Atoi(parts[3])
	if err != nil {
		return customID{}, fmt.Errorf("%w: %q", errBadCustomID, raw)
	}

	return customID{
		Action:  componentAction(parts[1]),
		MatchID: parts[2],
		Seat:    seat,
		Arg:     parts[4],
	}, nil
}

func matchCustomID(action componentAction, matchID string, arg string) string {
	return customID{Action: action, MatchID: matchID, Seat: -1, Arg: arg}.String()
}

func seatCustomID(action componentAction, matchID string, seat int, arg string) string {
	return customID{Action: action, MatchID: matchID, Seat: seat, Arg: arg}.String()
}

// rows packs components into action rows of at most five
func rows(components []discordgo.MessageComponent) []discordgo.MessageComponent {
	var out []discordgo.MessageComponent
	for len(components) > 0 {
		n := len(components)
		if n > 5 {
			n = 5
		}
		out = append(out, discordgo.ActionsRow{Components: components[:n]})
		components = components[n:]
	}
	return out
}

func button(label string, style discordgo.ButtonStyle, id string) discordgo.Button {
	return discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: id,
	}
}

// toggleStyle highlights the button of an open panel
func toggleStyle(active bool) discordgo.ButtonStyle {
	if active {
		return discordgo.PrimaryButton
	}
	return discordgo.SecondaryButton
}

// truncate clamps s to n runes for Discord field limits
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}

func renameModal(matchID string, seat int, current string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: seatCustomID(actionRenameSubmit, matchID, seat, ""),
			Title:    "Rename player",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    renameInputID,
							Label:       "Display name",
							Style:       discordgo.TextInputShort,
							Value:       current,
							Placeholder: "Player name",
							MaxLength:   40,
						},
					},
				},
			},
		},
	}
}

// modalValue pulls a text input value out of a modal submission
func modalValue(data discordgo.ModalSubmitInteractionData, inputID string) string {
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok && input.CustomID == inputID {
				return input.Value
			}
		}
	}
	return ""
}
