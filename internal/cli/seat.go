package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/model"
)

// seatHuman is the --x/--o value for a human seat
const seatHuman = "human"

// seatFlags binds the flags describing one seat, e.g. --x, --x-name,
// --x-ply and --x-tiebreak
type seatFlags struct {
	kind     string
	name     string
	ply      int
	tiebreak string
}

func addSeatFlags(cmd *cobra.Command, side string, defaultKind string) *seatFlags {
	f := &seatFlags{}
	kinds := append([]string{seatHuman}, model.ValidBotStrategies()...)
	cmd.Flags().StringVar(&f.kind, side, defaultKind,
		fmt.Sprintf("Who plays %s: %s", strings.ToUpper(side), strings.Join(kinds, ", ")))
	cmd.Flags().StringVar(&f.name, side+"-name", "", "Display name for "+strings.ToUpper(side))
	cmd.Flags().IntVar(&f.ply, side+"-ply", 4, "Look-ahead depth for a lookahead bot")
	cmd.Flags().StringVar(&f.tiebreak, side+"-tiebreak", string(model.TiebreakRandom),
		"Tie-break for a lookahead bot: LEFT, RIGHT, RANDOM")
	return f
}

// seat converts the flags to a validated seat
func (f *seatFlags) seat() (model.Seat, error) {
	kind := strings.ToLower(f.kind)
	if kind == seatHuman {
		return model.HumanSeat(f.name), nil
	}
	if !slices.Contains(model.ValidBotStrategies(), kind) {
		return model.Seat{}, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, f.kind)
	}

	name := f.name
	if name == "" {
		name = model.BotStrategyDisplayName(kind)
	}

	var tiebreak model.TiebreakPolicy
	if kind == model.BotStrategyLookahead {
		parsed, err := model.ParseTiebreakPolicy(f.tiebreak)
		if err != nil {
			return model.Seat{}, err
		}
		tiebreak = parsed
	}

	seat := model.BotSeat(name, kind, f.ply, tiebreak)
	if err := seat.Validate(); err != nil {
		return model.Seat{}, err
	}
	return seat, nil
}

// request converts the flags to the API's seat body
func (f *seatFlags) request() (map[string]any, error) {
	seat, err := f.seat()
	if err != nil {
		return nil, err
	}
	body := map[string]any{"name": seat.Name}
	if seat.IsBot {
		body["bot"] = true
		body["strategy"] = seat.Strategy
		body["ply"] = seat.Ply
		if seat.Tiebreak != "" {
			body["tiebreak"] = string(seat.Tiebreak)
		}
	}
	return body, nil
}
