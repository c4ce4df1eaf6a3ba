package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/connectfour-go/internal/api/request"
	"github.com/mcoot/connectfour-go/internal/api/response"
	"github.com/mcoot/connectfour-go/internal/live"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/bot"
	"github.com/mcoot/connectfour-go/internal/services/game"
)

const (
	// DefaultAnalysisPly is the look-ahead depth used when a scores request
	// does not name one
	DefaultAnalysisPly = 4
	// DefaultSummaryLimit caps the summaries list when no limit is given
	DefaultSummaryLimit = 20
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	botService     *bot.Service
	hubManager     *live.HubManager
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	gameController *game.Controller,
	botService *bot.Service,
	hubManager *live.HubManager,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
		hubManager:     hubManager,
		logger:         logger.With(slog.String("component", "game-handler")),
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	seatX, err := req.SeatX.ToModel()
	if err != nil {
		WriteError(w, err)
		return
	}
	seatO, err := req.SeatO.ToModel()
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), game.NewGameOptions{
		Width:  req.Width,
		Height: req.Height,
		SeatX:  seatX,
		SeatO:  seatO,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	// A bot holding X opens the game
	botMoves, err := h.processBotMoves(r.Context(), g.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	if len(botMoves) > 0 {
		g = botMoves[len(botMoves)-1].Game
	}

	response.JSON(w, http.StatusCreated, response.CreateGameResponse{
		Game:     response.GameFromModel(g),
		BotMoves: response.BotMovesFromModel(botMoves),
	})
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Column == nil {
		WriteError(w, NewInvalidRequestError("column is required"))
		return
	}
	checker, err := request.ParseOptionalChecker(req.Checker)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, botMoves, err := h.PlayHumanMove(r.Context(), id, checker, *req.Column)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveResponse{
		Game:     response.GameFromModel(g),
		BotMoves: response.BotMovesFromModel(botMoves),
	})
}

// PlayHumanMove plays col for a human seat, then lets any bot seats reply.
// An empty checker plays for the side to move. Every move is published to
// live clients of the game.
func (h *GameHandler) PlayHumanMove(ctx context.Context, id model.GameID, checker model.Checker, col int) (*model.Game, []bot.BotMove, error) {
	current, err := h.gameController.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if checker == model.CheckerEmpty {
		checker = current.NextChecker
	}
	if current.Seat(checker).IsBot {
		return nil, nil, model.ErrNotPlayerTurn
	}

	g, err := h.gameController.PlayMove(ctx, id, checker, col)
	if err != nil {
		return nil, nil, err
	}
	h.hubManager.Publish(id, live.MoveEvent(g, checker, col))

	botMoves, err := h.processBotMoves(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if len(botMoves) > 0 {
		g = botMoves[len(botMoves)-1].Game
	}
	return g, botMoves, nil
}

// processBotMoves runs bot turns and publishes each one
func (h *GameHandler) processBotMoves(ctx context.Context, id model.GameID) ([]bot.BotMove, error) {
	moves, err := h.botService.ProcessBotMoves(ctx, id)
	for _, m := range moves {
		h.hubManager.Publish(id, live.MoveEvent(m.Game, m.Checker, m.Column))
	}
	if err != nil {
		h.logger.Error("bot moves failed",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return moves, err
	}
	return moves, nil
}

// Scores handles GET /api/v1/games/{id}/scores?ply=&tiebreak=
func (h *GameHandler) Scores(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])
	query := r.URL.Query()

	ply := DefaultAnalysisPly
	if raw := query.Get("ply"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("ply must be an integer"))
			return
		}
		ply = parsed
	}

	tiebreak := model.TiebreakLeft
	if raw := query.Get("tiebreak"); raw != "" {
		parsed, err := model.ParseTiebreakPolicy(raw)
		if err != nil {
			WriteError(w, err)
			return
		}
		tiebreak = parsed
	}

	analysis, err := h.botService.Analyze(r.Context(), id, ply, tiebreak)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoresFromAnalysis(analysis))
}

// Abandon handles DELETE /api/v1/games/{id}
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.AbandonGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	if g, err := h.gameController.GetGame(r.Context(), id); err == nil {
		h.hubManager.Publish(id, live.StateEvent(g))
	}

	response.NoContent(w)
}

// Summaries handles GET /api/v1/summaries?limit=
func (h *GameHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	limit := DefaultSummaryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	summaries, err := h.gameController.ListSummaries(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.Summaries{Games: make([]response.GameSummary, len(summaries))}
	for i, s := range summaries {
		resp.Games[i] = response.GameSummaryFromModel(s)
	}
	response.JSON(w, http.StatusOK, resp)
}
