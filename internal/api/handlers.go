package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/drunkirk/drunkirk-go/internal/challenge"
	"github.com/drunkirk/drunkirk-go/internal/game"
)

type addPlayerRequest struct {
	Name string `json:"name"`
}

type totalRoundsRequest struct {
	TotalRounds int `json:"totalRounds"`
}

type customChallengeRequest struct {
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
}

// challengeView is the settings-screen listing entry for one challenge,
// either variant, with the user's flags resolved.
type challengeView struct {
	ID         string               `json:"id"`
	Kind       string               `json:"kind"`
	Text       string               `json:"text,omitempty"`
	Action     string               `json:"action,omitempty"`
	Difficulty challenge.Difficulty `json:"difficulty"`
	Categories []string             `json:"categories"`
	Custom     bool                 `json:"custom"`
	Favorite   bool                 `json:"favorite"`
	Disabled   bool                 `json:"disabled"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.State())
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeState(w, s.session.AddPlayer(req.Name))
}

func (s *Server) handleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.RemovePlayer(chi.URLParam(r, "id")))
}

func (s *Server) handleSetTotalRounds(w http.ResponseWriter, r *http.Request) {
	var req totalRoundsRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeState(w, s.session.SetTotalRounds(req.TotalRounds))
}

func (s *Server) handleToggleCategory(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.ToggleCategory(chi.URLParam(r, "category")))
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.ToggleFavorite(chi.URLParam(r, "id")))
}

func (s *Server) handleToggleDisabled(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.ToggleChallengeEnabled(chi.URLParam(r, "id")))
}

func (s *Server) handleListChallenges(w http.ResponseWriter, r *http.Request) {
	state := s.session.State()
	pool := state.Pool()

	views := make([]challengeView, 0, len(pool))
	for _, c := range pool {
		info := c.Info()
		view := challengeView{
			ID:         info.ID,
			Difficulty: info.Difficulty,
			Categories: info.Categories,
			Favorite:   state.Advanced.FavoriteChallenges[info.ID],
			Disabled:   state.Advanced.DisabledChallenges[info.ID],
		}
		switch v := c.(type) {
		case challenge.Simple:
			view.Kind = "simple"
			view.Text = v.Text
		case challenge.Tracked:
			view.Kind = "tracked"
			view.Action = v.Action
		}
		for _, cat := range info.Categories {
			if cat == challenge.CategoryCustom {
				view.Custom = true
			}
		}
		views = append(views, view)
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleAddCustomChallenge(w http.ResponseWriter, r *http.Request) {
	var req customChallengeRequest
	if !s.decode(w, r, &req) {
		return
	}
	d, err := challenge.ParseDifficulty(req.Difficulty)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid_difficulty", err.Error())
		return
	}
	s.writeState(w, s.session.AddCustomChallenge(req.Text, d))
}

func (s *Server) handleEditCustomChallenge(w http.ResponseWriter, r *http.Request) {
	var req customChallengeRequest
	if !s.decode(w, r, &req) {
		return
	}
	d, err := challenge.ParseDifficulty(req.Difficulty)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid_difficulty", err.Error())
		return
	}
	s.writeState(w, s.session.EditCustomChallenge(chi.URLParam(r, "id"), req.Text, d))
}

func (s *Server) handleDeleteCustomChallenge(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.DeleteCustomChallenge(chi.URLParam(r, "id")))
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.StartGame())
}

func (s *Server) handleNextTurn(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.NextTurn())
}

func (s *Server) handleSkipTurn(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.SkipTurn())
}

func (s *Server) handleResetGame(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.ResetGame())
}

func (s *Server) handleResetAll(w http.ResponseWriter, r *http.Request) {
	s.writeState(w, s.session.ResetAll())
}

// stateResponse wraps the snapshot with the derived phase so the UI doesn't
// re-implement the game-over computation.
type stateResponse struct {
	game.State
	Phase game.Phase `json:"phase"`
}

func (s *Server) writeState(w http.ResponseWriter, state game.State) {
	s.writeJSON(w, http.StatusOK, stateResponse{State: state, Phase: state.Phase()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid_request", "request body is not valid JSON")
		return false
	}
	return true
}
