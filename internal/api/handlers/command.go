package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/sso-jung/lolchat/internal/game"
)

type CommandHandler struct {
	gameService *game.Service
}

func NewCommandHandler(gameService *game.Service) *CommandHandler {
	return &CommandHandler{gameService: gameService}
}

type CommandRequest struct {
	RoomID  string `json:"roomId"`
	UserID  string `json:"userId"`
	Command string `json:"command"`
}

type CommandResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Handle serves the direct command endpoint used during development and by
// non-Kakao callers.
func (h *CommandHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CommandResponse{OK: false, Message: "invalid request body"})
		return
	}
	if req.RoomID == "" || req.UserID == "" || req.Command == "" {
		writeJSON(w, http.StatusBadRequest, CommandResponse{OK: false, Message: "roomId, userId and command are required"})
		return
	}

	message, err := h.gameService.HandleCommand(r.Context(), req.RoomID, req.UserID, req.Command)
	if err != nil {
		var cooldown *domain.CooldownError
		if errors.As(err, &cooldown) {
			writeJSON(w, http.StatusOK, CommandResponse{OK: false, Message: cooldown.Error()})
			return
		}
		log.Printf("ERROR [command.Handle] room=%s user=%s: %v", req.RoomID, req.UserID, err)
		writeJSON(w, http.StatusInternalServerError, CommandResponse{OK: false, Message: "server error"})
		return
	}

	writeJSON(w, http.StatusOK, CommandResponse{OK: true, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
