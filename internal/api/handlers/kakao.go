package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/sso-jung/lolchat/internal/game"
)

type KakaoHandler struct {
	gameService *game.Service
}

func NewKakaoHandler(gameService *game.Service) *KakaoHandler {
	return &KakaoHandler{gameService: gameService}
}

// KakaoSkillRequest is the subset of the Kakao i open-builder skill payload
// this bot reads.
type KakaoSkillRequest struct {
	UserRequest struct {
		Utterance string `json:"utterance"`
		Chat      struct {
			ID string `json:"id"`
		} `json:"chat"`
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	} `json:"userRequest"`
}

type KakaoSkillResponse struct {
	Version  string        `json:"version"`
	Template KakaoTemplate `json:"template"`
}

type KakaoTemplate struct {
	Outputs []KakaoOutput `json:"outputs"`
}

type KakaoOutput struct {
	SimpleText KakaoSimpleText `json:"simpleText"`
}

type KakaoSimpleText struct {
	Text string `json:"text"`
}

// Handle serves the Kakao skill webhook. Kakao expects 200 with a v2 envelope
// no matter what, so every failure renders as reply text instead of an HTTP
// error.
func (h *KakaoHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req KakaoSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("WARN [kakao.Handle] undecodable payload: %v", err)
	}

	roomID := req.UserRequest.Chat.ID
	if roomID == "" {
		roomID = req.UserRequest.User.ID
	}
	if roomID == "" {
		roomID = "unknown_room"
	}
	userID := req.UserRequest.User.ID
	if userID == "" {
		userID = "unknown_user"
	}

	log.Printf("KAKAO_SKILL_REQUEST room=%s user=%s utterance=%q", roomID, userID, req.UserRequest.Utterance)

	message, err := h.gameService.HandleCommand(r.Context(), roomID, userID, req.UserRequest.Utterance)
	if err != nil {
		var cooldown *domain.CooldownError
		if errors.As(err, &cooldown) {
			message = cooldown.Error()
		} else {
			log.Printf("ERROR [kakao.Handle] room=%s user=%s: %v", roomID, userID, err)
			message = "server error"
		}
	}

	writeJSON(w, http.StatusOK, KakaoSkillResponse{
		Version: "2.0",
		Template: KakaoTemplate{
			Outputs: []KakaoOutput{
				{SimpleText: KakaoSimpleText{Text: message}},
			},
		},
	})
}
