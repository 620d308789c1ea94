package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/sso-jung/lolchat/internal/api/handlers"
	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/sso-jung/lolchat/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kakaoPayload(chatID, userID, utterance string) map[string]any {
	userRequest := map[string]any{
		"utterance": utterance,
		"user":      map[string]any{"id": userID},
	}
	if chatID != "" {
		userRequest["chat"] = map[string]any{"id": chatID}
	}
	return map[string]any{"userRequest": userRequest}
}

func decodeKakaoResponse(t *testing.T, resp *http.Response) handlers.KakaoSkillResponse {
	t.Helper()

	var out handlers.KakaoSkillResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestKakaoEndpoint_QueueRoll(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.BaseURL()+"/kakao/skill", kakaoPayload("chat42", "kakao_user", "/queue"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeKakaoResponse(t, resp)
	assert.Equal(t, "2.0", out.Version)
	require.Len(t, out.Template.Outputs, 1)
	assert.Contains(t, out.Template.Outputs[0].SimpleText.Text, "Welcome to the map.")

	// Room comes from the chat id, not the user id.
	player, err := ts.Repos.Player.Get(context.Background(), "chat42", "kakao_user")
	require.NoError(t, err)
	assert.Equal(t, domain.StatePlaying, player.State)
}

func TestKakaoEndpoint_FallsBackToUserIDAsRoom(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.BaseURL()+"/kakao/skill", kakaoPayload("", "solo_user", "/queue"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	player, err := ts.Repos.Player.Get(context.Background(), "solo_user", "solo_user")
	require.NoError(t, err)
	assert.Equal(t, domain.StatePlaying, player.State)
}

func TestKakaoEndpoint_EmptyPayloadUsesUnknownIdentity(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := postJSON(t, ts.BaseURL()+"/kakao/skill", map[string]any{})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeKakaoResponse(t, resp)
	require.Len(t, out.Template.Outputs, 1)

	_, err := ts.Repos.Player.Get(context.Background(), "unknown_room", "unknown_user")
	require.NoError(t, err)
}

func TestKakaoEndpoint_CooldownRendersAsReply(t *testing.T) {
	ts := testutil.NewTestServer(t)

	testutil.NewPlayerBuilder().
		WithIdentity("chat42", "kakao_user").
		Playing("AHRI", domain.RoleMage).
		WithLastSurrenderAt(time.Now()).
		Build(t, ts.DB.DB)

	resp := postJSON(t, ts.BaseURL()+"/kakao/skill", kakaoPayload("chat42", "kakao_user", "/surrender"))

	// Kakao always gets 200; the cooldown shows up as reply text.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeKakaoResponse(t, resp)
	require.Len(t, out.Template.Outputs, 1)
	assert.Contains(t, out.Template.Outputs[0].SimpleText.Text, "cooldown")
}
