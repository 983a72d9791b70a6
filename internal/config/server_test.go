package config_test

import (
	"ElectionAssistant/internal/api/chat"
	"ElectionAssistant/internal/api/party"
	"ElectionAssistant/internal/config"
	"ElectionAssistant/internal/entity"
	"ElectionAssistant/pkg/handlerUtil"
	"ElectionAssistant/pkg/nlp"
	"bytes"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fasthttp/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *config.Server {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ds, err := nlp.DefaultDataset()
	require.NoError(t, err)

	server, err := config.NewServer(
		config.WithFiber(config.NewFiber(logger)),
		config.WithLogger(logger),
		config.WithConfig(&config.AppConfig{
			Port:           "0",
			DatasetSource:  "embedded",
			SessionTTL:     time.Hour,
			HistoryLimit:   50,
			RateLimitRPS:   100,
			RateLimitBurst: 100,
		}),
		config.WithValidator(config.NewValidator()),
		config.WithStaticDataset(ds),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	require.NoError(t, err)

	server.RegisterHandler()
	server.Mount()
	return server
}

func doRequest(t *testing.T, s *config.Server, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func startSession(t *testing.T, s *config.Server) chat.SessionResponse {
	t.Helper()

	resp, raw := doRequest(t, s, http.MethodPost, "/api/v1/chat/sessions", "", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var session chat.SessionResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &session))
	return session
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	resp, raw := doRequest(t, s, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "Server is Healthy!")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestChatConversation(t *testing.T) {
	s := newTestServer(t)

	session := startSession(t, s)
	require.NotEmpty(t, session.Token)
	require.Len(t, session.Messages, 1)
	assert.Equal(t, chat.Greeting, session.Messages[0].Text)
	assert.True(t, strings.HasPrefix(session.Messages[0].Text, "Welcome to VoteSense."))
	assert.Equal(t, entity.SenderBot, session.Messages[0].Sender)

	resp, raw := doRequest(t, s, http.MethodPost, "/api/v1/chat/messages", session.Token,
		`{"text":"who is the cm candidate of dmk"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var exchange chat.ExchangeResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &exchange))
	assert.Equal(t, "who is the cm candidate of dmk", exchange.UserMessage.Text)
	assert.Equal(t, entity.SenderUser, exchange.UserMessage.Sender)
	assert.Equal(t, "The CM candidate for DMK is M. K. Stalin.", exchange.BotMessage.Text)
	assert.Greater(t, exchange.BotMessage.ID, exchange.UserMessage.ID)

	resp, raw = doRequest(t, s, http.MethodGet, "/api/v1/chat/history", session.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var history chat.HistoryResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &history))
	assert.Equal(t, session.SessionID, history.SessionID)
	assert.Equal(t, 3, history.Total)

	resp, _ = doRequest(t, s, http.MethodDelete, "/api/v1/chat/history", session.Token, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, raw = doRequest(t, s, http.MethodGet, "/api/v1/chat/history", session.Token, "")
	require.NoError(t, jsoniter.Unmarshal(raw, &history))
	assert.Equal(t, 0, history.Total)
}

func TestSendMessageRequiresToken(t *testing.T) {
	s := newTestServer(t)

	resp, _ := doRequest(t, s, http.MethodPost, "/api/v1/chat/messages", "", `{"text":"vote"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, s, http.MethodPost, "/api/v1/chat/messages", "not-a-token", `{"text":"vote"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSendMessageRejectsBlankText(t *testing.T) {
	s := newTestServer(t)
	session := startSession(t, s)

	for _, body := range []string{`{"text":""}`, `{"text":"   "}`, `{"text":"` + strings.Repeat("a", 501) + `"}`} {
		resp, raw := doRequest(t, s, http.MethodPost, "/api/v1/chat/messages", session.Token, body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errResp handlerUtil.ErrorResponse
		require.NoError(t, jsoniter.Unmarshal(raw, &errResp))
		assert.Equal(t, "VALIDATION_ERROR", errResp.Code)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestServer(t)
	first := startSession(t, s)
	second := startSession(t, s)
	require.NotEqual(t, first.SessionID, second.SessionID)

	doRequest(t, s, http.MethodPost, "/api/v1/chat/messages", first.Token, `{"text":"what is the symbol of bjp"}`)

	_, raw := doRequest(t, s, http.MethodGet, "/api/v1/chat/history", second.Token, "")
	var history chat.HistoryResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &history))
	assert.Equal(t, 1, history.Total)
}

func TestVoiceDisabledWithoutTranscriber(t *testing.T) {
	s := newTestServer(t)
	session := startSession(t, s)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("audio", "question.webm")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake audio"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/voice", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+session.Token)

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, _ = doRequest(t, s, http.MethodPost, "/api/v1/chat/voice", session.Token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing audio file")
}

func TestAnalyzeEndpoint(t *testing.T) {
	s := newTestServer(t)

	resp, raw := doRequest(t, s, http.MethodPost, "/api/v1/nlp/analyze", "", `{"text":"what is the slogan of the whistle party"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var analysis chat.AnalyzeResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &analysis))
	assert.True(t, analysis.Related)
	assert.Equal(t, nlp.IntentSloganQuery, analysis.Intent)
	require.NotNil(t, analysis.Entity)
	assert.Equal(t, nlp.EntitySymbol, analysis.Entity.Type)
	assert.Equal(t, "TVK", analysis.Entity.Party.ShortName)
}

func TestPartyEndpoints(t *testing.T) {
	s := newTestServer(t)

	resp, raw := doRequest(t, s, http.MethodGet, "/api/v1/parties", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list party.PartiesResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &list))
	assert.Equal(t, 7, list.Total)
	assert.Equal(t, "AIADMK", list.Parties[0].ShortName)

	resp, raw = doRequest(t, s, http.MethodGet, "/api/v1/parties/dmk", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dmk party.PartyResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &dmk))
	assert.Equal(t, "Rising Sun", dmk.Symbol)

	resp, raw = doRequest(t, s, http.MethodGet, "/api/v1/parties/xyz", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "PARTY_NOT_FOUND")
}

func TestSuggestionsEndpoint(t *testing.T) {
	s := newTestServer(t)

	resp, raw := doRequest(t, s, http.MethodGet, "/api/v1/chat/suggestions?q=lotas", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var res chat.SuggestionsResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &res))
	assert.Equal(t, "lotas", res.Query)
	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "Lotus", res.Suggestions[0])

	_, raw = doRequest(t, s, http.MethodGet, "/api/v1/chat/suggestions?q=a", "", "")
	require.NoError(t, jsoniter.Unmarshal(raw, &res))
	assert.Len(t, res.Suggestions, nlp.MaxSuggestions)

	_, raw = doRequest(t, s, http.MethodGet, "/api/v1/chat/suggestions", "", "")
	require.NoError(t, jsoniter.Unmarshal(raw, &res))
	assert.Empty(t, res.Suggestions)

	resp, _ = doRequest(t, s, http.MethodGet, "/api/v1/chat/suggestions?q="+strings.Repeat("a", 101), "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func listen(t *testing.T, s *config.Server) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = s.App().Listener(ln) }()
	t.Cleanup(func() { _ = s.App().Shutdown() })

	return ln.Addr().String()
}

func dialChat(t *testing.T, addr, token string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	u := url.URL{Scheme: "ws", Host: addr, Path: "/api/v1/chat/ws", RawQuery: "token=" + url.QueryEscape(token)}
	return websocket.DefaultDialer.Dial(u.String(), nil)
}

func TestWebsocketChat(t *testing.T) {
	s := newTestServer(t)
	addr := listen(t, s)
	session := startSession(t, s)

	conn, _, err := dialChat(t, addr, session.Token)
	require.NoError(t, err)
	defer conn.Close()

	ds, err := nlp.DefaultDataset()
	require.NoError(t, err)
	want := nlp.NewEngine(ds).GenerateResponse("Tell me about TVK")

	exchange := func(text string) chat.WSMessage {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(text)))
		var reply chat.WSMessage
		require.NoError(t, conn.ReadJSON(&reply))
		return reply
	}

	reply := exchange("Tell me about TVK")
	assert.Equal(t, chat.WSTypeMessage, reply.Type)
	require.NotNil(t, reply.Message)
	assert.Equal(t, want, reply.Message.Text)
	assert.Equal(t, entity.SenderBot, reply.Message.Sender)

	reply = exchange("   ")
	assert.Equal(t, chat.WSTypeError, reply.Type)
	assert.Equal(t, "message text is required", reply.Error)

	reply = exchange(strings.Repeat("é", 501))
	assert.Equal(t, chat.WSTypeError, reply.Type)
	assert.Equal(t, "message text is too long", reply.Error)

	_, raw := doRequest(t, s, http.MethodGet, "/api/v1/chat/history", session.Token, "")
	var history chat.HistoryResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &history))
	require.Equal(t, 3, history.Total)
	assert.Equal(t, chat.Greeting, history.Messages[0].Text)
	assert.Equal(t, "Tell me about TVK", history.Messages[1].Text)
	assert.Equal(t, want, history.Messages[2].Text)
}

func TestWebsocketRejectsBadToken(t *testing.T) {
	s := newTestServer(t)
	addr := listen(t, s)

	for _, token := range []string{"", "not-a-token"} {
		conn, resp, err := dialChat(t, addr, token)
		if conn != nil {
			conn.Close()
		}
		require.ErrorIs(t, err, websocket.ErrBadHandshake)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	resp, _ := doRequest(t, s, http.MethodGet, "/api/v1/chat/ws", "", "")
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}
