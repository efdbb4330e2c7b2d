package web

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pointsjack/internal/game"
	"pointsjack/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	router *gin.Engine
	games  *game.Manager
	cookie *http.Cookie
}

func newClient(t *testing.T, cards ...string) *client {
	gin.SetMode(gin.TestMode)

	src := game.NewFixedSource(game.MustParseCards(cards...)...)
	factory := session.TableFactory(game.DefaultRules(), game.VisibilityOneCard, func() game.Source { return src })
	games := game.NewManager(factory)
	svc := session.NewService(games, nil)

	return &client{t: t, router: NewRouter(NewHandler(svc, 10)), games: games}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookie {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) state(method, path, body string) stateView {
	w := c.do(method, path, body)
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())

	var v stateView
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestInitialState(t *testing.T) {
	c := newClient(t)

	v := c.state(http.MethodGet, "/api/state", "")
	require.NotNil(t, c.cookie)
	assert.Equal(t, "not_started", v.Phase)
	assert.Equal(t, 100, v.PlayerPoints)
	assert.Equal(t, "Press Start to begin.", v.Message)
	assert.True(t, v.CanStart)
	assert.False(t, v.CanHit)
	assert.Nil(t, v.DealerTotal)
}

func TestRoundHidesDealerUntilStay(t *testing.T) {
	c := newClient(t, "10-H", "8-H", "10-D", "6-D", "K-C")

	v := c.state(http.MethodPost, "/api/round", "")
	assert.Equal(t, "in_progress", v.Phase)
	require.Len(t, v.PlayerCards, 2)
	assert.Equal(t, "10-H", v.PlayerCards[0].Code)
	assert.Equal(t, "cards/8-H.png", v.PlayerCards[1].Image)
	assert.Equal(t, 18, v.PlayerTotal)
	assert.Equal(t, game.DeckSize-4, v.DeckLeft)

	require.Len(t, v.DealerCards, 2)
	assert.Equal(t, "10-D", v.DealerCards[0].Code)
	assert.True(t, v.DealerCards[1].Hidden)
	assert.Equal(t, game.BackImagePath, v.DealerCards[1].Image)
	assert.Empty(t, v.DealerCards[1].Code)
	assert.Nil(t, v.DealerTotal)

	v = c.state(http.MethodPost, "/api/round/stay", "")
	assert.Equal(t, "finished", v.Phase)
	assert.Equal(t, "player_win", v.Result)
	require.Len(t, v.DealerCards, 3)
	for _, card := range v.DealerCards {
		assert.False(t, card.Hidden)
	}
	require.NotNil(t, v.DealerTotal)
	assert.Equal(t, 26, *v.DealerTotal)
	assert.Equal(t, 125, v.PlayerPoints)
	assert.Equal(t, 1, v.Visibility)
}

func TestHitAfterFinishedConflicts(t *testing.T) {
	c := newClient(t, "A-H", "K-H", "10-D", "6-D")

	v := c.state(http.MethodPost, "/api/round", "")
	require.Equal(t, "finished", v.Phase)

	w := c.do(http.MethodPost, "/api/round/hit", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "invalid transition")

	v = c.state(http.MethodGet, "/api/state", "")
	assert.Len(t, v.PlayerCards, 2)
	assert.Equal(t, 125, v.PlayerPoints)
}

func TestSetVisibility(t *testing.T) {
	c := newClient(t, "10-H", "2-H", "9-D", "7-D")
	c.state(http.MethodPost, "/api/round", "")

	v := c.state(http.MethodPut, "/api/settings/visibility", `{"mode":2}`)
	assert.Equal(t, 2, v.Visibility)
	assert.Equal(t, "Easy", v.VisibilityLabel)
	assert.Len(t, v.DealerCards, 2)
	assert.False(t, v.DealerCards[1].Hidden)
	assert.Nil(t, v.DealerTotal)

	v = c.state(http.MethodPut, "/api/settings/visibility", `{"mode":3}`)
	require.NotNil(t, v.DealerTotal)
	assert.Equal(t, 16, *v.DealerTotal)

	w := c.do(http.MethodPut, "/api/settings/visibility", `{"mode":7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPut, "/api/settings/visibility", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionsAreSeparate(t *testing.T) {
	a := newClient(t, "10-H", "2-H", "9-D", "7-D")
	a.state(http.MethodPost, "/api/round", "")

	b := &client{t: t, router: a.router, games: a.games}
	v := b.state(http.MethodGet, "/api/state", "")
	assert.Equal(t, "not_started", v.Phase)
	assert.NotEqual(t, a.cookie.Value, b.cookie.Value)
}

func TestNewMatch(t *testing.T) {
	c := newClient(t, "10-H", "6-H", "10-D", "9-D")
	c.state(http.MethodPost, "/api/round", "")
	v := c.state(http.MethodPost, "/api/round/stay", "")
	require.Equal(t, 75, v.PlayerPoints)

	v = c.state(http.MethodPost, "/api/match", "")
	assert.Equal(t, 100, v.PlayerPoints)
	assert.Equal(t, "not_started", v.Phase)
}

func TestStatsAndLeaderboard(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/api/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rounds":0`)

	w = c.do(http.MethodGet, "/api/leaderboard", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"players":[]}`, w.Body.String())
}

func TestIndexAndHealth(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "startBtn")

	w = c.do(http.MethodGet, "/healthz", "")
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestCookielessReadsSeatNobody(t *testing.T) {
	c := newClient(t)

	for i := 0; i < 500; i++ {
		c.cookie = nil
		c.state(http.MethodGet, "/api/state", "")
		w := c.do(http.MethodGet, "/api/stats", "")
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Zero(t, c.games.Len())
}

func TestCookielessPlayIsEvicted(t *testing.T) {
	c := newClient(t)

	for i := 0; i < 50; i++ {
		c.cookie = nil
		c.state(http.MethodPut, "/api/settings/visibility", `{"mode":2}`)
	}
	require.Equal(t, 50, c.games.Len())

	assert.Equal(t, 50, c.games.Evict(-time.Second))
	assert.Zero(t, c.games.Len())
}

func TestCardImagesAreServed(t *testing.T) {
	c := newClient(t)

	for _, path := range []string{"/" + game.BackImagePath, "/" + game.MustParseCards("A-H")[0].ImagePath(), "/cards/10-S.png"} {
		w := c.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"), path)
	}

	w := c.do(http.MethodGet, "/cards/Z-Z.png", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEveryCardHasAnImage(t *testing.T) {
	for id := 0; id < game.DeckSize; id++ {
		_, err := fs.Stat(cardFiles, "static/"+game.Card(id).ImagePath())
		assert.NoError(t, err, game.Card(id).String())
	}
	_, err := fs.Stat(cardFiles, "static/"+game.BackImagePath)
	assert.NoError(t, err)
}
