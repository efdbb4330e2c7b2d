package web

import (
	"context"
	"errors"
	"log"
	"net/http"

	"pointsjack/internal/game"
	"pointsjack/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "pj_session"
	sessionKeyCtx = "session_key"
)

type Handler struct {
	svc      *session.Service
	topLimit int
}

func NewHandler(svc *session.Service, topLimit int) *Handler {
	return &Handler{svc: svc, topLimit: topLimit}
}

// withSession gives every browser a random session id. The table for a
// session lives only in memory.
func withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionKeyCtx, "web:"+id)
		c.Next()
	}
}

func sessionKey(c *gin.Context) string {
	return c.GetString(sessionKeyCtx)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrInvalidTransition):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, game.ErrInvalidVisibility):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, newStateView(h.svc.State(c.Request.Context(), sessionKey(c))))
}

func (h *Handler) Start(c *gin.Context) {
	h.intent(c, h.svc.Start)
}

func (h *Handler) Hit(c *gin.Context) {
	h.intent(c, h.svc.Hit)
}

func (h *Handler) Stay(c *gin.Context) {
	h.intent(c, h.svc.Stay)
}

func (h *Handler) intent(c *gin.Context, fn func(ctx context.Context, key string) (game.Snapshot, error)) {
	snap, err := fn(c.Request.Context(), sessionKey(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateView(snap))
}

type visibilityRequest struct {
	Mode int `json:"mode" binding:"required"`
}

func (h *Handler) SetVisibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid JSON"})
		return
	}

	snap, err := h.svc.SetVisibility(c.Request.Context(), sessionKey(c), game.Visibility(req.Mode))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStateView(snap))
}

func (h *Handler) NewMatch(c *gin.Context) {
	c.JSON(http.StatusOK, newStateView(h.svc.NewMatch(c.Request.Context(), sessionKey(c))))
}

func (h *Handler) Stats(c *gin.Context) {
	p, err := h.svc.Stats(c.Request.Context(), sessionKey(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rounds":       p.Rounds,
		"wins":         p.Wins,
		"losses":       p.Losses,
		"pushes":       p.Pushes,
		"naturals":     p.Naturals,
		"matches_won":  p.MatchesWon,
		"matches_lost": p.MatchesLost,
		"best_points":  p.BestPoints,
		"win_rate":     p.WinRate(),
	})
}

func (h *Handler) Leaderboard(c *gin.Context) {
	top, err := h.svc.Top(c.Request.Context(), h.topLimit)
	if err != nil {
		writeError(c, err)
		return
	}

	rows := make([]gin.H, 0, len(top))
	for i, s := range top {
		rows = append(rows, gin.H{
			"rank":        i + 1,
			"matches_won": s.MatchesWon,
			"rounds":      s.Rounds,
			"best_points": s.BestPoints,
			"win_rate":    s.WinRate,
		})
	}
	c.JSON(http.StatusOK, gin.H{"players": rows})
}
