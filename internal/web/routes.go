package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var indexHTML []byte

//go:embed static/cards/*.png
var cardFiles embed.FS

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	cards, err := fs.Sub(cardFiles, "static/cards")
	if err != nil {
		panic(err)
	}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})
	r.StaticFS("/cards", http.FS(cards))

	api := r.Group("/api")
	api.Use(withSession())
	api.GET("/state", h.State)
	api.POST("/round", h.Start)
	api.POST("/round/hit", h.Hit)
	api.POST("/round/stay", h.Stay)
	api.PUT("/settings/visibility", h.SetVisibility)
	api.POST("/match", h.NewMatch)
	api.GET("/stats", h.Stats)
	api.GET("/leaderboard", h.Leaderboard)

	return r
}
