// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/munhozvinicius/divinomaravilhoso/internal/handler"
)

// Handlers bundles every handler the router needs. One struct keeps the
// wiring in main readable.
type Handlers struct {
	Events     *handler.EventHandler
	Products   *handler.ProductHandler
	Social     *handler.SocialHandler
	Setlist    *handler.SetlistHandler
	Orders     *handler.OrderHandler
	Newsletter *handler.NewsletterHandler
}

// Register mounts all routes. cache is the response-cache middleware for the
// read-mostly catalog listings; pass-through when caching is disabled. The
// leaderboard and comment feed stay uncached so votes show up immediately.
func Register(e *echo.Echo, h Handlers, cache echo.MiddlewareFunc, publicDir string) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.GET("/events", h.Events.GetEvents, cache)
	api.GET("/events/:id/story-card.png", h.Events.GetStoryCard)
	api.GET("/products", h.Products.GetProducts, cache)
	api.GET("/social", h.Social.GetSocialLinks, cache)

	api.GET("/setlist/tracks", h.Setlist.GetTracks, cache)
	api.GET("/setlist/top", h.Setlist.GetTop)
	api.GET("/setlist/comments", h.Setlist.GetComments)
	api.POST("/setlist/vote", h.Setlist.SubmitVote)
	api.POST("/setlist/comment", h.Setlist.SubmitComment)

	api.POST("/orders", h.Orders.Create)
	api.POST("/newsletter", h.Newsletter.Subscribe)

	// Everything else is the static front-end.
	e.Static("/", publicDir)
}
