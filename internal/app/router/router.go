// Package router assembles the gin route table.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/deepak20001/quickflicks-backend/internal/api"
	authhandler "github.com/deepak20001/quickflicks-backend/internal/feature/auth/transport/handler"
	commenthandler "github.com/deepak20001/quickflicks-backend/internal/feature/comments/transport/handler"
	likehandler "github.com/deepak20001/quickflicks-backend/internal/feature/likes/transport/handler"
	reelhandler "github.com/deepak20001/quickflicks-backend/internal/feature/reels/transport/handler"
	relhandler "github.com/deepak20001/quickflicks-backend/internal/feature/relationships/transport/handler"
	searchhandler "github.com/deepak20001/quickflicks-backend/internal/feature/search/transport/handler"
	userhandler "github.com/deepak20001/quickflicks-backend/internal/feature/users/transport/handler"
	jwtmw "github.com/deepak20001/quickflicks-backend/internal/platform/jwt"
)

// Handlers bundles the feature handlers the router mounts.
type Handlers struct {
	Auth          *authhandler.AuthHandler
	Users         *userhandler.UserHandler
	Reels         *reelhandler.ReelHandler
	Comments      *commenthandler.CommentHandler
	Likes         *likehandler.LikeHandler
	Relationships *relhandler.RelationshipHandler
	Search        *searchhandler.SearchHandler
}

// NewRouter builds the gin engine with the /api/v1 route table.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		api.OK(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	})

	v1 := r.Group("/api/v1")

	// No authentication required
	v1.POST("/users/register", h.Auth.Register)
	v1.POST("/users/login", h.Auth.Login)
	v1.POST("/users/refresh-token", h.Auth.Refresh)

	// Authenticated routes
	auth := v1.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/users/logout", h.Auth.Logout)
		auth.POST("/users/change-password", h.Auth.ChangePassword)
		auth.GET("/users/current-user", h.Users.CurrentUser)
		auth.GET("/users/profile/:user_name", h.Users.Profile)
		auth.GET("/users/exists/u/:user_name", h.Users.UserNameExists)
		auth.GET("/users/get-searched-users/:user_name_query", h.Users.SearchUsers)
		auth.POST("/users/update-user", h.Users.UpdateAccount)
		auth.POST("/users/upload-avatar", h.Users.UpdateAvatar)

		auth.POST("/reels/post-reel", h.Reels.Create)
		auth.GET("/reels/get-reels/u/:user_id", h.Reels.ListByUser)
		auth.GET("/reels/get-reels", h.Reels.ListAll)
		auth.GET("/reels/get-following-reels", h.Reels.ListFollowing)
		auth.GET("/reels/get-most-liked-reels", h.Reels.ListMostLiked)
		auth.GET("/reels/get-saved-reels/u/:user_id", h.Reels.ListSaved)
		auth.POST("/reels/toggle-saved/r/:reel_id", h.Reels.ToggleSave)

		auth.GET("/comments/:reel_id", h.Comments.ListForReel)
		auth.GET("/comments/r/:parent_comment_id", h.Comments.ListReplies)
		auth.POST("/comments/c/:reel_id", h.Comments.Create)
		auth.POST("/comments/r/:reel_id", h.Comments.Reply)
		auth.PATCH("/comments/c/:comment_id", h.Comments.Edit)
		auth.DELETE("/comments/c/:comment_id", h.Comments.Delete)

		auth.POST("/likes/toggle/:reel_id", h.Likes.ToggleReel)
		auth.POST("/likes/toggle/c/:comment_id", h.Likes.ToggleComment)

		auth.POST("/relationships/toggle/u/:user_id", h.Relationships.ToggleFollow)
		auth.GET("/relationships/followers/u/:user_id", h.Relationships.Followers)
		auth.GET("/relationships/followings/u/:user_id", h.Relationships.Following)

		auth.GET("/search/top-liked-reels", h.Search.TopLikedReels)
		auth.GET("/search/top-followed-creators", h.Search.TopFollowedCreators)
	}

	return r
}
