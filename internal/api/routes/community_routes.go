// internal/api/routes/community_routes.go
package routes

import (
	"talenthub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCommunityRoutes registers all routes related to communities and
// memberships.
func RegisterCommunityRoutes(
	rg *gin.RouterGroup,
	communityHandler *handlers.CommunityHandler,
	authMiddleware gin.HandlerFunc,
) {
	communities := rg.Group("/communities")
	communities.Use(authMiddleware)
	{
		communities.POST("/", communityHandler.Create)
		communities.GET("/", communityHandler.List)
		communities.GET("/:id", communityHandler.Get)
		communities.PATCH("/:id", communityHandler.Update)
		communities.DELETE("/:id", communityHandler.Delete)
		communities.GET("/:id/posts", communityHandler.ListPosts)
		communities.POST("/:id/members", communityHandler.Join)
		communities.GET("/:id/members", communityHandler.ListMembers)
		communities.DELETE("/:id/members/me", communityHandler.Leave)
		communities.DELETE("/:id/members/:userID", communityHandler.RemoveMember)
		communities.PUT("/:id/members/role", communityHandler.SetMemberRole)
		communities.POST("/:id/invites", communityHandler.InviteMember)
	}
}
