package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 註冊所有路由
// 路由分成三層: 公開、需登入、需管理員，沿用原系統的路徑與結尾斜線
func (impl *ServerImpl) RegisterRoutes(router *gin.Engine) {
	// 公開路由，refresh token 本身就是憑證，所以 refresh 不需要 access token
	router.POST("/register/", impl.Register)
	router.POST("/login/", impl.Login)
	router.POST("/token/refresh/", impl.RefreshToken)

	// 需登入的路由
	authed := router.Group("/", impl.Authenticate())
	{
		authed.POST("/logout/", impl.Logout)

		authed.GET("/get-biddings-by-ticket-id/:ticket_id/", impl.BiddingsByTicket)
		authed.POST("/sell-ticket/:ticket_id/", impl.SellTicket)

		authed.GET("/tickets/", impl.ListTickets)
		authed.POST("/tickets/", impl.CreateTicket)
		authed.GET("/tickets/:id/", impl.GetTicket)
		authed.PUT("/tickets/:id/", impl.UpdateTicket)
		authed.DELETE("/tickets/:id/", impl.DeleteTicket)

		authed.GET("/biddings/", impl.ListBiddings)
		authed.POST("/biddings/", impl.CreateBidding)
		authed.GET("/biddings/:id/", impl.GetBidding)
		authed.PUT("/biddings/:id/", impl.UpdateBidding)
		authed.DELETE("/biddings/:id/", impl.DeleteBidding)
	}

	// 需管理員的路由
	admin := router.Group("/users", impl.Authenticate(), impl.RequireStaff())
	{
		admin.GET("/", impl.ListUsers)
		admin.POST("/", impl.CreateUser)
		admin.GET("/:id/", impl.GetUser)
		admin.PUT("/:id/", impl.UpdateUser)
		admin.DELETE("/:id/", impl.DeleteUser)
	}
}
