package routes

import (
	"littlelemon/authz"
	"littlelemon/configs"
	"littlelemon/controllers"
	"littlelemon/entity"
	"littlelemon/middlewares"
	"littlelemon/repository"
	"littlelemon/services"
	"littlelemon/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.OrderHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, groupRepo, cfg.JWTSecret, cfg.JWTTTL)
	groupSvc := services.NewGroupService(groupRepo, userRepo)
	menuSvc := services.NewMenuService(db, menuRepo, catRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catCtrl := controllers.NewCategoryController(menuSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	groupCtrl := controllers.NewGroupController(groupSvc)

	requireAuth := middlewares.RequireAuth(cfg.JWTSecret, userRepo, groupRepo)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", requireAuth, authCtrl.Me)
	}

	// Catalog reads are public; browsing needs no account.
	r.GET("/categories", catCtrl.List)
	r.GET("/menu-items", menuCtrl.List)
	r.GET("/menu-items/:id", menuCtrl.Get)

	r.POST("/categories", requireAuth,
		middlewares.Authorize(authz.ResourceCategory, authz.ActionCreate), catCtrl.Create)
	r.DELETE("/categories/:id", requireAuth,
		middlewares.Authorize(authz.ResourceCategory, authz.ActionDelete), catCtrl.Delete)

	menu := r.Group("/menu-items", requireAuth)
	{
		menu.POST("", middlewares.Authorize(authz.ResourceMenuItem, authz.ActionCreate), menuCtrl.Create)
		menu.PUT("/:id", middlewares.Authorize(authz.ResourceMenuItem, authz.ActionUpdate), menuCtrl.Update)
		menu.PATCH("/:id", middlewares.Authorize(authz.ResourceMenuItem, authz.ActionUpdate), menuCtrl.Patch)
		menu.DELETE("/:id", middlewares.Authorize(authz.ResourceMenuItem, authz.ActionDelete), menuCtrl.Delete)
		menu.POST("/:id/item-of-day", middlewares.Authorize(authz.ResourceMenuItem, authz.ActionUpdate), menuCtrl.SetItemOfDay)
	}

	// Role registry
	groups := r.Group("/groups", requireAuth)
	{
		groups.GET("/manager/users", middlewares.Authorize(authz.ResourceGroupManager, authz.ActionRead), groupCtrl.Members(entity.RoleManager))
		groups.POST("/manager/users", middlewares.Authorize(authz.ResourceGroupManager, authz.ActionCreate), groupCtrl.Assign(entity.RoleManager))
		groups.DELETE("/manager/users/:id", middlewares.Authorize(authz.ResourceGroupManager, authz.ActionDelete), groupCtrl.Revoke(entity.RoleManager))

		groups.GET("/delivery-crew/users", middlewares.Authorize(authz.ResourceGroupDeliveryCrew, authz.ActionRead), groupCtrl.Members(entity.RoleDeliveryCrew))
		groups.POST("/delivery-crew/users", middlewares.Authorize(authz.ResourceGroupDeliveryCrew, authz.ActionCreate), groupCtrl.Assign(entity.RoleDeliveryCrew))
		groups.DELETE("/delivery-crew/users/:id", middlewares.Authorize(authz.ResourceGroupDeliveryCrew, authz.ActionDelete), groupCtrl.Revoke(entity.RoleDeliveryCrew))
	}

	// Cart: customers acting on their own cart only
	cart := r.Group("/cart/menu-items", requireAuth)
	{
		cart.GET("", middlewares.Authorize(authz.ResourceCart, authz.ActionRead), cartCtrl.Get)
		cart.POST("", middlewares.Authorize(authz.ResourceCart, authz.ActionCreate), cartCtrl.Add)
		cart.DELETE("", middlewares.Authorize(authz.ResourceCart, authz.ActionDelete), cartCtrl.Clear)
		cart.GET("/:id", middlewares.Authorize(authz.ResourceCart, authz.ActionRead), cartCtrl.GetItem)
		cart.PUT("/:id", middlewares.Authorize(authz.ResourceCart, authz.ActionUpdate), cartCtrl.UpdateItem)
		cart.DELETE("/:id", middlewares.Authorize(authz.ResourceCart, authz.ActionDelete), cartCtrl.RemoveItem)
	}

	// Orders: list and detail are partitioned in the service, and the
	// mutations decide per target there too.
	orders := r.Group("/orders", requireAuth)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", middlewares.Authorize(authz.ResourceOrder, authz.ActionCreate), orderCtrl.Checkout)
		orders.GET("/export", middlewares.RequireRole(entity.RoleManager), orderCtrl.Export)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id", orderCtrl.Update)
		orders.PATCH("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
		orders.PATCH("/:id/assign-delivery", orderCtrl.AssignDelivery)
		orders.PATCH("/:id/delivered", orderCtrl.MarkDelivered)
	}

	// Live order feed for manager dashboards
	r.GET("/ws/orders",
		middlewares.WSAuth(cfg.JWTSecret, userRepo, groupRepo),
		middlewares.RequireRole(entity.RoleManager),
		hub.HandleWebSocket)
}
