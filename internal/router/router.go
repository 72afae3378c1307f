package router

import (
	"daily-app/internal/config"
	"daily-app/internal/handler"
	"daily-app/internal/middleware"
	"daily-app/internal/service"
	"daily-app/internal/util"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin engine and every route.
func SetupRouter(cfg *config.Config, svc *service.Services) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	util.UseJSONFieldNames()

	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	authHandler := handler.NewAuthHandler(svc.Auth)
	requireLogin := middleware.AuthMiddleware(svc.Auth)

	// 登录/注册接口（不需要鉴权）
	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.GET("/login", middleware.OptionalAuth(svc.Auth), authHandler.LoginPage)
	auth.POST("/login", authHandler.Login)

	// 需要登录才能访问的接口
	authed := auth.Group("", requireLogin)
	authed.GET("/logout", authHandler.Logout)
	authed.GET("/me", authHandler.GetMe)
	authed.GET("/profile", authHandler.GetProfile)
	authed.POST("/profile", authHandler.UpdateProfile)
	authed.POST("/password", authHandler.ChangePassword)

	billHandler := handler.NewBillHandler(svc.Bills, svc.Categories, svc.Statistics)
	r.GET("/", requireLogin, billHandler.Home)

	bill := r.Group("/bill", requireLogin)
	bill.GET("/", billHandler.List)
	bill.GET("/create", billHandler.CreateForm)
	bill.POST("/create", billHandler.Create)
	bill.GET("/edit/:id", billHandler.EditForm)
	bill.POST("/edit/:id", billHandler.Edit)
	bill.GET("/delete/:id", billHandler.Delete)
	bill.GET("/view/:id", billHandler.View)
	bill.GET("/statistics", billHandler.Statistics)
	bill.GET("/export/csv", billHandler.ExportCSV)
	bill.GET("/export/xlsx", billHandler.ExportXLSX)

	bill.GET("/category", billHandler.Categories)
	bill.POST("/category/create", billHandler.CreateCategory)
	bill.GET("/category/edit/:id", billHandler.EditCategoryForm)
	bill.POST("/category/edit/:id", billHandler.EditCategory)
	bill.GET("/category/delete/:id", billHandler.DeleteCategory)

	foodHandler := handler.NewFoodHandler(svc.Foods)
	food := r.Group("/food", requireLogin)
	food.GET("/", foodHandler.List)
	food.POST("/create", foodHandler.Create)
	food.GET("/edit/:id", foodHandler.View)
	food.POST("/edit/:id", foodHandler.Edit)
	food.GET("/delete/:id", foodHandler.Delete)
	food.GET("/view/:id", foodHandler.View)

	friendHandler := handler.NewFriendHandler(svc.Friends)
	friend := r.Group("/friend", requireLogin)
	friend.GET("/", friendHandler.List)
	friend.POST("/create", friendHandler.Create)
	friend.GET("/edit/:id", friendHandler.View)
	friend.POST("/edit/:id", friendHandler.Edit)
	friend.GET("/delete/:id", friendHandler.Delete)
	friend.GET("/view/:id", friendHandler.View)
	friend.POST("/:id/phones", friendHandler.AddPhone)
	friend.POST("/:id/qqs", friendHandler.AddQQ)
	friend.POST("/:id/wechats", friendHandler.AddWechat)
	friend.POST("/:id/emails", friendHandler.AddEmail)
	for _, kind := range handler.IdentityKinds {
		friend.GET("/:id/"+kind+"/delete/:sub", friendHandler.DeleteIdentity(kind))
	}

	noteHandler := handler.NewNoteHandler(svc.Notes)
	note := r.Group("/note", requireLogin)
	note.GET("/", noteHandler.List)
	note.GET("/create", noteHandler.CreateForm)
	note.POST("/create", noteHandler.Create)
	note.GET("/edit/:id", noteHandler.EditForm)
	note.POST("/edit/:id", noteHandler.Edit)
	note.GET("/delete/:id", noteHandler.Delete)
	note.GET("/view/:id", noteHandler.View)
	note.POST("/:id/attrs", noteHandler.AddAttr)
	note.POST("/:id/attrs/:attr", noteHandler.EditAttr)
	note.GET("/:id/attrs/delete/:attr", noteHandler.DeleteAttr)
	note.GET("/types", noteHandler.Types)
	note.POST("/types/create", noteHandler.CreateType)

	todoHandler := handler.NewTodoHandler(svc.Todos)
	todo := r.Group("/todo", requireLogin)
	todo.GET("/", todoHandler.List)
	todo.POST("/create", todoHandler.Create)
	todo.GET("/edit/:id", todoHandler.View)
	todo.POST("/edit/:id", todoHandler.Edit)
	todo.GET("/delete/:id", todoHandler.Delete)
	todo.GET("/view/:id", todoHandler.View)
	todo.GET("/:id/toggle", todoHandler.Toggle)
	todo.POST("/:id/details", todoHandler.AddDetail)
	todo.POST("/:id/details/:detail", todoHandler.EditDetail)
	todo.GET("/:id/details/delete/:detail", todoHandler.DeleteDetail)

	return r
}
