package routes

import (
	"bodaplanner-backend/config"
	"bodaplanner-backend/controllers"
	"bodaplanner-backend/models"
	"bodaplanner-backend/services"
	"bodaplanner-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(users *models.UserStore, inbox *models.Inbox, ai services.Generator) *gin.Engine {
	r := gin.Default()

	// The original frontend is served from arbitrary origins.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	r.Use(config.PerformanceLogger())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := controllers.AuthController{Users: users}
	chat := controllers.ChatController{AI: ai, Inbox: inbox}
	inboxCtrl := controllers.InboxController{Inbox: inbox}

	api := r.Group("/api")
	{
		api.POST("/login", auth.Login)
		api.GET("/admin/proveedores", controllers.ListarProveedores)

		api.GET("/events", controllers.ListarEventos)
		api.POST("/events", controllers.GuardarEvento)

		api.GET("/checklist/:userId", controllers.ListarChecklist)
		api.POST("/checklist", controllers.CrearTarea)
		api.PATCH("/checklist/:id", controllers.CompletarTarea)
		api.DELETE("/checklist/:id", controllers.EliminarTarea)

		api.GET("/recommendations/:userId", controllers.Recomendaciones)
		api.POST("/proveedores/seleccionar", controllers.SeleccionarProveedor)

		api.POST("/documentos", controllers.CrearDocumento)

		api.GET("/guests/:userId", controllers.ListarInvitados)
		api.POST("/guests", controllers.CrearInvitado)

		api.POST("/profile", controllers.GuardarPerfil)
		api.POST("/guardar-perfil", controllers.GuardarPerfilCompleto)

		api.POST("/budget/pay", controllers.PagarPresupuesto)

		api.GET("/alerts/:userId", controllers.ListarAlertas)

		api.POST("/ia/chat", chat.Chat)

		planner := api.Group("/planner")
		planner.Use(utils.AuthMiddleware(), utils.RequireRole("planner", "admin"))
		{
			planner.GET("/inbox", inboxCtrl.ListarNotas)
		}
	}

	return r
}
