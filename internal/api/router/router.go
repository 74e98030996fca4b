package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kindoblue/jakarta10-tutoring/config"
	"github.com/kindoblue/jakarta10-tutoring/internal/api/handler"
	"github.com/kindoblue/jakarta10-tutoring/internal/api/middleware"
	"github.com/kindoblue/jakarta10-tutoring/pkg/redis"
)

// maxBodyBytes caps uploads; floor plan SVGs are the largest bodies.
const maxBodyBytes = 4 << 20

// Setup builds the Gin engine with the full middleware chain and the
// /api/v1 route tree.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))
	if cfg.Server.RateLimit.Enabled {
		window := time.Duration(cfg.Server.RateLimit.WindowSeconds) * time.Second
		r.Use(middleware.RateLimit(rdb, cfg.Server.RateLimit.Requests, window))
	}

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		floors := v1.Group("/floors")
		{
			floors.GET("", h.Floor.ListFloors)
			floors.GET("/:id", h.Floor.GetFloor)
			floors.POST("", h.Floor.CreateFloor)
			floors.PUT("/:id", h.Floor.UpdateFloor)
			floors.DELETE("/:id", h.Floor.DeleteFloor)
			floors.GET("/:id/plan", h.Floor.GetFloorPlan)
			floors.PUT("/:id/plan", h.Floor.SetFloorPlan)
		}

		rooms := v1.Group("/rooms")
		{
			rooms.GET("/:id", h.Room.GetRoom)
			rooms.GET("/:id/seats", h.Room.ListRoomSeats)
			rooms.POST("", h.Room.CreateRoom)
			rooms.PUT("/:id", h.Room.UpdateRoom)
			rooms.DELETE("/:id", h.Room.DeleteRoom)
			rooms.PATCH("/:id/geometry", h.Room.PatchRoomGeometry)
			rooms.PATCH("/:id/seats/:seatId/geometry", h.Room.PatchSeatGeometry)
		}

		seats := v1.Group("/seats")
		{
			seats.GET("/:id", h.Seat.GetSeat)
			seats.POST("", h.Seat.CreateSeat)
			seats.PUT("/:id", h.Seat.UpdateSeat)
			seats.DELETE("/:id", h.Seat.DeleteSeat)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("", h.Employee.SearchEmployees)
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.GET("/:id/seats", h.Employee.GetEmployeeSeats)
			employees.POST("", h.Employee.CreateEmployee)
			employees.DELETE("/:id", h.Employee.DeleteEmployee)
			employees.PUT("/:id/seats/:seatId", h.Employee.AssignSeat)
			employees.DELETE("/:id/seats/:seatId", h.Employee.UnassignSeat)
		}

		v1.GET("/stats", h.Stats.GetStats)
		v1.GET("/export/seating", h.Export.ExportSeating)
	}

	return r
}
