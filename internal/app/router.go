package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/profile"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

// Deps are the long-lived collaborators the router is built from. Cache may
// be nil; Publisher may not.
type Deps struct {
	DB          *gorm.DB
	Catalog     *catalog.Catalog
	Cache       catalog.ResultCache
	Publisher   booking.CheckoutPublisher
	JWT         *jwtsvc.Service
	Log         logrus.FieldLogger
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	bookingRepo := repository.NewBookingRepository(d.DB)
	profileRepo := repository.NewProfileRepository(d.DB)

	authHandler := auth.NewHandler(auth.NewService(d.JWT, d.Log))

	catalogService := catalog.NewService(d.Catalog, d.Cache)
	catalogHandler := catalog.NewHandler(catalogService)
	liveHandler := catalog.NewLiveHandler(catalogService, d.Log)

	bookingService := booking.NewService(d.Catalog, bookingRepo, d.Publisher, d.Log)
	bookingHandler := booking.NewHandler(bookingService)

	profileHandler := profile.NewHandler(profile.NewService(profileRepo, d.Log))

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(d.Log),
		middleware.CORS(d.CORSOrigins),
		middleware.SessionAuth(d.JWT),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "rooms": d.Catalog.Len()})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		liveHandler.RegisterRoutes(v1)

		// protected (booking history, profile)
		protected := v1.Group("/")
		protected.Use(middleware.RequireSession())
		{
			bookingHandler.RegisterRoutes(v1, protected)
			profileHandler.RegisterRoutes(protected)
		}
	}

	return r
}
