package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	adminpkg "github.com/Barento999/ecommerce-spa-sub001/admin"
	"github.com/Barento999/ecommerce-spa-sub001/logging"
	mw "github.com/Barento999/ecommerce-spa-sub001/middleware"
	"github.com/Barento999/ecommerce-spa-sub001/realtime"
)

// RouterDeps carries what NewRouter wires into routes. Seed and Hub are optional.
type RouterDeps struct {
	Verifier mw.TokenVerifier
	Admin    adminpkg.Service
	Seed     *SeedHandler
	Hub      *realtime.Hub
	Logger   *logrus.Logger
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID(), logging.Middleware(d.Logger))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	adminHandler := NewAdminHandler(d.Admin, d.Logger)

	v1 := r.Group("/api/v1")
	v1.Use(mw.RequireFirebaseAuth(d.Verifier))
	{
		v1.POST("/addAdminRole", adminHandler.AddAdminRole())
		if d.Seed != nil {
			v1.POST("/seed", mw.RequireClaim(adminpkg.ClaimAdmin), d.Seed.StartSeed())
		}
	}

	if d.Hub != nil {
		r.GET("/ws/seed",
			mw.TokenFromQuery("token"),
			mw.RequireFirebaseAuth(d.Verifier),
			mw.RequireClaim(adminpkg.ClaimAdmin),
			NewWSHandler(d.Hub).SeedSocket(),
		)
	}
	return r
}
