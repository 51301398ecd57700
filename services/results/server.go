package results

import (
	"errors"
	"net/http"

	"tfrrs-backend/lib/scrapers/tfrrs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer builds the HTTP surface around a Service.
func NewServer(service Service) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "tfrrs-backend",
			"endpoints": map[string]string{
				"athlete": "/athletes/:id",
				"meet":    "/meets/:id?sport=tf|xc&gender=m|f",
				"team":    "/teams/:sport/:slug",
				"search":  "/search?type=athlete|team|meet&query=...",
				"health":  "/health",
				"metrics": "/metrics",
			},
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/athletes/:id", getAthlete(service))
	r.GET("/meets/:id", getMeet(service))
	r.GET("/teams/:sport/:slug", getTeam(service))
	r.GET("/search", search(service))

	return r
}

// translate scrape errors to status codes: absence is 404, bad input is
// 400, everything else (transport, timeouts) is a generic 500
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tfrrs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	case errors.Is(err, tfrrs.ErrBadGender), errors.Is(err, tfrrs.ErrBadSearchKind):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "scrape failed"})
	}
}

func getAthlete(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := service.GetAthlete(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func getMeet(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sport := c.DefaultQuery("sport", "tf")
		if sport != "tf" && sport != "xc" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": `sport must be "tf" or "xc"`})
			return
		}

		meet, err := service.GetMeet(
			c.Request.Context(),
			c.Param("id"),
			sport,
			c.Query("gender"),
		)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, meet)
	}
}

func getTeam(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roster, err := service.GetTeam(
			c.Request.Context(),
			c.Param("sport"),
			c.Param("slug"),
		)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, roster)
	}
}

func search(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := service.Search(
			c.Request.Context(),
			tfrrs.SearchKind(c.Query("type")),
			c.Query("query"),
		)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"count":   results.Count(),
			"results": results,
		})
	}
}
