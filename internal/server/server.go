package server

import (
	"encoding/json"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"net/http"
	"pxsteg/api"
	"pxsteg/internal/logging"
	"pxsteg/pkg/config"
	"time"

	_ "pxsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
	Version       = "1.0"

	mimeFlatBuffers = "application/octet-stream"
)

// StartServer godoc
// @title pxsteg API
// @version 1.0
// @description An API to hide text and files in the least significant bits of images, and to reveal, visualize and analyze them
// @BasePath /api/v1
func StartServer(sConfig config.ServerConfig) error {
	sConfig.PopulateUnsetConfigVars()
	r := NewRouter(sConfig)

	logging.BuildLogger().Info("Starting server", "port", sConfig.Port, "allowed_origins", sConfig.AllowedOrigins,
		"max_request_size", humanize.Bytes(uint64(sConfig.MaxRequestBytes)), "max_cover_pixels", sConfig.MaxCoverPixels)
	return r.Run(fmt.Sprintf(":%s", sConfig.Port))
}

// NewRouter wires every route and middleware. The config is expected to have its unset values populated already
func NewRouter(sConfig config.ServerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.Use(cors.New(corsConfig(sConfig.AllowedOrigins)))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := stegoHandler{config: sConfig}

	v1 := r.Group("/api/v1")
	v1.GET("/health", HealthHandler)

	stego := v1.Group("/stego", limitRequestBody(sConfig.MaxRequestBytes))
	stego.POST("/capacity", h.CapacityHandler)
	stego.POST("/hide-text", h.HideTextHandler)
	stego.POST("/hide-file", h.HideFileHandler)
	stego.POST("/reveal-text", h.RevealTextHandler)
	stego.POST("/reveal-file", h.RevealFileHandler)
	stego.POST("/visualize", h.VisualizeHandler)
	stego.POST("/visualize-all", h.VisualizeAllHandler)
	stego.POST("/analyze", h.AnalyzeHandler)

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = allowedOrigins
	}
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return c
}

func limitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if maxBytes > 0 {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		}
		ctx.Next()
	}
}

// HealthHandler godoc
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} api.HealthResponse
// @Router /health [get]
func HealthHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, api.HealthResponse{Status: "healthy", Version: Version})
}

type requestLog struct {
	Timestamp       string `json:"timestamp"`
	StatusCode      int    `json:"status_code"`
	Latency         string `json:"latency"`
	LatencyRaw      int64  `json:"latency_raw"`
	ResponseSize    string `json:"response_size"`
	ResponseSizeRaw int    `json:"response_size_raw"`
	ClientIP        string `json:"client_ip"`
	Method          string `json:"method"`
	Path            string `json:"path"`
	Error           string `json:"error,omitempty"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	entry, _ := json.Marshal(requestLog{
		Timestamp:       param.TimeStamp.Format(RFC3339Millis),
		StatusCode:      param.StatusCode,
		Latency:         param.Latency.String(),
		LatencyRaw:      int64(param.Latency),
		ResponseSize:    humanize.Bytes(uint64(max(0, param.BodySize))),
		ResponseSizeRaw: param.BodySize,
		ClientIP:        param.ClientIP,
		Method:          param.Method,
		Path:            param.Path,
		Error:           param.ErrorMessage,
	})
	return string(entry) + "\n"
}
