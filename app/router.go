// Package app wires the endpoints, middleware and dependencies together
package app

import (
	"fmt"
	"time"

	"mupro/lostfound-api/app/auth"
	"mupro/lostfound-api/app/claim"
	"mupro/lostfound-api/app/found"
	"mupro/lostfound-api/app/lost"
	"mupro/lostfound-api/app/root"
	"mupro/lostfound-api/aws"
	"mupro/lostfound-api/db"
	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"
	"mupro/lostfound-api/internal/service"
	"mupro/lostfound-api/pkg/middleware"
	"mupro/lostfound-api/pkg/security"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	tokenTTL := time.Duration(viper.GetInt("jwt.ttl_hours")) * time.Hour

	d := &internal.Deps{
		DB:     conn,
		Argon:  security.NewArgon(),
		JWT:    security.NewJWT(viper.GetString("jwt.secret"), tokenTTL),
		Tokens: service.NewTokenLedger(conn),
		Mailer: service.NewSMTPMailer(),
	}
	d.Auth = service.NewAuth(conn, d.Argon, d.JWT, d.Tokens, d.Mailer,
		viper.GetBool("auth.require_email_verification"))

	switch viper.GetString("storage.type") {
	case "s3":
		s3, err := aws.NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}
		d.Images = service.NewS3Store(s3)
	default:
		d.Images = &service.LocalStore{Dir: viper.GetString("storage.local.dir")}
	}

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	authn := middleware.NewAuthMiddleware(d)
	admin := middleware.RequireRole(model.RoleAdmin)
	rateLimit := viper.GetInt("auth.rate_limit")
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
		CleanupInterval:   time.Second,
	})
	maxUploadSize := viper.GetInt64("upload.max_size")

	m := router.Group("/api", rateLimiter)
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/validate		-> Validates a session token
		m.GET("/validate", authn, root.Validate)
	}

	a := m.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/auth/register 	-> Registers a new user
		a.POST("/register", func(c *gin.Context) { auth.Register(c, d) })

		// POST /api/auth/register-admin -> Registers an admin account (admins only)
		a.POST("/register-admin", authn, admin, func(c *gin.Context) { auth.RegisterAdmin(c, d) })

		// POST /api/auth/login 	-> Logs in a user and returns a session token
		a.POST("/login", func(c *gin.Context) { auth.Login(c, d) })

		// POST /api/auth/verify-otp	-> Confirms the emailed code and activates the account
		a.POST("/verify-otp", func(c *gin.Context) { auth.VerifyOtp(c, d) })

		// POST /api/auth/logout	-> Revokes the presented session token
		a.POST("/logout", authn, func(c *gin.Context) { auth.Logout(c, d) })

		// POST /api/auth/forgot-password -> Sends a password reset mail
		a.POST("/forgot-password", func(c *gin.Context) { auth.ForgotPassword(c, d) })
	}

	l := m.Group("/lost-items", authn)
	{
		// POST /api/lost-items		-> Reports a lost item (multipart, optional image)
		l.POST("", middleware.BodySizeLimiter(maxUploadSize), func(c *gin.Context) { lost.Report(c, d) })

		// GET /api/lost-items		-> Lists all lost items
		l.GET("", func(c *gin.Context) { lost.FetchAll(c, d) })

		// GET /api/lost-items/:id	-> Returns one lost item
		l.GET("/:id", func(c *gin.Context) { lost.Fetch(c, d) })

		// PUT /api/lost-items/:id/resolve -> Marks a lost item resolved (admins only)
		l.PUT("/:id/resolve", admin, func(c *gin.Context) { lost.Resolve(c, d) })
	}

	f := m.Group("/found-items", authn)
	{
		// POST /api/found-items	-> Reports a found item (multipart, optional image)
		f.POST("", middleware.BodySizeLimiter(maxUploadSize), func(c *gin.Context) { found.Report(c, d) })

		// GET /api/found-items		-> Lists all found items
		f.GET("", func(c *gin.Context) { found.FetchAll(c, d) })

		// GET /api/found-items/:id	-> Returns one found item
		f.GET("/:id", func(c *gin.Context) { found.Fetch(c, d) })

		// PUT /api/found-items/:id/return -> Marks a found item returned (admins only)
		f.PUT("/:id/return", admin, func(c *gin.Context) { found.Return(c, d) })
	}

	cl := m.Group("/claims", authn)
	{
		// POST /api/claims/submit	-> Submits an ownership claim
		cl.POST("/submit", middleware.BodySizeLimiter(1<<20), func(c *gin.Context) { claim.Submit(c, d) })

		// GET /api/claims/pending	-> Lists unapproved claims (admins only)
		cl.GET("/pending", admin, func(c *gin.Context) { claim.Pending(c, d) })

		// PUT /api/claims/approve/:id	-> Approves a claim (admins only)
		cl.PUT("/approve/:id", admin, func(c *gin.Context) { claim.Approve(c, d) })

		// GET /api/claims/approved/pdf	-> Downloads the approved claims report (admins only)
		cl.GET("/approved/pdf", admin, func(c *gin.Context) { claim.ReportPDF(c, d) })
	}

	if viper.GetString("storage.type") == "local" {
		router.Static("/uploads", viper.GetString("storage.local.dir"))
	}

	// Ledger rows live forever, this just keeps their expired flag honest
	if viper.GetBool("app.sweep_tokens") {
		service.TokenSweep(time.Hour, tokenTTL, d.Tokens)
	}

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
