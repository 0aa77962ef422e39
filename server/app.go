package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhsinaltintop/yildiz-quote/config"
	"github.com/muhsinaltintop/yildiz-quote/internal/db"
	"github.com/muhsinaltintop/yildiz-quote/internal/health"
	"github.com/muhsinaltintop/yildiz-quote/internal/logs"
	"github.com/muhsinaltintop/yildiz-quote/internal/middleware"
	"github.com/muhsinaltintop/yildiz-quote/internal/models"
	"github.com/muhsinaltintop/yildiz-quote/internal/offers"
	"github.com/muhsinaltintop/yildiz-quote/internal/pdfgen"
	"github.com/muhsinaltintop/yildiz-quote/internal/seed"
	"github.com/muhsinaltintop/yildiz-quote/internal/templates"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type App struct {
	cfg        *config.Config
	Router     *mux.Router
	httpServer *http.Server

	db     *gorm.DB
	ctx    context.Context
	cancel context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	// 1) Logging
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	// 2) DB (optional)
	if drv := a.cfg.Database.Driver; drv != "" {
		d, err := db.Open(drv, a.cfg.Database.DSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		a.db = d
	}

	// ---- DB migrations (only if DB is connected) ----
	if a.db != nil {
		if err := a.db.AutoMigrate(
			// templates & services
			&models.OfferTemplate{},
			&models.TemplateTranslation{},
			&models.Service{},
			&models.ServiceTranslation{},
			&models.TemplateService{},

			// offers
			&models.Offer{},
			&models.OfferItem{},
		); err != nil {
			logs.Logger.Errorf("automigrate: %v", err)
		}
		if err := db.MigrateTranslationUniqueIndexes(a.db); err != nil {
			logs.Logger.Warnf("translation unique indexes: %v", err)
		}
		if err := seed.EnsureDefaultTemplate(a.db); err != nil {
			logs.Logger.Warnf("seed default template: %v", err)
		}
	}

	// 3) Router + middleware
	a.Router = mux.NewRouter()
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.Recoverer)
	a.Router.Use(middleware.LoggerMW)

	a.RegisterWebUI("/ui/")

	// 4) Health routes
	if a.db != nil {
		health.RegisterRoutesWithDB(a.Router, a.db) // /healthz and /readyz
	} else {
		health.RegisterRoutes(a.Router) // /healthz only
	}

	// 5) Offer + template HTTP (needs DB)
	if a.db != nil {
		renderer := pdfgen.New(a.encodingPolicy())

		offersHTTP := offers.NewHTTP(offers.NewRepo(a.db), renderer)
		offersHTTP.RegisterRoutes(a.Router)

		templatesHTTP := templates.NewHTTP(templates.NewRepo(a.db))
		templatesHTTP.RegisterRoutes(a.Router)
	}

	a.Router.Walk(func(rt *mux.Route, r *mux.Router, ancestors []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

// encodingPolicy picks the PDF text mode: embedded OpenSans for full
// Turkish coverage, or asset-free Helvetica with diacritics folded.
func (a *App) encodingPolicy() pdfgen.EncodingPolicy {
	if a.cfg.PDF.Encoding == "ascii" {
		return pdfgen.ASCIIFolded{}
	}
	return pdfgen.EmbeddedUnicode{Fonts: pdfgen.NewFontCache(a.cfg.PDF.FontsDir)}
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return ErrNotInitialized
	}
	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; a.cancel() }()

	a.httpServer = &http.Server{
		Addr:         bind,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = a.httpServer.Shutdown(ctx)
	return nil
}

var ErrNotInitialized = &initError{"server not initialized (call Initialize(cfg) first)"}

type initError struct{ s string }

func (e *initError) Error() string { return e.s }
