package server

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/innova67/cartas-vencimiento/internal/api"
	"github.com/innova67/cartas-vencimiento/internal/config"
	"github.com/innova67/cartas-vencimiento/internal/store"
)

// Server servidor HTTP local
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *api.Handler
}

// NewServer crea el servidor
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "cartas.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	apiHandler := api.NewHandler(sqliteStore, api.Options{
		DefaultCurrency: cfg.Letters.DefaultCurrency,
		CountryCode:     cfg.Letters.CountryCode,
	})

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		api:    apiHandler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes configura las rutas
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	if devMode {
		// Modo desarrollo: la interfaz corre en el servidor de Vite
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		s.router.GET("/", func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
		})
	}
}

const indexPage = `<!doctype html>
<html lang="es">
<head><meta charset="utf-8"><title>Cartas de Vencimiento</title></head>
<body>
<h1>Cartas de Vencimiento</h1>
<p>El servicio está activo. La interfaz consume el API bajo <code>/api</code>.</p>
</body>
</html>`

// Run inicia el servidor
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close cierra la base de datos
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore devuelve el almacén (para pruebas)
func (s *Server) GetStore() *store.Store {
	return s.store
}
