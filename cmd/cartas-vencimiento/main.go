package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/innova67/cartas-vencimiento/internal/config"
	"github.com/innova67/cartas-vencimiento/internal/server"
	"github.com/innova67/cartas-vencimiento/internal/util"
)

var (
	port    = flag.Int("port", 0, "puerto del servicio (config.toml tiene prioridad)")
	devMode = flag.Bool("dev", false, "modo desarrollo")
	dataDir = flag.String("dataDir", "", "directorio de datos (reemplaza al configurado)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Cartas de Vencimiento - Patria S.A.")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("No se pudo cargar la configuración, se usan los valores por defecto: %v", err)
		cfg = config.DefaultConfig()
	}

	// Los parámetros de línea de comandos pisan la configuración
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("No se pudo crear el directorio de datos: %v", err)
	} else {
		fmt.Printf("Directorio de datos: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Servicio iniciando en el puerto %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("No se pudo iniciar el servicio: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("Abriendo el navegador: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("No se pudo abrir el navegador, visite manualmente: %s\n", url)
		}
	} else {
		fmt.Printf("Modo desarrollo: visite %s\n", url)
	}

	fmt.Println("\nPresione Ctrl+C para detener el servicio...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nCerrando el servicio...")
	if err := srv.Close(); err != nil {
		log.Printf("Error al cerrar la base de datos: %v", err)
	}
}
