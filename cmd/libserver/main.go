// Command libserver runs the classifier converter as a local HTTP
// service: upload a workbook, get the generated data file and report
// back.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/config"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/server"
	"github.com/uspsaclassifierops/uspsaclassifierops.github.io/internal/store"
)

var (
	port    = flag.Int("port", 0, "listen port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "development mode")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  USPSA Classifier Library Converter")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	var st *store.Store
	if cfg.Data.History {
		st, err = store.New(config.HistoryDBPath(cfg))
		if err != nil {
			log.Printf("conversion history unavailable: %v", err)
			st = nil
		} else {
			defer st.Close()
		}
	}

	srv := server.NewServer(cfg, st)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Listening on port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	fmt.Println("\nPress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
}
