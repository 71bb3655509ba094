package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/config"
	appHTTP "github.com/DanielMelloFarias/controle-acesso-dashboard/internal/handler/http"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/pkg/metrics"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/pkg/recordsapi"
	"github.com/DanielMelloFarias/controle-acesso-dashboard/internal/repository/memory"
	dashboardService "github.com/DanielMelloFarias/controle-acesso-dashboard/internal/service/dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "controle-acesso-dashboard"),
	)

	metricsManager := metrics.NewDefaultManager()
	recordsClient := recordsapi.NewClient(cfg.Records, logger, metricsManager)
	recordStore := memory.NewRecordStore()

	dashboardSvc := dashboardService.NewDashboardService(recordsClient, recordStore, metricsManager, logger)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(cfg, dashboardHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
