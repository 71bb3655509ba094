// recordsd is a mock records API for local development and demos. It
// generates a plausible population of employees with paired
// entrada/saida events over the trailing days and serves them in the
// same envelope the production API uses.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

var employeeNames = []string{
	"Ana Souza",
	"Bruno Lima",
	"Carla Mendes",
	"Diego Ferreira",
	"Eduarda Santos",
	"Felipe Costa",
	"Gabriela Rocha",
	"Henrique Alves",
	"Isabela Martins",
	"João Pereira",
	"Karina Oliveira",
	"Lucas Barbosa",
}

type registro struct {
	ID        string `json:"id"`
	PessoaID  int    `json:"pessoaId"`
	Pessoa    pessoa `json:"pessoa"`
	Timestamp string `json:"timestamp"`
	Tipo      string `json:"tipo"`
}

type pessoa struct {
	Nome   string `json:"nome"`
	Status string `json:"status"`
}

// generate produces days of paired entrada/saida events per employee:
// badge-in around 08:00, badge-out around 17:00, with jitter. A small
// share of exits is dropped to exercise the unmatched-entry handling
// downstream.
func generate(rng *rand.Rand, people, days int) []registro {
	var records []registro
	now := time.Now()

	for personID := 1; personID <= people; personID++ {
		name := employeeNames[(personID-1)%len(employeeNames)]
		status := "FORA"
		if rng.Intn(3) == 0 {
			status = "DENTRO"
		}

		for day := days - 1; day >= 0; day-- {
			date := now.AddDate(0, 0, -day)
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				continue
			}

			entry := time.Date(date.Year(), date.Month(), date.Day(),
				8, rng.Intn(45), rng.Intn(60), 0, time.Local)
			records = append(records, registro{
				ID:        uuid.NewString(),
				PessoaID:  personID,
				Pessoa:    pessoa{Nome: name, Status: status},
				Timestamp: entry.Format(time.RFC3339),
				Tipo:      "ENTRADA",
			})

			if rng.Intn(20) == 0 {
				continue // forgotten badge-out
			}
			exit := time.Date(date.Year(), date.Month(), date.Day(),
				17, rng.Intn(50), rng.Intn(60), 0, time.Local)
			records = append(records, registro{
				ID:        uuid.NewString(),
				PessoaID:  personID,
				Pessoa:    pessoa{Nome: name, Status: status},
				Timestamp: exit.Format(time.RFC3339),
				Tipo:      "SAIDA",
			})
		}
	}

	// The production API does not guarantee chronological order.
	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
	return records
}

func main() {
	var (
		port   = flag.Int("port", 4000, "port to listen on")
		token  = flag.String("token", "", "access token to require (empty disables the check)")
		people = flag.Int("people", 8, "number of employees to generate")
		days   = flag.Int("days", 14, "number of trailing days to cover")
		seed   = flag.Int64("seed", 0, "random seed (0 uses the current time)")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	records := generate(rng, *people, *days)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	logger.Info("generated mock records",
		slog.Int("events", len(records)),
		slog.Int("people", *people),
		slog.Int64("seed", *seed),
	)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/api/registros", func(w http.ResponseWriter, req *http.Request) {
		if *token != "" && req.URL.Query().Get("access_token") != *token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid access token"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": records})
	})

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("mock records API listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}
