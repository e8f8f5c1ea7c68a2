package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "Kelvin/internal/auth"
	chiller "Kelvin/internal/calc/chiller"
	copcurve "Kelvin/internal/calc/copcurve"
	flow "Kelvin/internal/calc/flow"
	partload "Kelvin/internal/calc/partload"
	plant "Kelvin/internal/calc/plant"
	batch "Kelvin/internal/calc/premium/batch"
	importer "Kelvin/internal/calc/premium/importer"
	optimize "Kelvin/internal/calc/premium/optimize"
	savings "Kelvin/internal/calc/premium/savings"
	pump "Kelvin/internal/calc/pump"
	tower "Kelvin/internal/calc/tower"
	history "Kelvin/internal/history"
	plot "Kelvin/internal/plot"
	repo "Kelvin/internal/repo"
	report "Kelvin/internal/report"
	weather "Kelvin/internal/weather"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresStore(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}
	historyH := &history.Handler{Repo: store}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	chillerH := &chiller.Handler{}
	pumpH := &pump.Handler{}
	towerH := &tower.Handler{}
	partloadH := &partload.Handler{}
	flowH := &flow.Handler{}
	copcurveH := &copcurve.Handler{}
	plantH := &plant.Handler{}
	reportH := &report.Handler{}
	plotH := &plot.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	optimizeH := &optimize.Handler{}
	savingsH := &savings.Handler{}
	weatherH := &weather.Handler{Client: weather.NewClient()}

	secureApi.HandleFunc("/tools/chiller/calc", chillerH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/pump/calc", pumpH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/tower/calc", towerH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/partload/calc", partloadH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/flow/calc", flowH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/copcurve/calc", copcurveH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/plant/evaluate", plantH.Evaluate).Methods("POST")

	secureApi.HandleFunc("/tools/report/csv", reportH.CSV).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.PDF).Methods("POST")
	secureApi.HandleFunc("/tools/report/xlsx", reportH.XLSX).Methods("POST")
	secureApi.HandleFunc("/tools/chart/cop-load", plotH.COPLoad).Methods("POST")

	secureApi.HandleFunc("/tools/tower/wetbulb", weatherH.Ambient).Methods("GET")

	secureApi.HandleFunc("/tools/batch/chiller", batchH.Chiller).Methods("POST")
	secureApi.HandleFunc("/tools/import/chiller", importerH.Chiller).Methods("POST")
	secureApi.HandleFunc("/tools/optimize/deltat", optimizeH.DeltaT).Methods("POST")
	secureApi.HandleFunc("/tools/savings/estimate", savingsH.Estimate).Methods("POST")

	secureApi.HandleFunc("/evaluations", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/evaluations", historyH.List).Methods("GET")
	secureApi.HandleFunc("/evaluations/{id:[0-9]+}", historyH.Get).Methods("GET")
	secureApi.HandleFunc("/evaluations/{id:[0-9]+}", historyH.Delete).Methods("DELETE")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, reading configuration from environment")
	}

	db := auth.InitDB()
	defer db.Close()

	if err := repo.NewPostgresStore(db).Init(ctx); err != nil {
		log.Fatalf("Schema init error: %v", err)
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	mux := mux.NewRouter()
	log.Println("Starting server on " + addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
