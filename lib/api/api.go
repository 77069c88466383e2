package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fosdem/glhello/lib/api/docs"
	"github.com/fosdem/glhello/lib/config"
	"github.com/fosdem/glhello/lib/log"
	"github.com/fosdem/glhello/lib/metrics"
	"github.com/fosdem/glhello/lib/stats"
)

// Controller is the part of the running program the API can act on.
type Controller interface {
	RequestClose(reason string)
}

//go:generate go tool swag init --dir ../../ --generalInfo cmd/glhello/main.go --output docs --outputTypes go

type Api struct {
	srv  http.Server
	mux  *http.ServeMux
	cfg  *config.ApiCfg
	full *config.Config
	ctl  Controller
	log  *slog.Logger
	done chan struct{}

	Stats *stats.Stats

	wsClients   map[*websocket.Conn]bool
	wsClientsMu sync.Mutex
}

func New(full *config.Config, ctl Controller, st *stats.Stats) *Api {
	a := &Api{}
	a.cfg = full.Api
	a.full = full
	a.ctl = ctl
	a.mux = http.NewServeMux()
	a.srv.Addr = a.cfg.Bind
	a.srv.Handler = a.mux
	a.log = log.Module("api")
	a.done = make(chan struct{})
	a.wsClients = make(map[*websocket.Conn]bool)
	a.Stats = st
	a.routes()
	return a
}

func (a *Api) routes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/close", a.handleClose)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("GET /api/config", a.handleConfig)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
}

// Handler exposes the routes without a listening server.
func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	err := a.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server and every websocket writer.
func (a *Api) Shutdown(ctx context.Context) error {
	close(a.done)
	return a.srv.Shutdown(ctx)
}

// @Summary	Close the window and end the program
// @Router		/api/close [post]
// @Tags		base
// @Success	200
func (a *Api) handleClose(w http.ResponseWriter, _ *http.Request) {
	a.ctl.RequestClose("shutting down as per api request")
	a.writeOK(w)
}

// @Summary	Get frame and shader statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	Get the running configuration
// @Router		/api/config [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	config.Config
func (a *Api) handleConfig(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.full)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

func (a *Api) writeOK(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log.Warn(fmt.Sprintf("could not write response: %s", err))
	}
}

// ServeInBackground starts the API when cfg has one configured, and
// returns nil otherwise.
func ServeInBackground(cfg *config.Config, ctl Controller, st *stats.Stats) *Api {
	if cfg.Api == nil {
		return nil
	}
	theApi := New(cfg, ctl, st)

	theApi.log.Info("starting web server", "bind", cfg.Api.Bind)
	go func() {
		err := theApi.Serve()
		if err != nil {
			theApi.log.Error(fmt.Sprintf("could not start web server: %s", err))
		}
	}()
	return theApi
}
