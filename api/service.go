package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Drolfothesgnir/whocolor/db"
	"github.com/Drolfothesgnir/whocolor/tmpstore"
	"github.com/Drolfothesgnir/whocolor/util"
	"github.com/Drolfothesgnir/whocolor/whocolor"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Annotator produces annotated revisions, implemented by [whocolor.Handler].
type Annotator interface {
	Handle(ctx context.Context, req whocolor.Request) (*whocolor.Result, error)
}

type Service struct {
	config    util.Config
	store     db.Store
	cache     tmpstore.Store
	annotator Annotator
	server    *http.Server
	router    *gin.Engine
	log       zerolog.Logger
	now       func() time.Time

	// background annotation jobs
	jobs       singleflight.Group
	jobsWG     sync.WaitGroup
	jobsCtx    context.Context
	cancelJobs context.CancelFunc
}

// Returns new service instance with provided config, stores and annotator.
func NewService(
	config util.Config,
	store db.Store,
	cache tmpstore.Store,
	annotator Annotator,
) (*Service, error) {

	jobsCtx, cancel := context.WithCancel(context.Background())

	service := &Service{
		config:     config,
		store:      store,
		cache:      cache,
		annotator:  annotator,
		log:        log.With().Str("component", "api").Logger(),
		now:        time.Now,
		jobsCtx:    jobsCtx,
		cancelJobs: cancel,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you'll spend writing the response, annotated pages can be big
	server.WriteTimeout = 30 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

// Shutdown stops the HTTP server and waits for the running jobs.
// Jobs still running when ctx is done are cancelled.
func (service *Service) Shutdown(ctx context.Context) error {
	err := service.server.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		service.jobsWG.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		service.log.Warn().Msg("cancelling unfinished annotation jobs")
		service.cancelJobs()
		<-done
	}

	service.cancelJobs()

	return err
}
