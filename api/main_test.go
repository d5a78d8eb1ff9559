package api

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Drolfothesgnir/whocolor/db"
	"github.com/Drolfothesgnir/whocolor/tmpstore"
	"github.com/Drolfothesgnir/whocolor/util"
	"github.com/Drolfothesgnir/whocolor/whocolor"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Configure the validator to use json tags for field names in errors
	if err := RegisterValidators(); err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	HTTPServerAddress: "localhost:0",
	AllowedOrigins:    []string{"http://localhost:8080"},
	JobTimeout:        time.Minute,
	CacheTTL:          time.Hour,
	PendingTTL:        time.Minute,
	FailureTTL:        time.Minute,
}

// annotatorFunc adapts a function to the Annotator interface.
type annotatorFunc func(ctx context.Context, req whocolor.Request) (*whocolor.Result, error)

func (f annotatorFunc) Handle(ctx context.Context, req whocolor.Request) (*whocolor.Result, error) {
	return f(ctx, req)
}

func newTestService(
	t *testing.T,
	store db.Store,
	cache tmpstore.Store,
	annotator Annotator,
) *Service {

	service, err := NewService(testConfig, store, cache, annotator)
	require.NoError(t, err)
	return service
}

// waitJobs blocks until the background jobs of the service are done.
func waitJobs(t *testing.T, service *Service) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, service.Shutdown(ctx))
}
