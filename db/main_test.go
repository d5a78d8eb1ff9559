package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/Drolfothesgnir/whocolor/util"
	"github.com/jackc/pgx/v5/pgxpool"
)

var testStore Store

func TestMain(m *testing.M) {
	config, err := util.LoadConfig("../")
	if err != nil {
		log.Fatal("Cannot read the config: ", err)
	}

	// database tests only run against a configured postgres
	if config.DBSource != "" && !testing.Short() {
		connPool, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal("Cannot connect to the database: ", err)
		}

		testStore = NewStore(connPool)
	}

	code := m.Run()
	if testStore != nil {
		testStore.Shutdown()
	}
	os.Exit(code)
}

func requireTestStore(t *testing.T) Store {
	t.Helper()
	if testStore == nil {
		t.Skip("DB_SOURCE is not set")
	}
	return testStore
}
