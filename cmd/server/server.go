package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortio.org/log"
	"github.com/XJIeI5/rpncalc/internal/storage"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	hostPtr := flag.String("host", "http://localhost", "host of server")
	portPtr := flag.Int("port", 8080, "port of server")
	dbPtr := flag.String("db", "store.db", "path of the sqlite database")
	keyPtr := flag.String("key", "", "key signing the bearer tokens (required)")
	costPtr := flag.Int("cost", 14, "bcrypt cost of stored passwords")
	flag.Parse()

	if *keyPtr == "" {
		log.Fatalf("-key is required")
	}

	db, err := sql.Open("sqlite3", *dbPtr)
	if err != nil {
		log.Fatalf("open %s: %v", *dbPtr, err)
	}
	defer db.Close()
	if err := db.PingContext(context.TODO()); err != nil {
		log.Fatalf("ping %s: %v", *dbPtr, err)
	}
	if err := storage.CreateTables(context.TODO(), db); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	s := storage.GetServer(*hostPtr, *portPtr, db, storage.Config{Key: []byte(*keyPtr), Cost: *costPtr})
	go func() {
		log.Infof("run storage server at %s:%d", *hostPtr, *portPtr)
		if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	var stopChan = make(chan os.Signal, 2)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stopChan // wait for SIGINT
	log.Infof("stop storage server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Errf("shutdown: %v", err)
	}
}
