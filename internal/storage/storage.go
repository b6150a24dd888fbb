// Package storage serves one calculator brain per user over HTTP and keeps
// every user's program in SQLite as its token list.
package storage

import (
	"database/sql"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"fortio.org/log"
	"github.com/XJIeI5/rpncalc/internal/brain"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

// Config holds what the server needs besides the database.
type Config struct {
	// Key signs and verifies bearer tokens.
	Key []byte
	// Cost is the bcrypt cost of stored passwords; zero means
	// bcrypt.DefaultCost.
	Cost int
}

type storage struct {
	router *mux.Router
	db     *sql.DB
	key    []byte
	cost   int

	sessions map[int]*session
	mu       sync.RWMutex
}

// session is a user's brain. The brain is not safe for concurrent use, so
// every request holds mu while it touches it.
type session struct {
	mu    sync.Mutex
	brain *brain.Brain
}

func newStorage(db *sql.DB, cfg Config) *storage {
	s := &storage{
		db:       db,
		key:      cfg.Key,
		cost:     cfg.Cost,
		sessions: make(map[int]*session),
	}
	if s.cost == 0 {
		s.cost = bcrypt.DefaultCost
	}

	r := mux.NewRouter()
	// user handle
	r.HandleFunc("/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")
	// program handle
	r.HandleFunc("/push", s.authorized(s.handlePush)).Methods("POST")
	r.HandleFunc("/operation", s.authorized(s.handleOperation)).Methods("POST")
	r.HandleFunc("/undo", s.authorized(s.handleUndo)).Methods("POST")
	r.HandleFunc("/variable", s.authorized(s.handleSetVariable)).Methods("POST")
	r.HandleFunc("/clear", s.authorized(s.handleClear)).Methods("POST")
	r.HandleFunc("/get_result", s.authorized(s.handleGetResult)).Methods("GET")
	r.HandleFunc("/get_program", s.authorized(s.handleGetProgram)).Methods("GET")
	r.HandleFunc("/set_program", s.authorized(s.handleSetProgram)).Methods("POST")
	// graph handle
	r.HandleFunc("/graph", s.authorized(s.handleGraph)).Methods("GET")

	s.router = r

	return s
}

func (s *storage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.LogVf("%s %s", r.Method, r.URL.Path)
	s.router.ServeHTTP(w, r)
}

// NewHandler returns the API handler backed by db. The tables must exist,
// see CreateTables.
func NewHandler(db *sql.DB, cfg Config) http.Handler {
	return newStorage(db, cfg)
}

func GetServer(addr string, port int, db *sql.DB, cfg Config) *http.Server {
	var _addr string
	if strings.Contains(addr, "localhost") || strings.Contains(addr, "127.0.0.1") {
		_addr = fmt.Sprintf(":%d", port)
	} else {
		_addr = fmt.Sprintf("%s:%d", strings.TrimPrefix(addr, "http://"), port)
	}
	return &http.Server{
		Addr:    _addr,
		Handler: newStorage(db, cfg),
	}
}

type state string

const (
	_         state = ""
	has_error state = "error"
	ok        state = "ok"
)

type brainState struct {
	State       state       `json:"state"`
	Result      interface{} `json:"result"`
	Description string      `json:"description"`
}

func stateOf(b *brain.Brain) brainState {
	st := brainState{Description: b.Description()}
	v, err := b.EvaluateReporting()
	switch {
	case err != nil:
		st.State, st.Result = has_error, err.Error()
	case math.IsInf(v, 0) || math.IsNaN(v):
		// not representable as a JSON number
		st.State, st.Result = ok, strconv.FormatFloat(v, 'g', -1, 64)
	default:
		st.State, st.Result = ok, v
	}
	return st
}
