package storage

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fortio.org/log"
	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 30 * 24 * time.Hour

type registerUser struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (s *storage) handleRegister(w http.ResponseWriter, r *http.Request) {
	register := registerUser{}
	if !decodeBody(w, r, &register) {
		return
	}
	if register.Login == "" || register.Password == "" {
		http.Error(w, "login and password are required", http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(register.Password), s.cost)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id, err := storeUser(r.Context(), s.db, register.Login, hashedPassword)
	if errors.Is(err, errorLoginTaken) {
		log.Warnf("register %q: %v", register.Login, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errf("register %q: %v", register.Login, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Infof("registered user %d (%s)", id, register.Login)
	w.Write([]byte(strconv.FormatInt(id, 10)))
}

func (s *storage) handleLogin(w http.ResponseWriter, r *http.Request) {
	register := registerUser{}
	if !decodeBody(w, r, &register) {
		return
	}

	id, hashedPassword, err := getUser(r.Context(), s.db, register.Login)
	if errors.Is(err, errorUnknownUser) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errf("login %q: %v", register.Login, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(register.Password)); err != nil {
		log.Warnf("login %q: incorrect password", register.Login)
		http.Error(w, "incorrect password", http.StatusBadRequest)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  strconv.Itoa(id),
		"nbf": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
		"iat": now.Unix(),
	})
	tokenString, err := token.SignedString(s.key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(tokenString)
}

// authorized resolves the caller from the Authorization header before
// calling next.
func (s *storage) authorized(next func(w http.ResponseWriter, r *http.Request, userId int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bearerToken := r.Header.Get("Authorization")
		if bearerToken == "" {
			http.Error(w, `no header "Authorization"`, http.StatusUnauthorized)
			return
		}
		userId, err := s.getUserId(bearerToken)
		if err != nil {
			log.Warnf("%s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next(w, r, userId)
	}
}

// decodeBody reads a JSON request body into v. It answers the request and
// returns false when that is not possible.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if t := r.Header.Get("Content-Type"); t != "application/json" {
		http.Error(w, "expected application/json", http.StatusBadRequest)
		return false
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
