package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fortio.org/log"
	"github.com/XJIeI5/rpncalc/internal/brain"
)

// session returns the brain of a user, restoring the stored program the
// first time the user is seen.
func (s *storage) session(ctx context.Context, userId int) (*session, error) {
	s.mu.RLock()
	sess, found := s.sessions[userId]
	s.mu.RUnlock()
	if found {
		return sess, nil
	}

	tokens, err := loadProgram(ctx, s.db, userId)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, found := s.sessions[userId]; found {
		return sess, nil
	}
	sess = &session{brain: brain.New()}
	sess.brain.ImportTokens(tokens)
	s.sessions[userId] = sess
	log.LogVf("session of user %d restored with %d operations", userId, len(tokens))
	return sess, nil
}

// withBrain runs f on the user's brain and answers with the resulting
// state. When persist is set the program is stored afterwards; if that
// fails the program is rolled back to what it was before f.
func (s *storage) withBrain(w http.ResponseWriter, r *http.Request, userId int, persist bool, f func(b *brain.Brain)) {
	sess, err := s.session(r.Context(), userId)
	if err != nil {
		log.Errf("session of user %d: %v", userId, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var snapshot []string
	if persist {
		snapshot = sess.brain.ExportTokens()
	}
	f(sess.brain)
	if persist {
		if err := storeProgram(r.Context(), s.db, userId, sess.brain.ExportTokens()); err != nil {
			// keep memory and database in step
			sess.brain.ImportTokens(snapshot)
			log.Errf("store program of user %d: %v", userId, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	writeJSON(w, stateOf(sess.brain))
}

func (s *storage) handlePush(w http.ResponseWriter, r *http.Request, userId int) {
	body := struct {
		Token string `json:"token"`
	}{}
	if !decodeBody(w, r, &body) {
		return
	}
	s.withBrain(w, r, userId, true, func(b *brain.Brain) { b.Push(body.Token) })
}

func (s *storage) handleOperation(w http.ResponseWriter, r *http.Request, userId int) {
	body := struct {
		Symbol string `json:"symbol"`
	}{}
	if !decodeBody(w, r, &body) {
		return
	}
	s.withBrain(w, r, userId, true, func(b *brain.Brain) { b.PerformOperation(body.Symbol) })
}

func (s *storage) handleUndo(w http.ResponseWriter, r *http.Request, userId int) {
	s.withBrain(w, r, userId, true, func(b *brain.Brain) { b.RemoveLastElement() })
}

func (s *storage) handleSetVariable(w http.ResponseWriter, r *http.Request, userId int) {
	body := struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}{}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == "" {
		http.Error(w, "variable name is required", http.StatusBadRequest)
		return
	}
	s.withBrain(w, r, userId, false, func(b *brain.Brain) { b.SetVariable(body.Name, body.Value) })
}

func (s *storage) handleClear(w http.ResponseWriter, r *http.Request, userId int) {
	body := struct {
		What string `json:"what"`
	}{}
	if !decodeBody(w, r, &body) {
		return
	}

	var f func(b *brain.Brain)
	switch body.What {
	case "program":
		f = (*brain.Brain).ClearProgram
	case "variables":
		f = (*brain.Brain).ClearVariables
	case "all", "":
		f = (*brain.Brain).Clear
	default:
		http.Error(w, fmt.Sprintf("cannot clear '%s'", body.What), http.StatusBadRequest)
		return
	}
	s.withBrain(w, r, userId, body.What != "variables", f)
}

func (s *storage) handleGetResult(w http.ResponseWriter, r *http.Request, userId int) {
	s.withBrain(w, r, userId, false, func(*brain.Brain) {})
}

func (s *storage) handleGetProgram(w http.ResponseWriter, r *http.Request, userId int) {
	sess, err := s.session(r.Context(), userId)
	if err != nil {
		log.Errf("session of user %d: %v", userId, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sess.mu.Lock()
	tokens := sess.brain.ExportTokens()
	sess.mu.Unlock()

	writeJSON(w, struct {
		Tokens []string `json:"tokens"`
	}{Tokens: tokens})
}

func (s *storage) handleSetProgram(w http.ResponseWriter, r *http.Request, userId int) {
	body := struct {
		Tokens []string `json:"tokens"`
	}{}
	if !decodeBody(w, r, &body) {
		return
	}
	s.withBrain(w, r, userId, true, func(b *brain.Brain) { b.ImportTokens(body.Tokens) })
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
