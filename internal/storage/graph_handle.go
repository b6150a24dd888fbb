package storage

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"fortio.org/log"
	"github.com/XJIeI5/rpncalc/internal/graph"
)

const (
	defaultWidth = 320
	defaultScale = 50
)

// viewportFromQuery reads width, origin_x, origin_y and scale. origin_x
// defaults to the middle of the surface.
func viewportFromQuery(q url.Values) (graph.Viewport, error) {
	v := graph.Viewport{Width: defaultWidth, Scale: defaultScale}
	if w := q.Get("width"); w != "" {
		width, err := strconv.Atoi(w)
		if err != nil {
			return v, fmt.Errorf("width: %w", err)
		}
		v.Width = width
	}
	v.OriginX = float64(v.Width) / 2

	for name, dst := range map[string]*float64{
		"origin_x": &v.OriginX,
		"origin_y": &v.OriginY,
		"scale":    &v.Scale,
	} {
		text := q.Get(name)
		if text == "" {
			continue
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return v, fmt.Errorf("%s: %w", name, err)
		}
		*dst = f
	}
	return v, v.Validate()
}

func (s *storage) handleGraph(w http.ResponseWriter, r *http.Request, userId int) {
	v, err := viewportFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.session(r.Context(), userId)
	if err != nil {
		log.Errf("session of user %d: %v", userId, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sess.mu.Lock()
	segments, err := graph.Sample(sess.brain, v)
	sess.mu.Unlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, struct {
		Viewport graph.Viewport  `json:"viewport"`
		Segments []graph.Segment `json:"segments"`
	}{Viewport: v, Segments: segments})
}
