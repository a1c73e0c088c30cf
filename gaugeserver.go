package aqmeter

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/ctessum/requestcache"
)

// GaugeServer serves rendered AQI gauges and JSON reports over HTTP.
type GaugeServer struct {
	cache *requestcache.Cache
}

// NewGaugeServer creates a new gauge server,
// where cacheSize specifies the number of rendered gauges
// to hold in an in-memory cache.
func NewGaugeServer(cacheSize int) *GaugeServer {
	s := new(GaugeServer)
	s.cache = requestcache.NewCache(s.render, runtime.GOMAXPROCS(-1), requestcache.Deduplicate(), requestcache.Memory(cacheSize))
	return s
}

func (s *GaugeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/report") {
		s.serveReport(w, r)
		return
	}
	gs, err := parseGaugeRequest(r.URL)
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	data, err := s.Render(r.Context(), gs)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(data); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

// GaugeSpecification describes a gauge to be rendered.
type GaugeSpecification struct {
	Index int
}

// Key returns a unique identifier for the receiver.
func (gs *GaugeSpecification) Key() string {
	return fmt.Sprintf("gauge_%d", gs.Index)
}

// Render returns the PNG gauge associated with gs.
func (s *GaugeServer) Render(ctx context.Context, gs *GaugeSpecification) ([]byte, error) {
	resultI, err := s.cache.NewRequest(ctx, gs, gs.Key()).Result()
	if err != nil {
		return nil, err
	}
	return resultI.([]byte), nil
}

func (s *GaugeServer) render(ctx context.Context, r interface{}) (interface{}, error) {
	gs := r.(*GaugeSpecification)
	b, err := Gauge(gs.Index)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func queryString(u *url.URL, q url.Values, k string) (string, error) {
	v := q.Get(k)
	if v == "" {
		return "", fmt.Errorf("gauge request %s missing %s", u.Path, k)
	}
	return html.UnescapeString(v), nil
}

func queryInt(u *url.URL, q url.Values, k string) (int, error) {
	s, err := queryString(u, q, k)
	if err != nil {
		return -1, err
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return -1, fmt.Errorf("gauge request invalid value for %s: %s", k, s)
	}
	return int(i), nil
}

// parseGaugeRequest parses a request of the type xxx?aqi={index}.
func parseGaugeRequest(u *url.URL) (*GaugeSpecification, error) {
	q := u.Query()
	i, err := queryInt(u, q, "aqi")
	if err != nil {
		return nil, err
	}
	if i < 0 || i > 500 {
		return nil, fmt.Errorf("gauge request aqi %d outside [0, 500]", i)
	}
	return &GaugeSpecification{Index: i}, nil
}

type reportResponse struct {
	Pollutants map[string]*int `json:"pollutants"`
	Overall    *int            `json:"overall"`
	Category   string          `json:"category,omitempty"`
}

// parseReportRequest parses a request of the type
// xxx?p={pollutant}&c={concentration}, with the p and c parameters
// repeated in parallel for each reading.
func parseReportRequest(u *url.URL) (map[string]float64, error) {
	q := u.Query()
	ps, cs := q["p"], q["c"]
	if len(ps) == 0 || len(ps) != len(cs) {
		return nil, fmt.Errorf("report request %s needs matching p and c parameters", u.Path)
	}
	concs := make(map[string]float64, len(ps))
	for i, p := range ps {
		v, err := strconv.ParseFloat(cs[i], 64)
		if err != nil {
			return nil, fmt.Errorf("report request invalid concentration for %s: %s", p, cs[i])
		}
		concs[html.UnescapeString(p)] = v
	}
	return concs, nil
}

func (s *GaugeServer) serveReport(w http.ResponseWriter, r *http.Request) {
	concs, err := parseReportRequest(r.URL)
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	indices := ComputeForPollutants(concs)

	o := reportResponse{Pollutants: make(map[string]*int, len(indices))}
	for name, ix := range indices {
		if ix.Defined {
			v := ix.Value
			o.Pollutants[name] = &v
		} else {
			o.Pollutants[name] = nil
		}
	}
	if overall, ok := OverallIndex(indices); ok {
		o.Overall = &overall
		o.Category = CategoryForIndex(overall).String()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(o); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
