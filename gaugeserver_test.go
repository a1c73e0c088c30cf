package aqmeter

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
)

func TestParseGaugeRequest(t *testing.T) {
	u, err := url.Parse("https://example.com/gauge?aqi=99")
	if err != nil {
		t.Fatal(err)
	}
	gs, err := parseGaugeRequest(u)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(gs, &GaugeSpecification{Index: 99}) {
		t.Errorf("gauge spec: %+v", gs)
	}

	for _, bad := range []string{
		"https://example.com/gauge",
		"https://example.com/gauge?aqi=abc",
		"https://example.com/gauge?aqi=-1",
		"https://example.com/gauge?aqi=501",
	} {
		u, err := url.Parse(bad)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := parseGaugeRequest(u); err == nil {
			t.Errorf("%s should not parse", bad)
		}
	}
}

func TestGaugeServer_ServeHTTP(t *testing.T) {
	s := NewGaugeServer(1)

	t.Run("gauge", func(t *testing.T) {
		w := httptest.NewRecorder()
		r, err := http.NewRequest("GET", "https://example.com/gauge?aqi=99", nil)
		if err != nil {
			t.Fatal(err)
		}
		s.ServeHTTP(w, r)

		resp := w.Result()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status: %d", resp.StatusCode)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("content type: %s", ct)
		}
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := png.Decode(bytes.NewReader(body)); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("bad_request", func(t *testing.T) {
		w := httptest.NewRecorder()
		r, err := http.NewRequest("GET", "https://example.com/gauge?aqi=600", nil)
		if err != nil {
			t.Fatal(err)
		}
		s.ServeHTTP(w, r)
		if w.Result().StatusCode != 404 {
			t.Errorf("status: %d", w.Result().StatusCode)
		}
	})

	t.Run("report", func(t *testing.T) {
		w := httptest.NewRecorder()
		u := "https://example.com/report?p=PM2.5&c=35.0&p=PM10&c=80&p=CO&c=0.7"
		r, err := http.NewRequest("GET", u, nil)
		if err != nil {
			t.Fatal(err)
		}
		s.ServeHTTP(w, r)

		resp := w.Result()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status: %d", resp.StatusCode)
		}
		var got reportResponse
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatal(err)
		}
		pm25, pm10 := 99, 63
		want := reportResponse{
			Pollutants: map[string]*int{"PM2.5": &pm25, "PM10": &pm10, "CO": nil},
			Overall:    &pm25,
			Category:   "Moderate",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%+v != %+v", got, want)
		}
	})

	t.Run("bad_report", func(t *testing.T) {
		w := httptest.NewRecorder()
		r, err := http.NewRequest("GET", "https://example.com/report?p=PM2.5&c=abc", nil)
		if err != nil {
			t.Fatal(err)
		}
		s.ServeHTTP(w, r)
		if w.Result().StatusCode != 404 {
			t.Errorf("status: %d", w.Result().StatusCode)
		}
	})
}
