package main

import (
	"flag"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ctessum/aqmeter"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

type readingFlags []string

func (f *readingFlags) String() string { return strings.Join(*f, ",") }

func (f *readingFlags) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var readings readingFlags
	flag.Var(&readings, "r", "pollutant reading in name=concentration form, μg/m³ (repeatable)")
	gaugeFile := flag.String("gauge", "", "write a PNG gauge of the overall AQI to this file")
	addr := flag.String("addr", "", "serve gauges and reports over HTTP on this address")
	cacheSize := flag.Int("cachesize", 64, "number of rendered gauges to hold in memory when serving")
	flag.Parse()

	if len(readings) == 0 {
		readings = readingFlags{"PM2.5=35.0", "PM10=80", "CO=0.7"}
	}

	concs, err := aqmeter.ParseConcentrations(readings)
	if err != nil {
		logger.Fatal(err)
	}

	if err := aqmeter.WriteReport(os.Stdout, concs); err != nil {
		logger.Fatal(err)
	}

	if *gaugeFile != "" {
		overall, ok := aqmeter.OverallIndex(aqmeter.ComputeForPollutants(concs))
		if !ok {
			logger.Fatal("no supported pollutant readings to render a gauge for")
		}
		png, err := aqmeter.Gauge(overall)
		if err != nil {
			logger.Fatal(err)
		}
		if err := ioutil.WriteFile(*gaugeFile, png, 0644); err != nil {
			logger.Fatal(err)
		}
		logger.Infof("wrote gauge for AQI %d to %s", overall, *gaugeFile)
	}

	if *addr != "" {
		srv := &http.Server{
			Addr:    *addr,
			Handler: aqmeter.NewGaugeServer(*cacheSize),
			// Some security settings
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		}
		logger.Info("Serving on http://" + *addr)
		logger.Fatal(srv.ListenAndServe())
	}
}
