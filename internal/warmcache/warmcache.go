package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
)

// Warms the render cache of a running gauge server by requesting
// gauges across the index range.
func main() {
	addr := flag.String("addr", "http://localhost:10000", "base URL of the gauge server to warm")
	step := flag.Int("step", 10, "index step between warmed gauges")
	flag.Parse()

	c := make(chan query)
	var wg sync.WaitGroup
	const nprocs = 2
	wg.Add(nprocs)
	for i := 0; i < nprocs; i++ {
		go func() {
			runQuery(*addr, c, &wg)
		}()
	}

	var i int
	total := 500 / *step + 1
	for aqi := 0; aqi <= 500; aqi += *step {
		c <- query{
			aqi:   aqi,
			i:     i,
			total: total,
		}
		i++
	}
	close(c)
	wg.Wait()
}

type query struct {
	i, total int
	aqi      int
}

func runQuery(addr string, c chan query, wg *sync.WaitGroup) {
	for q := range c {
		log.Printf("%d/%d; AQI %d", q.i, q.total, q.aqi)
		bkf := backoff.NewConstantBackOff(30 * time.Second)
		check(backoff.RetryNotify(
			func() error {
				resp, err := http.Get(fmt.Sprintf("%s/gauge?aqi=%d", addr, q.aqi))
				if err != nil {
					return err
				}
				defer resp.Body.Close()
				if _, err := io.Copy(ioutil.Discard, resp.Body); err != nil {
					return err
				}
				if resp.StatusCode != http.StatusOK {
					return fmt.Errorf("warming AQI %d: %s", q.aqi, resp.Status)
				}
				return nil
			},
			bkf,
			func(err error, d time.Duration) {
				log.Printf("%v: retrying in %v", err, d)
			},
		))
	}
	wg.Done()
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
