package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:4131", "orders app base URL")
	maxID := flag.Int("max-id", 50, "highest order id expected to exist")
	flag.Parse()

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(*baseURL, *maxID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

// doRequest mixes API reads, tracking pages and the odd malformed id.
func doRequest(baseURL string, maxID int) {
	id := fmt.Sprint(rand.Intn(maxID) + 1)
	if rand.Intn(5) == 0 {
		id = "abc"
	}

	var url string
	switch rand.Intn(3) {
	case 0:
		url = baseURL + "/api/order/" + id
	case 1:
		url = baseURL + "/api/order/" + id + "/history"
	default:
		url = baseURL + "/tracking/" + id
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
