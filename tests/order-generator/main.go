package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Order struct {
	Product  string `json:"product"`
	FromName string `json:"from_name"`
	Quantity any    `json:"quantity"`
	Address  string `json:"address"`
	Shipping string `json:"shipping"`
}

var (
	products = []string{
		"Vintage Silver-Grey Browline",
		"Silver Metal Square",
		"Matte Black Aviator",
		"The Sentinel Bifocal",
		"The Aviator Classic",
	}
	shippingMethods = []string{"Flat Rate", "Ground", "Expedited"}
	names           = []string{"Jane Doe", "John Smith", "Ann Lee", "Bob Stone"}
)

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func pick(s []string) string {
	return s[rand.Intn(len(s))]
}

// generateRandomOrder returns a valid order most of the time. Every tenth
// order is broken on purpose so the DLQ gets some traffic too.
func generateRandomOrder() Order {
	order := Order{
		Product:  pick(products),
		FromName: pick(names),
		Quantity: rand.Intn(5) + 1,
		Address:  "Street " + randomString(6),
		Shipping: pick(shippingMethods),
	}

	if rand.Intn(10) == 0 {
		switch rand.Intn(3) {
		case 0:
			order.Product = "Monocle"
		case 1:
			order.Quantity = "two"
		default:
			order.FromName = strings.Repeat("x", 100)
		}
	}
	return order
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma-separated kafka brokers")
	topic := flag.String("topic", "orders", "intake topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between orders")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(randomString(8)), Value: data}); err != nil {
				log.Println("failed to write order:", err)
				continue
			}
			log.Println("order generated", order.FromName, order.Product)
		case <-ctx.Done():
			return
		}
	}
}
