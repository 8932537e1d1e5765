package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rickgao/stockfighter-data/internal/api"
)

func main() {
	// The test venue accepts any key; pass one via env for real venues.
	client := api.NewClient(
		"https://api.stockfighter.io/ob/api",
		os.Getenv("STARFIGHTER_API_KEY"),
		api.WithTimeout(30*time.Second),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Test 1: API Heartbeat
	fmt.Println("=== Testing Heartbeat ===")
	if err := client.Heartbeat(ctx); err != nil {
		log.Fatalf("Heartbeat failed: %v", err)
	}
	fmt.Println("API is up")

	// Test 2: Venues
	fmt.Println("\n=== Testing Venues ===")
	venues, err := client.Venues(ctx)
	if err != nil {
		log.Fatalf("Venues failed: %v", err)
	}
	fmt.Printf("Fetched %d venues\n", len(venues))
	for i, v := range venues {
		fmt.Printf("  %d. %s - %s (open: %v)\n", i+1, v.Venue, v.Name, v.IsOpen)
	}

	// Test 3: Venue heartbeat + stocks on the test venue
	venue := "TESTEX"
	fmt.Printf("\n=== Testing VenueHeartbeat (%s) ===\n", venue)
	if err := client.VenueHeartbeat(ctx, venue); err != nil {
		log.Fatalf("VenueHeartbeat failed: %v", err)
	}
	fmt.Printf("%s is up\n", venue)

	fmt.Printf("\n=== Testing VenueStocks (%s) ===\n", venue)
	stocks, err := client.VenueStocks(ctx, venue)
	if err != nil {
		log.Fatalf("VenueStocks failed: %v", err)
	}
	fmt.Printf("Fetched %d stocks\n", len(stocks))
	for i, s := range stocks {
		fmt.Printf("  %d. %s - %s\n", i+1, s.Symbol, s.Name)
	}

	// Test 4: Orderbook + quote for the first stock
	if len(stocks) > 0 {
		symbol := stocks[0].Symbol

		fmt.Printf("\n=== Testing StockOrderbook (%s/%s) ===\n", venue, symbol)
		ob, err := client.StockOrderbook(ctx, venue, symbol)
		if err != nil {
			log.Fatalf("StockOrderbook failed: %v", err)
		}
		fmt.Printf("Bids: %d, Asks: %d, ts: %s\n", len(ob.Bids), len(ob.Asks), ob.Timestamp.Format(time.RFC3339))
		for i, b := range ob.Bids {
			if i >= 3 {
				break
			}
			fmt.Printf("  bid: price %d cents, qty %d\n", b.Price, b.Qty)
		}
		for i, a := range ob.Asks {
			if i >= 3 {
				break
			}
			fmt.Printf("  ask: price %d cents, qty %d\n", a.Price, a.Qty)
		}

		fmt.Printf("\n=== Testing StockQuote (%s/%s) ===\n", venue, symbol)
		quote, err := client.StockQuote(ctx, venue, symbol)
		if err != nil {
			log.Fatalf("StockQuote failed: %v", err)
		}
		fmt.Printf("Bid: %d x %d, Ask: %d x %d, Last: %d\n",
			quote.Bid, quote.BidSize, quote.Ask, quote.AskSize, quote.Last)
	}

	fmt.Println("\n=== All API tests passed! ===")
}
