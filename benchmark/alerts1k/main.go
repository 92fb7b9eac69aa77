package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	alertsGrpc "liyu1981.xyz/trade-alerts/pkg/grpc"
)

var maxUsers int = 1000
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var symbols = []string{"EURUSD", "GBPUSD", "USDJPY", "AAPL", "MSFT", "BTCUSD"}
var directions = []string{"", "buy", "sell"}

var grpcClient *alertsGrpc.AlertServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func main() {
	userIDs := make([]string, maxUsers)
	for i := range maxUsers {
		userIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v user IDs\n", maxUsers)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = alertsGrpc.NewAlertServiceClient(conn)

	fmt.Printf("gRPC server verified and connected\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxUsers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			insertAlert(userIDs[i])
			fmt.Printf("\rinserted alert for user %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted alerts for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers)/usedTime.Seconds(),
	)

	startTime = time.Now()
	triggered, err := grpcClient.RunPass(context.Background(), &emptypb.Empty{})
	usedTime = time.Since(startTime)
	if err != nil {
		log.Fatalf("pass failed after %v seconds: %v", usedTime.Seconds(), err)
	}

	fmt.Printf(
		"ran one pass over %v alerts: used time=%v seconds, triggered=%v\n",
		maxUsers, usedTime.Seconds(), len(triggered.GetValues()),
	)
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func pick(values []string) string {
	rndMu.Lock()
	defer rndMu.Unlock()
	return values[rnd.Intn(len(values))]
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	defer rndMu.Unlock()
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func insertAlert(userID string) {
	symbol := pick(symbols)
	direction := pick(directions)
	level := rndFloat64(0.5, 200.0, 4)

	if flipCoin() {
		payload := map[string]any{
			"symbol":    symbol,
			"level":     level,
			"direction": direction,
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/users/%s/alerts", httpHostPort, userID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			panic(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("\nresponse status code != 201: %v\n", resp.Status)
		}
		return
	}

	req, err := structpb.NewStruct(map[string]any{
		"user_id":   userID,
		"symbol":    symbol,
		"level":     level,
		"direction": direction,
	})
	if err != nil {
		panic(err)
	}
	if _, err := grpcClient.AddAlert(context.Background(), req); err != nil {
		fmt.Printf("\nerror: %v\n", err)
	}
}
