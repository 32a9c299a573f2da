package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"
)

type betResponse struct {
	BetID     string  `json:"bet_id"`
	Amount    float64 `json:"amount"`
	WinAmount float64 `json:"win_amount"`
	Result    string  `json:"result"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

func main() {
	baseURL := getenv("BASE_URL", "http://localhost:8080")
	userID := getenv("USER_ID", "bot")
	interval := 500 * time.Millisecond

	client := &http.Client{Timeout: 5 * time.Second}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		bal, err := getBalance(client, baseURL, userID)
		if err != nil {
			log.Fatal(err)
		}
		if bal < 1 {
			log.Printf("user %s is broke (balance %.2f), stopping", userID, bal)
			return
		}
		stake := 1 + rnd.Float64()*bal/10
		resp, err := placeBet(client, baseURL, userID, stake, 1.5+rnd.Float64()*2)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("bet %s stake=%.2f result=%s win=%.2f", resp.BetID, stake, resp.Result, resp.WinAmount)
		time.Sleep(interval)
	}
}

func getBalance(client *http.Client, baseURL, userID string) (float64, error) {
	resp, err := client.Get(baseURL + "/balance/" + userID)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("balance status %d", resp.StatusCode)
	}
	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.Balance, nil
}

func placeBet(client *http.Client, baseURL, userID string, amount, multiplier float64) (*betResponse, error) {
	body, _ := json.Marshal(map[string]any{
		"user_id":    userID,
		"amount":     amount,
		"game_type":  "slots",
		"multiplier": multiplier,
	})
	resp, err := client.Post(baseURL+"/bet", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bet status %d", resp.StatusCode)
	}
	var out betResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
