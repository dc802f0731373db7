package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"learnhub/config"

	"github.com/go-resty/resty/v2"
)

// Fallback rate when the exchange API is unreachable.
const usdToINRFixedRate = 83.5

const rateCacheDuration = time.Hour

var (
	rateMu        sync.Mutex
	cachedRate    float64
	lastRateFetch time.Time
)

// USDToINRRate returns the current USD→INR conversion rate, cached for an
// hour. On any fetch failure the fixed fallback rate is used.
func USDToINRRate() float64 {
	rateMu.Lock()
	defer rateMu.Unlock()

	if cachedRate > 0 && time.Since(lastRateFetch) < rateCacheDuration {
		return cachedRate
	}

	rate, err := fetchUSDToINR()
	if err != nil {
		log.Printf("Failed to fetch exchange rates, using fixed rate: %v", err)
		rate = usdToINRFixedRate
	}

	cachedRate = rate
	lastRateFetch = time.Now()
	return cachedRate
}

func fetchUSDToINR() (float64, error) {
	client := resty.New().SetTimeout(5 * time.Second)
	resp, err := client.R().Get(config.AppConfig.CurrencyAPIURL)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("exchange rate API returned code %d", resp.StatusCode())
	}

	var ratesResp struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(resp.Body(), &ratesResp); err != nil {
		return 0, err
	}

	inr, ok := ratesResp.Rates["INR"]
	if !ok || inr <= 0 {
		return 0, errors.New("no INR rate in response")
	}
	return inr, nil
}
