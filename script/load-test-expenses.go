package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
)

// account is a seeded user the load test signs in as
type account struct {
	Email    string
	Password string
	UserID   string
	Token    string
}

// requestResult contains metrics for a single request
type requestResult struct {
	Kind         string
	Success      bool
	ResponseTime time.Duration
	Err          error
}

// loadStats contains aggregated test statistics
type loadStats struct {
	mu            sync.Mutex
	total         int
	succeeded     int
	failed        int
	responseTimes []time.Duration
	kindCounts    map[string]int
	errorCounts   map[string]int
}

func (s *loadStats) add(r requestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.kindCounts[r.Kind]++
	s.responseTimes = append(s.responseTimes, r.ResponseTime)
	if r.Success {
		s.succeeded++
		return
	}
	s.failed++
	msg := "unknown"
	if r.Err != nil {
		msg = r.Err.Error()
	}
	s.errorCounts[msg]++
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	accountsFlag := flag.String("accounts", "alice@example.com:alice-password,bob@example.com:bob-password,carol@example.com:carol-password",
		"Comma-separated email:password pairs of existing users")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 50, "Delay between requests in milliseconds")
	balanceRatio := flag.Float64("balance-ratio", 0.3, "Share of requests that read balances instead of creating expenses")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	accounts, err := parseAccounts(*accountsFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for i := range accounts {
		if err := login(client, *baseURL, &accounts[i]); err != nil {
			fmt.Fprintf(os.Stderr, "login %s: %v\n", accounts[i].Email, err)
			os.Exit(1)
		}
	}
	if len(accounts) < 2 {
		fmt.Fprintln(os.Stderr, "at least two accounts are needed to split expenses")
		os.Exit(2)
	}

	fmt.Printf("Load testing %s with %d accounts\n", *baseURL, len(accounts))
	fmt.Printf("Concurrency: %d, requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	stats := &loadStats{
		kindCounts:  make(map[string]int),
		errorCounts: make(map[string]int),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				payer := accounts[rng.Intn(len(accounts))]
				if rng.Float64() < *balanceRatio {
					stats.add(getBalances(client, *baseURL, payer))
					continue
				}
				stats.add(createExpense(client, *baseURL, payer, accounts, rng))
			}
		}(time.Now().UnixNano() + int64(w))
	}
	wg.Wait()

	printResults(stats, time.Since(start))
}

func parseAccounts(raw string) ([]account, error) {
	var accounts []account
	for _, pair := range strings.Split(raw, ",") {
		email, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || email == "" || password == "" {
			return nil, fmt.Errorf("invalid account %q, expected email:password", pair)
		}
		accounts = append(accounts, account{Email: email, Password: password})
	}
	return accounts, nil
}

func login(client *http.Client, baseURL string, acc *account) error {
	body, err := json.Marshal(dto.LoginRequest{Email: acc.Email, Password: acc.Password})
	if err != nil {
		return err
	}
	resp, err := client.Post(baseURL+"/api/users/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var out dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	acc.UserID = out.User.UserID
	acc.Token = out.Token
	return nil
}

// createExpense records a personal expense split evenly between the payer and
// one random other account, with the cent remainder on the payer
func createExpense(client *http.Client, baseURL string, payer account, accounts []account, rng *rand.Rand) requestResult {
	other := accounts[rng.Intn(len(accounts))]
	for other.UserID == payer.UserID {
		other = accounts[rng.Intn(len(accounts))]
	}

	amount := decimal.New(int64(100+rng.Intn(9900)), -2)
	half := amount.Div(decimal.NewFromInt(2)).RoundDown(2)

	req := dto.CreateExpenseRequest{
		Amount:      amount,
		Description: "load test",
		ExpenseType: "personal",
		Participants: []dto.ParticipantRequest{
			{UserID: payer.UserID, Share: amount.Sub(half)},
			{UserID: other.UserID, Share: half},
		},
	}
	return send(client, http.MethodPost, baseURL+"/api/expenses", payer.Token, req, http.StatusCreated, "create_expense")
}

func getBalances(client *http.Client, baseURL string, acc account) requestResult {
	return send(client, http.MethodGet, baseURL+"/api/expenses/balances", acc.Token, nil, http.StatusOK, "get_balances")
}

func send(client *http.Client, method, url, token string, payload any, wantStatus int, kind string) requestResult {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return requestResult{Kind: kind, Err: err}
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return requestResult{Kind: kind, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	result := requestResult{Kind: kind, ResponseTime: time.Since(start)}
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		var apiErr dto.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			result.Err = fmt.Errorf("HTTP %d: %s", resp.StatusCode, apiErr.Message)
		} else {
			result.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		return result
	}
	result.Success = true
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *loadStats, elapsed time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	if stats.total == 0 {
		fmt.Println("No requests were made")
		return
	}

	sorted := append([]time.Duration(nil), stats.responseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.total)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.succeeded, float64(stats.succeeded)/float64(stats.total)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.failed, float64(stats.failed)/float64(stats.total)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.succeeded)/elapsed.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", sum/time.Duration(len(sorted)))
	fmt.Printf("Minimum Response:    %v\n", sorted[0])
	fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- REQUEST MIX -----------------")
	for kind, count := range stats.kindCounts {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", kind, count, float64(count)/float64(stats.total)*100)
	}

	if stats.failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.errorCounts {
			fmt.Printf("%-50s: %d\n", msg, count)
		}
	}
	fmt.Println("================================================")
}
