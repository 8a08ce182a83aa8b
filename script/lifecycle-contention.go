package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// createSIPPayload is the body for POST /user/:userId/transactions/sip
type createSIPPayload struct {
	FundID       uint64 `json:"fundId"`
	Amount       string `json:"amount"`
	Frequency    string `json:"frequency"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	DeductionDay int    `json:"deductionDay"`
}

type createdTransaction struct {
	ID string `json:"id"`
}

// target is one SIP that every worker hammers
type target struct {
	UserID        int
	TransactionID string
}

// operation is a lifecycle PATCH endpoint under /transactions/:id
type operation struct {
	Name string
	Path string
}

// result holds the outcome of a single request
type result struct {
	Operation    string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// stats aggregates results per operation and status code
type stats struct {
	mu            sync.Mutex
	total         int
	transportErrs int
	byOperation   map[string]map[int]int
	responseTimes []time.Duration
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of lifecycle requests to make")
	userIDsStr := flag.String("u", "1,2,3", "Comma-separated list of user IDs, one SIP is created per user")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	fundID := flag.Uint64("fund", 1, "Fund ID for the created SIPs")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	var userIDs []int
	for _, idStr := range strings.Split(*userIDsStr, ",") {
		var id int
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []int{1}
	}

	client := &http.Client{Timeout: 10 * time.Second}

	targets := make([]target, 0, len(userIDs))
	for _, userID := range userIDs {
		id, err := createSIP(client, *baseURL, userID, *fundID)
		if err != nil {
			fmt.Printf("Skipping user %d: %v\n", userID, err)
			continue
		}
		targets = append(targets, target{UserID: userID, TransactionID: id})
	}
	if len(targets) == 0 {
		fmt.Println("No SIPs could be created, aborting")
		return
	}

	operations := []operation{
		{"pause", "pause"},
		{"resume", "resume"},
		{"advance", "deduction"},
	}

	fmt.Printf("Contending on %d SIPs with %d goroutines, %d requests\n", len(targets), *concurrency, *totalRequests)

	s := &stats{byOperation: make(map[string]map[int]int)}
	results := make(chan result, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, targets, operations, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		for r := range results {
			s.record(r)
		}
		close(collected)
	}()

	start := time.Now()
	wg.Wait()
	close(results)
	<-collected

	s.print(time.Since(start))
}

func createSIP(client *http.Client, baseURL string, userID int, fundID uint64) (string, error) {
	now := time.Now().UTC()
	body, err := json.Marshal(createSIPPayload{
		FundID:       fundID,
		Amount:       "5000",
		Frequency:    "MONTHLY",
		StartDate:    now.Format("2006-01-02"),
		EndDate:      now.AddDate(5, 0, 0).Format("2006-01-02"),
		DeductionDay: 15,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(fmt.Sprintf("%s/user/%d/transactions/sip", baseURL, userID), "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("create SIP returned HTTP %d", resp.StatusCode)
	}

	var created createdTransaction
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	return created.ID, nil
}

func worker(client *http.Client, baseURL string, delayMs int, targets []target,
	operations []operation, jobs <-chan int, results chan<- result) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		t := targets[rand.Intn(len(targets))]
		op := operations[rand.Intn(len(operations))]
		url := fmt.Sprintf("%s/user/%d/transactions/%s/%s", baseURL, t.UserID, t.TransactionID, op.Path)

		req, err := http.NewRequest(http.MethodPatch, url, nil)
		if err != nil {
			results <- result{Operation: op.Name, Err: err}
			continue
		}

		start := time.Now()
		resp, err := client.Do(req)
		r := result{Operation: op.Name, ResponseTime: time.Since(start), Err: err}
		if err == nil {
			r.StatusCode = resp.StatusCode
			resp.Body.Close()
		}
		results <- r
	}
}

func (s *stats) record(r result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	if r.Err != nil {
		s.transportErrs++
		return
	}
	if s.byOperation[r.Operation] == nil {
		s.byOperation[r.Operation] = make(map[int]int)
	}
	s.byOperation[r.Operation][r.StatusCode]++
	s.responseTimes = append(s.responseTimes, r.ResponseTime)
}

func (s *stats) print(elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Println("\n================= CONTENTION RESULTS =================")
	fmt.Printf("Requests:          %d in %.2fs (%.1f req/s)\n", s.total, elapsed.Seconds(), float64(s.total)/elapsed.Seconds())
	fmt.Printf("Transport errors:  %d\n", s.transportErrs)

	if len(s.responseTimes) > 0 {
		sorted := append([]time.Duration(nil), s.responseTimes...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		fmt.Printf("P50 / P95 / P99:   %v / %v / %v\n",
			sorted[len(sorted)*50/100], sorted[len(sorted)*95/100], sorted[len(sorted)*99/100])
	}

	// 200 applied, 422 rejected by the state machine, 409 retries exhausted on a lost race.
	var conflicts int
	fmt.Println("\n----------------- BY OPERATION -----------------")
	for op, codes := range s.byOperation {
		fmt.Printf("%-8s 200=%d 422=%d 409=%d other=%d\n", op,
			codes[http.StatusOK], codes[http.StatusUnprocessableEntity], codes[http.StatusConflict],
			sumOther(codes))
		conflicts += codes[http.StatusConflict]
	}

	fmt.Println("\n================= CONCLUSION =================")
	if conflicts == 0 {
		fmt.Println("✅ Every lost race was absorbed by the conflict retry policy")
	} else {
		fmt.Printf("⚠️ %d requests exhausted their conflict retries\n", conflicts)
	}
}

func sumOther(codes map[int]int) int {
	n := 0
	for code, count := range codes {
		switch code {
		case http.StatusOK, http.StatusUnprocessableEntity, http.StatusConflict:
		default:
			n += count
		}
	}
	return n
}
