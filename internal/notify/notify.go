package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/daikoshop/adminapi/internal/config"
	"github.com/daikoshop/adminapi/pkg/clients"
	"go.uber.org/zap"
)

// HTTPClient is the outbound transport used to reach the chat platform.
type HTTPClient interface {
	Post(url string, headers http.Header, body io.Reader) (statusCode int, respBody []byte, err error)
}

type pushMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []pushMessage `json:"messages"`
}

// Service delivers customer notifications through the chat platform's push
// API. Delivery is queued and best effort: one attempt per call, failures are
// logged by the pool workers and never retried.
type Service struct {
	url        string
	token      string
	client     HTTPClient
	workerPool WorkerPoolI
}

// New builds the dispatcher. An empty channel token disables delivery
// entirely; Notify then drops messages silently.
func New(cfg *config.Config, client *clients.HTTPClient) *Service {
	if cfg.NotifyToken == "" {
		zap.L().Info("notification dispatch disabled: no channel token configured")
		return &Service{}
	}
	return &Service{
		url:        cfg.NotifyAPIURL,
		token:      cfg.NotifyToken,
		client:     client,
		workerPool: NewWorkerPool(4),
	}
}

// Notify queues a single delivery attempt for the customer. It returns an
// error only when the message cannot be queued; delivery failures surface in
// the worker log, never to the caller.
func (s *Service) Notify(ctx context.Context, customerID, message string) error {
	if s.workerPool == nil {
		return nil
	}
	return s.workerPool.AddTask(ctx, func() error {
		return s.send(customerID, message)
	})
}

func (s *Service) send(customerID, message string) error {
	payload, err := json.Marshal(pushRequest{
		To:       customerID,
		Messages: []pushMessage{{Type: "text", Text: message}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Bearer "+s.token)

	statusCode, respBody, err := s.client.Post(s.url, headers, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to push notification for customer %s: %w", customerID, err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("push API returned %d for customer %s: %s", statusCode, customerID, respBody)
	}

	zap.L().Debug("notification delivered", zap.String("customerID", customerID))
	return nil
}

// Close drains the delivery queue goroutines on shutdown.
func (s *Service) Close() {
	if s.workerPool != nil {
		s.workerPool.Close()
	}
}
