package ollama

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/polytrans/internal/config"
)

// retryWaitBase is the exponential backoff base between timeout retries:
// the wait before retry n is retryWaitBase^(n-1) seconds.
const retryWaitBase = 2

// chatCompleter is the slice of the go-openai client the Client needs.
// Tests substitute a scripted implementation.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client issues synchronous chat exchanges against the Ollama endpoint. It
// owns the retry policy and error classification; it keeps no state across
// calls apart from the circuit breaker counters.
type Client struct {
	api         chatCompleter
	breaker     *gobreaker.CircuitBreaker
	model       string
	timeout     time.Duration
	maxRetries  int
	temperature float32
	topP        float32
	maxTokens   int
	sleep       func(ctx context.Context, d time.Duration) error
	log         *zap.Logger
}

// NewClient builds a client for the configured Ollama instance. Ollama
// exposes an OpenAI-compatible API under /v1; the API key is ignored.
func NewClient(cfg *config.Config, log *zap.Logger) *Client {
	oc := openai.DefaultConfig("ollama")
	oc.BaseURL = cfg.BaseURL() + "/v1"

	return &Client{
		api:         openai.NewClientWithConfig(oc),
		breaker:     newBreaker(log),
		model:       cfg.Ollama.Model,
		timeout:     cfg.Ollama.Timeout(),
		maxRetries:  cfg.Ollama.MaxRetries,
		temperature: cfg.Translation.Temperature,
		topP:        cfg.Translation.TopP,
		maxTokens:   cfg.Translation.MaxTokens,
		sleep:       sleepContext,
		log:         log,
	}
}

func newBreaker(log *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "ollama",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("model endpoint circuit state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// sleepContext waits for d or until ctx is cancelled, so a caller can abort
// an in-progress retry sequence.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Complete sends the prompts to the model and returns the assistant message
// content. Timeouts are retried up to the configured number of attempts
// with exponential backoff; connection and HTTP failures are terminal
// immediately.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: c.temperature,
		TopP:        c.topP,
		MaxTokens:   c.maxTokens,
	}

	var lastErr *Error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoffDelay(attempt - 1)
			c.log.Info("retrying model call",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", c.maxRetries),
				zap.Duration("wait", wait))
			if err := c.sleep(ctx, wait); err != nil {
				return "", err
			}
		}

		content, err := c.call(ctx, req)
		if err == nil {
			return content, nil
		}

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			return "", err
		}
		if apiErr.Kind != KindTimeout {
			c.log.Error("model call failed", zap.String("kind", apiErr.Kind.String()), zap.Error(apiErr))
			return "", apiErr
		}
		lastErr = apiErr
		c.log.Warn("model call timed out",
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", c.maxRetries))
	}
	return "", lastErr
}

// call performs one exchange with a per-attempt timeout.
func (c *Client) call(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	v, err := c.breaker.Execute(func() (interface{}, error) {
		return c.api.CreateChatCompletion(callCtx, req)
	})
	if err != nil {
		return "", classify(err)
	}

	resp := v.(openai.ChatCompletionResponse)
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &Error{Kind: KindMalformed, Err: fmt.Errorf("response carries no message content")}
	}
	return resp.Choices[0].Message.Content, nil
}

// backoffDelay returns retryWaitBase^attempt seconds.
func backoffDelay(attempt int) time.Duration {
	d := time.Second
	for i := 0; i < attempt; i++ {
		d *= retryWaitBase
	}
	return d
}

// classify maps transport and API failures onto the client error taxonomy.
func classify(err error) *Error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &Error{Kind: KindConnection, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Error{Kind: KindHTTP, Status: apiErr.HTTPStatusCode, Body: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return &Error{Kind: KindHTTP, Status: reqErr.HTTPStatusCode, Body: fmt.Sprint(reqErr.Err), Err: err}
	}

	if isTimeout(err) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindConnection, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
