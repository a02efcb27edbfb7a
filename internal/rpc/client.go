package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// replyToQueue is RabbitMQ's pseudo-queue for direct reply-to RPC.
const replyToQueue = "amq.rabbitmq.reply-to"

// Client issues authorization RPCs against the auth queue. Calls are
// awaited synchronously with a bounded timeout; a timeout is terminal
// for that request, there is no retry.
type Client struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	queue   string
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]chan Reply
}

func NewClient(url, queue string, timeout time.Duration) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	c := &Client{
		conn:    conn,
		ch:      ch,
		queue:   queue,
		timeout: timeout,
		pending: make(map[string]chan Reply),
	}

	deliveries, err := ch.Consume(replyToQueue, "", true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("consume reply queue: %w", err)
	}
	go c.route(deliveries)

	return c, nil
}

func (c *Client) route(deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		var reply Reply
		if err := json.Unmarshal(d.Body, &reply); err != nil {
			reply = Reply{Code: CodeInternal}
		}
		c.mu.Lock()
		ch, ok := c.pending[d.CorrelationId]
		delete(c.pending, d.CorrelationId)
		c.mu.Unlock()
		if ok {
			ch <- reply
		}
	}
}

// Call publishes one envelope and waits for its correlated reply. The
// wait is bounded by the configured timeout (and by ctx); expiry maps
// to ErrUpstreamTimeout and the caller fails closed.
func (c *Client) Call(ctx context.Context, pattern string, req, resp any) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	body, err := json.Marshal(Envelope{Pattern: pattern, Data: data})
	if err != nil {
		return err
	}

	corrID := uuid.NewString()
	replyCh := make(chan Reply, 1)
	c.mu.Lock()
	c.pending[corrID] = replyCh
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, corrID)
		c.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err = c.ch.PublishWithContext(ctx, "", c.queue, false, false, amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: corrID,
		ReplyTo:       replyToQueue,
		Body:          body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", pattern, err)
	}

	select {
	case reply := <-replyCh:
		return decodeReply(reply, resp)
	case <-ctx.Done():
		return domain.ErrUpstreamTimeout
	}
}

func (c *Client) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func decodeReply(reply Reply, resp any) error {
	switch reply.Code {
	case "":
		return json.Unmarshal(reply.Data, resp)
	case CodeInvalidToken:
		return domain.ErrTokenInvalid
	case CodeUserNotFound:
		return domain.ErrUserNotFound
	default:
		return domain.ErrUnauthorized
	}
}

// AuthClient adapts Client to domain.AuthClient for guards running in a
// different process than the auth service.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) domain.AuthClient {
	return &AuthClient{client: client}
}

// Authenticate implements domain.AuthClient
func (a *AuthClient) Authenticate(ctx context.Context, accessToken string) (uint, error) {
	var resp AuthenticateResponse
	if err := a.client.Call(ctx, PatternAuthenticate, AuthenticateRequest{Token: accessToken}, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}

// ValidateToken implements domain.AuthClient
func (a *AuthClient) ValidateToken(ctx context.Context, accessToken string) (*domain.TokenIdentity, error) {
	var resp ValidateTokenResponse
	if err := a.client.Call(ctx, PatternValidateToken, ValidateTokenRequest{Token: accessToken}, &resp); err != nil {
		return nil, err
	}
	return &domain.TokenIdentity{UserID: resp.UserID, Roles: resp.Roles}, nil
}

// ValidateRoles implements domain.AuthClient
func (a *AuthClient) ValidateRoles(ctx context.Context, userID uint, requiredRoles []string) (bool, error) {
	var resp ValidateRolesResponse
	req := ValidateRolesRequest{UserID: userID, RequiredRoles: requiredRoles}
	if err := a.client.Call(ctx, PatternValidateRoles, req, &resp); err != nil {
		return false, err
	}
	return resp.HasAccess, nil
}

var _ domain.AuthClient = (*AuthClient)(nil)
