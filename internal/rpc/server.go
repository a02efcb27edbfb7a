package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// Server answers authorization RPCs on the auth queue. It is run by the
// auth service process alongside the HTTP surface.
type Server struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	queue    string
	tokenSvc domain.TokenService
	roleSvc  domain.RoleService
}

func NewServer(url, queue string, tokenSvc domain.TokenService, roleSvc domain.RoleService) (*Server, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, false, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &Server{conn: conn, ch: ch, queue: queue, tokenSvc: tokenSvc, roleSvc: roleSvc}, nil
}

// Serve consumes the auth queue until ctx is cancelled. Each message is
// answered on its reply queue with the request's correlation id.
func (s *Server) Serve(ctx context.Context) error {
	deliveries, err := s.ch.ConsumeWithContext(ctx, s.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", s.queue, err)
	}

	for d := range deliveries {
		reply := s.Dispatch(ctx, d.Body)
		if d.ReplyTo != "" {
			body, _ := json.Marshal(reply)
			err := s.ch.PublishWithContext(ctx, "", d.ReplyTo, false, false, amqp.Publishing{
				ContentType:   "application/json",
				CorrelationId: d.CorrelationId,
				Body:          body,
			})
			if err != nil {
				log.Printf("rpc: reply publish failed: %v", err)
			}
		}
		_ = d.Ack(false)
	}
	return nil
}

// Dispatch decodes one envelope and runs the matching handler. It is
// exercised directly by tests, without a broker.
func (s *Server) Dispatch(ctx context.Context, body []byte) Reply {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Reply{Code: CodeInternal}
	}

	switch env.Pattern {
	case PatternAuthenticate:
		var req AuthenticateRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return Reply{Code: CodeInternal}
		}
		userID, err := s.tokenSvc.Validate(ctx, req.Token)
		if err != nil {
			return errorReply(err)
		}
		return dataReply(AuthenticateResponse{UserID: userID})

	case PatternValidateToken:
		var req ValidateTokenRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return Reply{Code: CodeInternal}
		}
		userID, err := s.tokenSvc.Validate(ctx, req.Token)
		if err != nil {
			return errorReply(err)
		}
		roles, err := s.roleSvc.GetRoles(ctx, userID)
		if err != nil {
			return errorReply(err)
		}
		return dataReply(ValidateTokenResponse{UserID: userID, Roles: roles})

	case PatternValidateRoles:
		var req ValidateRolesRequest
		if err := json.Unmarshal(env.Data, &req); err != nil {
			return Reply{Code: CodeInternal}
		}
		ok, err := s.roleSvc.HasAnyRole(ctx, req.UserID, req.RequiredRoles)
		if err != nil {
			return errorReply(err)
		}
		return dataReply(ValidateRolesResponse{HasAccess: ok})

	default:
		return Reply{Code: CodeInternal}
	}
}

func (s *Server) Close() error {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func dataReply(v any) Reply {
	b, err := json.Marshal(v)
	if err != nil {
		return Reply{Code: CodeInternal}
	}
	return Reply{Data: b}
}

func errorReply(err error) Reply {
	switch {
	case errors.Is(err, domain.ErrTokenInvalid):
		return Reply{Code: CodeInvalidToken}
	case errors.Is(err, domain.ErrUserNotFound):
		return Reply{Code: CodeUserNotFound}
	default:
		return Reply{Code: CodeInternal}
	}
}
