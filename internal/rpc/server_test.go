package rpc

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/mocks"
)

func createServerForTest(tokenSvc domain.TokenService, roleSvc domain.RoleService) *Server {
	return &Server{tokenSvc: tokenSvc, roleSvc: roleSvc}
}

func envelope(t *testing.T, pattern string, req any) []byte {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	body, err := json.Marshal(Envelope{Pattern: pattern, Data: data})
	if err != nil {
		t.Fatalf("failed to marshal envelope: %v", err)
	}
	return body
}

func TestServer_Dispatch_Authenticate(t *testing.T) {
	ctx := context.Background()

	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(ctx context.Context, accessToken string) (uint, error) {
		if accessToken == "good" {
			return 42, nil
		}
		return 0, domain.ErrTokenInvalid
	}
	srv := createServerForTest(tokenSvc, mocks.NewMockRoleService())

	t.Run("valid token", func(t *testing.T) {
		reply := srv.Dispatch(ctx, envelope(t, PatternAuthenticate, AuthenticateRequest{Token: "good"}))
		if reply.Code != "" {
			t.Fatalf("expected success, got code %q", reply.Code)
		}
		var resp AuthenticateResponse
		if err := json.Unmarshal(reply.Data, &resp); err != nil {
			t.Fatalf("failed to decode reply: %v", err)
		}
		if resp.UserID != 42 {
			t.Errorf("expected user 42, got %d", resp.UserID)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		reply := srv.Dispatch(ctx, envelope(t, PatternAuthenticate, AuthenticateRequest{Token: "bad"}))
		if reply.Code != CodeInvalidToken {
			t.Errorf("expected code %q, got %q", CodeInvalidToken, reply.Code)
		}
	})
}

func TestServer_Dispatch_ValidateToken(t *testing.T) {
	ctx := context.Background()

	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(ctx context.Context, accessToken string) (uint, error) {
		return 7, nil
	}
	roleSvc := mocks.NewMockRoleService()
	roleSvc.GetRolesFunc = func(ctx context.Context, userID uint) ([]string, error) {
		if userID != 7 {
			t.Errorf("expected roles lookup for user 7, got %d", userID)
		}
		return []string{domain.RoleMember}, nil
	}
	srv := createServerForTest(tokenSvc, roleSvc)

	reply := srv.Dispatch(ctx, envelope(t, PatternValidateToken, ValidateTokenRequest{Token: "good"}))
	if reply.Code != "" {
		t.Fatalf("expected success, got code %q", reply.Code)
	}
	var resp ValidateTokenResponse
	if err := json.Unmarshal(reply.Data, &resp); err != nil {
		t.Fatalf("failed to decode reply: %v", err)
	}
	if resp.UserID != 7 || len(resp.Roles) != 1 || resp.Roles[0] != domain.RoleMember {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestServer_Dispatch_ValidateToken_RolesFailure(t *testing.T) {
	ctx := context.Background()

	tokenSvc := mocks.NewMockTokenService()
	roleSvc := mocks.NewMockRoleService()
	roleSvc.GetRolesFunc = func(ctx context.Context, userID uint) ([]string, error) {
		return nil, domain.ErrUserNotFound
	}
	srv := createServerForTest(tokenSvc, roleSvc)

	reply := srv.Dispatch(ctx, envelope(t, PatternValidateToken, ValidateTokenRequest{Token: "orphaned"}))
	if reply.Code != CodeUserNotFound {
		t.Errorf("expected code %q, got %q", CodeUserNotFound, reply.Code)
	}
}

func TestServer_Dispatch_ValidateRoles(t *testing.T) {
	ctx := context.Background()

	roleSvc := mocks.NewMockRoleService()
	roleSvc.HasAnyRoleFunc = func(ctx context.Context, userID uint, required []string) (bool, error) {
		return userID == 5 && len(required) == 1 && required[0] == domain.RoleAdmin, nil
	}
	srv := createServerForTest(mocks.NewMockTokenService(), roleSvc)

	t.Run("granted", func(t *testing.T) {
		req := ValidateRolesRequest{UserID: 5, RequiredRoles: []string{domain.RoleAdmin}}
		reply := srv.Dispatch(ctx, envelope(t, PatternValidateRoles, req))
		if reply.Code != "" {
			t.Fatalf("expected success, got code %q", reply.Code)
		}
		var resp ValidateRolesResponse
		if err := json.Unmarshal(reply.Data, &resp); err != nil {
			t.Fatalf("failed to decode reply: %v", err)
		}
		if !resp.HasAccess {
			t.Error("expected access granted")
		}
	})

	t.Run("denied", func(t *testing.T) {
		req := ValidateRolesRequest{UserID: 6, RequiredRoles: []string{domain.RoleAdmin}}
		reply := srv.Dispatch(ctx, envelope(t, PatternValidateRoles, req))
		var resp ValidateRolesResponse
		if err := json.Unmarshal(reply.Data, &resp); err != nil {
			t.Fatalf("failed to decode reply: %v", err)
		}
		if resp.HasAccess {
			t.Error("expected access denied")
		}
	})
}

func TestServer_Dispatch_Malformed(t *testing.T) {
	ctx := context.Background()
	srv := createServerForTest(mocks.NewMockTokenService(), mocks.NewMockRoleService())

	tests := []struct {
		name string
		body []byte
	}{
		{"not json", []byte("not-json")},
		{"unknown pattern", envelope(t, "drop_tables", AuthenticateRequest{Token: "x"})},
		{"bad payload", []byte(`{"pattern":"authenticate","data":"not-an-object"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := srv.Dispatch(ctx, tt.body)
			if reply.Code != CodeInternal {
				t.Errorf("expected code %q, got %q", CodeInternal, reply.Code)
			}
		})
	}
}

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name     string
		reply    Reply
		expected error
	}{
		{"invalid token code", Reply{Code: CodeInvalidToken}, domain.ErrTokenInvalid},
		{"user not found code", Reply{Code: CodeUserNotFound}, domain.ErrUserNotFound},
		{"unknown code fails closed", Reply{Code: "something_else"}, domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp AuthenticateResponse
			if err := decodeReply(tt.reply, &resp); err != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}

	t.Run("data decodes into the response", func(t *testing.T) {
		var resp AuthenticateResponse
		if err := decodeReply(Reply{Data: []byte(`{"userId":11}`)}, &resp); err != nil {
			t.Fatalf("decodeReply failed: %v", err)
		}
		if resp.UserID != 11 {
			t.Errorf("expected user 11, got %d", resp.UserID)
		}
	})
}
