// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestWithUserID_RoundTrip(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != 42 {
		t.Errorf("expected userID=42, got %d", userID)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{
			name:   "missing",
			ctx:    context.Background(),
			wantID: 0,
			wantOK: false,
		},
		{
			name:   "wrong type",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "42"),
			wantID: 0,
			wantOK: false,
		},
		{
			name:   "plain int is not int64",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, 42),
			wantID: 0,
			wantOK: false,
		},
		{
			name:   "different key",
			ctx:    context.WithValue(context.Background(), contextKey("other"), int64(99)),
			wantID: 0,
			wantOK: false,
		},
		{
			name:   "zero id is still present",
			ctx:    WithUserID(context.Background(), 0),
			wantID: 0,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if userID != tt.wantID {
				t.Errorf("expected userID=%d, got %d", tt.wantID, userID)
			}
		})
	}
}
