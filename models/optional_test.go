package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_Unmarshal_ThreeStates(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantSet  bool
		wantNull bool
		wantVal  string
	}{
		{name: "absent", body: `{"title":"Biology"}`, wantSet: false},
		{name: "explicit null", body: `{"title":"Biology","description":null}`, wantSet: true, wantNull: true},
		{name: "empty string", body: `{"title":"Biology","description":""}`, wantSet: true, wantVal: ""},
		{name: "value", body: `{"title":"Biology","description":"cells"}`, wantSet: true, wantVal: "cells"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req FolderUpdateRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.True(t, req.Title.Set)
			assert.Equal(t, "Biology", req.Title.Value)

			assert.Equal(t, tt.wantSet, req.Description.Set)
			assert.Equal(t, tt.wantNull, req.Description.Null)
			assert.Equal(t, tt.wantVal, req.Description.Value)
		})
	}
}

func TestOptional_Marshal_OmitsAbsent(t *testing.T) {
	req := FolderUpdateRequest{Title: Some("Chemistry")}

	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Chemistry"}`, string(b))

	req.Description = Null[string]()
	b, err = json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Chemistry","description":null}`, string(b))
}

func TestOptional_Ptr(t *testing.T) {
	assert.Nil(t, Null[string]().Ptr())

	p := Some("").Ptr()
	require.NotNil(t, p)
	assert.Equal(t, "", *p)
}

func TestUpdateRequests_IsEmpty(t *testing.T) {
	var folder FolderUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &folder))
	assert.True(t, folder.IsEmpty())

	var deck DeckUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &deck))
	assert.False(t, deck.IsEmpty())

	var card CardUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"image_url":""}`), &card))
	assert.False(t, card.IsEmpty())

	var user UserUpdateRequest
	assert.True(t, user.IsEmpty())
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	b, err := json.Marshal(User{ID: 1, Email: "a@x.com", PasswordHash: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret")
}

func TestNewAppBuildInfo_FillsBlanks(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", " ")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
