// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBucket(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Bucket
		wantErr bool
	}{
		{name: "key", input: "shortlist", want: BucketShortlist},
		{name: "table name", input: "generated_list", want: BucketGenerated},
		{name: "mixed case with spaces", input: "  Maybe ", want: BucketMaybe},
		{name: "rejected", input: "rejected", want: BucketRejected},
		{name: "unknown", input: "favourites", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBucket(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownBucket)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBucket_TableAndDisplayName(t *testing.T) {
	assert.Equal(t, "generated_list", BucketGenerated.Table())
	assert.Equal(t, "shortlist", BucketShortlist.Table())
	assert.Equal(t, "Generated Names", BucketGenerated.DisplayName())
	assert.Equal(t, "Rejected", BucketRejected.DisplayName())
	assert.True(t, BucketMaybe.Valid())
	assert.False(t, Bucket("other").Valid())
}

func TestFlowReplyKind_String(t *testing.T) {
	assert.Equal(t, "unparseable", FlowReplyUnparseable.String())
	assert.Equal(t, "outputs_message", FlowReplyOutputsMessage.String())
	assert.Equal(t, "unknown", FlowReplyKind(99).String())
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
