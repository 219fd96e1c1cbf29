// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/mock"
	"github.com/Srejith/namemybaby/internal/store"
	"github.com/Srejith/namemybaby/internal/validators"
	"github.com/Srejith/namemybaby/models"
)

func newTestReportService(t *testing.T) (ReportService, *mock.MockFlowAdapter, *mock.MockReportRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	flow := mock.NewMockFlowAdapter(ctrl)
	repo := mock.NewMockReportRepository(ctrl)

	return NewReportService(flow, repo, logger.Nop()), flow, repo
}

func TestReportService_Generate_SanitizesAndStores(t *testing.T) {
	svc, flow, repo := newTestReportService(t)

	flow.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.FlowRequest) (models.FlowReply, error) {
			assert.Equal(t, "What is the etymology and meaning of the name Aria?. User ID: 2", req.Message)
			return models.FlowReply{
				Kind: models.FlowReplyOutputsMessage,
				Text: `<p>Aria means <b>air</b>.</p><script>alert(1)</script>`,
			}, nil
		})
	repo.EXPECT().Upsert(gomock.Any(), int64(2), "Aria", "<p>Aria means <b>air</b>.</p>").
		Return(models.NameReport{ID: "r1", Name: "Aria"}, nil)

	got, err := svc.Generate(context.Background(), 2, " Aria ")

	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
}

func TestReportService_Generate_UnparseableReply(t *testing.T) {
	svc, flow, _ := newTestReportService(t)

	flow.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(models.FlowReply{Kind: models.FlowReplyUnparseable, Text: `{"status":"queued"}`}, nil)

	_, err := svc.Generate(context.Background(), 2, "Aria")

	assert.ErrorIs(t, err, ErrEmptyFlowReply)
}

func TestReportService_Generate_EmptyName(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.Generate(context.Background(), 2, "  ")

	assert.ErrorIs(t, err, validators.ErrEmptyName)
}

func TestReportService_Save(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SaveReportRequest
		stored  string
		wantErr error
	}{
		{name: "plain text", req: models.SaveReportRequest{Name: "Leo", ReportContent: "Lion."}, stored: "Lion."},
		{name: "script only", req: models.SaveReportRequest{Name: "Leo", ReportContent: "<script>x</script>"}, wantErr: validators.ErrEmptyReportContent},
		{name: "no name", req: models.SaveReportRequest{ReportContent: "Lion."}, wantErr: validators.ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, repo := newTestReportService(t)
			if tt.wantErr == nil {
				repo.EXPECT().Upsert(gomock.Any(), int64(1), tt.req.Name, tt.stored).
					Return(models.NameReport{ID: "r2"}, nil)
			}

			_, err := svc.Save(context.Background(), 1, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReportService_Lookups(t *testing.T) {
	svc, _, repo := newTestReportService(t)
	ctx := context.Background()

	repo.EXPECT().List(gomock.Any(), int64(1)).Return([]models.NameReport{{ID: "r1"}}, nil)
	repo.EXPECT().GetByName(gomock.Any(), int64(1), "aria").Return(models.NameReport{ID: "r1"}, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(1), "nope").Return(models.NameReport{}, store.ErrReportNotFound)
	repo.EXPECT().Delete(gomock.Any(), int64(1), "r1").Return(nil)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	byName, err := svc.GetByName(ctx, 1, " aria ")
	require.NoError(t, err)
	assert.Equal(t, "r1", byName.ID)

	_, err = svc.GetByID(ctx, 1, "nope")
	assert.ErrorIs(t, err, store.ErrReportNotFound)

	assert.NoError(t, svc.Delete(ctx, 1, "r1"))
}
