package tenant_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rentcredit/rentcredit/internal/tenant"
)

func TestService_Add(t *testing.T) {
	type args struct {
		params tenant.CreateParams
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(m *tenant.MockRepository)
		wantStatus tenant.Status
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: tenant.CreateParams{
					Name:      "Priya Sharma",
					Rent:      15000,
					DueDate:   time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
					Status:    tenant.StatusPaid,
					Reporting: true,
				},
			},
			setupMock: func(m *tenant.MockRepository) {
				m.EXPECT().
					CreateTenant(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tn *tenant.Tenant) error {
						tn.ID = uuid.NewString()
						tn.CreatedAt = time.Now()
						return nil
					})
			},
			wantStatus: tenant.StatusPaid,
			wantErr:    false,
		},
		{
			name: "DefaultsToPending",
			args: args{
				params: tenant.CreateParams{Name: "Rahul Verma", Rent: 12000},
			},
			setupMock: func(m *tenant.MockRepository) {
				m.EXPECT().
					CreateTenant(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tn *tenant.Tenant) error {
						tn.ID = uuid.NewString()
						return nil
					})
			},
			wantStatus: tenant.StatusPending,
			wantErr:    false,
		},
		{
			name: "RepoError",
			args: args{
				params: tenant.CreateParams{Name: "X"},
			},
			setupMock: func(m *tenant.MockRepository) {
				m.EXPECT().
					CreateTenant(gomock.Any(), gomock.Any()).
					Return(errors.New("store error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := tenant.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := tenant.NewService(repo)
			got, err := svc.Add(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_AddBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tenant.NewMockRepository(ctrl)
	svc := tenant.NewService(repo)

	params := []tenant.CreateParams{
		{Name: "Priya Sharma", Rent: 15000, Reporting: true},
		{Name: "Sneha Patel", Rent: 18000},
	}

	repo.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tn *tenant.Tenant) error {
			tn.ID = uuid.NewString()
			return nil
		}).
		Times(2)

	tenants, err := svc.AddBatch(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "Priya Sharma", tenants[0].Name)
	assert.Equal(t, "Sneha Patel", tenants[1].Name)
	assert.NotEqual(t, tenants[0].ID, tenants[1].ID)
}

func TestService_AddBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tenant.NewMockRepository(ctrl)
	svc := tenant.NewService(repo)

	tenants, err := svc.AddBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, tenants)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tenant.NewMockRepository(ctrl)
	svc := tenant.NewService(repo)

	repo.EXPECT().
		ListTenants(gomock.Any()).
		Return([]*tenant.Tenant{
			{ID: "1", Name: "Alice", Status: tenant.StatusPending, Reporting: true},
			{ID: "2", Name: "Bob", Status: tenant.StatusPaid, Reporting: false},
		}, nil)

	got, err := svc.List(context.Background(), tenant.FilterCriteria{Status: tenant.FilterStatusPaid})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name)
}

func TestService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tenant.NewMockRepository(ctrl)
	svc := tenant.NewService(repo)

	repo.EXPECT().
		ListTenants(gomock.Any()).
		Return(nil, errors.New("list error"))

	_, err := svc.List(context.Background(), tenant.DefaultCriteria())
	assert.Error(t, err)
}

func TestService_ConfirmPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tenant.NewMockRepository(ctrl)
	svc := tenant.NewService(repo)

	repo.EXPECT().
		SetStatus(gomock.Any(), "t1", tenant.StatusPaid).
		Return(&tenant.Tenant{ID: "t1", Status: tenant.StatusPaid}, nil)

	got, err := svc.ConfirmPayment(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusPaid, got.Status)
}

func TestService_ConfirmPayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := tenant.NewMockRepository(ctrl)
	svc := tenant.NewService(repo)

	repo.EXPECT().
		SetStatus(gomock.Any(), "missing", tenant.StatusPaid).
		Return(nil, tenant.ErrNotFound)

	_, err := svc.ConfirmPayment(context.Background(), "missing")
	assert.ErrorIs(t, err, tenant.ErrNotFound)
}
