package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/deliveryorder"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/joborder"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockJobOrderRepository struct{ mock.Mock }

func (m *MockJobOrderRepository) Add(ctx context.Context, jo *joborder.JobOrder) error {
	args := m.Called(ctx, jo)
	return args.Error(0)
}

func (m *MockJobOrderRepository) Update(ctx context.Context, jo *joborder.JobOrder) error {
	args := m.Called(ctx, jo)
	return args.Error(0)
}

func (m *MockJobOrderRepository) Get(ctx context.Context, id kernel.UUID) (*joborder.JobOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*joborder.JobOrder), args.Error(1)
}

func (m *MockJobOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*joborder.JobOrder, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*joborder.JobOrder), args.Error(1)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, mf *manifest.Manifest) error {
	args := m.Called(ctx, mf)
	return args.Error(0)
}

func (m *MockManifestRepository) Update(ctx context.Context, mf *manifest.Manifest) error {
	args := m.Called(ctx, mf)
	return args.Error(0)
}

func (m *MockManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

type MockDeliveryOrderRepository struct{ mock.Mock }

func (m *MockDeliveryOrderRepository) Add(ctx context.Context, do *deliveryorder.DeliveryOrder) error {
	args := m.Called(ctx, do)
	return args.Error(0)
}

func (m *MockDeliveryOrderRepository) Update(ctx context.Context, do *deliveryorder.DeliveryOrder) error {
	args := m.Called(ctx, do)
	return args.Error(0)
}

func (m *MockDeliveryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryorder.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryorder.DeliveryOrder), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) AddPayment(ctx context.Context, p *invoice.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) GetAllDueBefore(ctx context.Context, moment time.Time) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, moment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

type MockSourceClaimRepository struct{ mock.Mock }

func (m *MockSourceClaimRepository) Claim(
	ctx context.Context,
	source deliveryorder.Source,
	deliveryOrderID kernel.UUID,
) error {
	args := m.Called(ctx, source, deliveryOrderID)
	return args.Error(0)
}

func (m *MockSourceClaimRepository) Release(ctx context.Context, deliveryOrderID kernel.UUID) error {
	args := m.Called(ctx, deliveryOrderID)
	return args.Error(0)
}

// mockTx is embedded by every mock unit of work.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockJobOrderUoW struct{ mockTx }

func (m *MockJobOrderUoW) JobOrderRepository() ports.JobOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.JobOrderRepository)
}

type MockJobOrderUoWFactory struct{ mock.Mock }

func (m *MockJobOrderUoWFactory) Create() commands.JobOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.JobOrderUoW)
}

type MockManifestUoW struct{ mockTx }

func (m *MockManifestUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

func (m *MockManifestUoW) JobOrderRepository() ports.JobOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.JobOrderRepository)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockDeliveryOrderUoW struct{ mockTx }

func (m *MockDeliveryOrderUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryOrderRepository)
}

func (m *MockDeliveryOrderUoW) JobOrderRepository() ports.JobOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.JobOrderRepository)
}

func (m *MockDeliveryOrderUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

func (m *MockDeliveryOrderUoW) SourceClaimRepository() ports.SourceClaimRepository {
	args := m.Called()
	return args.Get(0).(ports.SourceClaimRepository)
}

type MockDeliveryOrderUoWFactory struct{ mock.Mock }

func (m *MockDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryOrderUoW)
}

type MockInvoiceUoW struct{ mockTx }

func (m *MockInvoiceUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}
