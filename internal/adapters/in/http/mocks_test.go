package http_test

import (
	"context"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateUserHandler struct{ mock.Mock }

func (m *MockCreateUserHandler) Handle(ctx context.Context, cmd commands.CreateUserCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockTopUpBalanceHandler struct{ mock.Mock }

func (m *MockTopUpBalanceHandler) Handle(ctx context.Context, cmd commands.TopUpBalanceCommand) (kernel.Money, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockChangeAddressHandler struct{ mock.Mock }

func (m *MockChangeAddressHandler) Handle(ctx context.Context, cmd commands.ChangeAddressCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreatePackageHandler struct{ mock.Mock }

func (m *MockCreatePackageHandler) Handle(
	ctx context.Context,
	cmd commands.CreatePackageCommand,
) (commands.CreatePackageResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreatePackageResult), args.Error(1)
}

type MockReceivePackageAtWarehouseHandler struct{ mock.Mock }

func (m *MockReceivePackageAtWarehouseHandler) Handle(
	ctx context.Context,
	cmd commands.ReceivePackageAtWarehouseCommand,
) (commands.ReceptionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ReceptionResult), args.Error(1)
}

type MockCreateRaceHandler struct{ mock.Mock }

func (m *MockCreateRaceHandler) Handle(ctx context.Context, cmd commands.CreateRaceCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockDeliverPackageHandler struct{ mock.Mock }

func (m *MockDeliverPackageHandler) Handle(ctx context.Context, cmd commands.DeliverPackageCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPayForShippingHandler struct{ mock.Mock }

func (m *MockPayForShippingHandler) Handle(ctx context.Context, cmd commands.PayForShippingCommand) (kernel.Money, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockGetPackageByTrackingCodeHandler struct{ mock.Mock }

func (m *MockGetPackageByTrackingCodeHandler) Handle(
	ctx context.Context,
	query queries.GetPackageByTrackingCodeQuery,
) (queries.GetPackageByTrackingCodeQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetPackageByTrackingCodeQueryResponse), args.Error(1)
}

type MockCalculatePriceHandler struct{ mock.Mock }

func (m *MockCalculatePriceHandler) Handle(
	ctx context.Context,
	query queries.CalculatePriceQuery,
) (queries.CalculatePriceQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CalculatePriceQueryResponse), args.Error(1)
}
