package commands_test

import (
	"errors"
	"testing"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopUpBalanceCommandHandler_Handle_ConvertsToBalanceCurrency(t *testing.T) {
	ctx := t.Context()
	user := userWithBalance(t, 1000)
	gel, err := kernel.NewMoney(kernel.GEL, 1620)
	require.NoError(t, err)
	cmd, err := commands.NewTopUpBalanceCommand(user.ID(), gel, account.Card, "cs_test_a1b2c3")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	outboxRepo := new(MockOutboxRepository)
	converter := new(MockCurrencyConverter)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, user.ID()).Return(user, nil).Once(),
		converter.On("ConvertTo", ctx, gel, kernel.USD).Return(usd(t, 600), nil).Once(),
		userRepo.On("Update", ctx, user).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", ctx, now, eventOfType(account.UserBalanceTopUpEventType)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTopUpBalanceCommandHandler(factory, converter, fixedClock{now})
	balance, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, usd(t, 1600), balance)
	converter.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTopUpBalanceCommandHandler_Handle_ConversionError(t *testing.T) {
	ctx := t.Context()
	user := userWithBalance(t, 1000)
	cmd, err := commands.NewTopUpBalanceCommand(user.ID(), usd(t, 100), account.BankTransfer, "tr-42")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	converter := new(MockCurrencyConverter)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, user.ID()).Return(user, nil).Once(),
		converter.On("ConvertTo", ctx, usd(t, 100), kernel.USD).Return(kernel.Money{}, errors.New("no rate")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTopUpBalanceCommandHandler(factory, converter, fixedClock{now})
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "no rate")
	assert.Equal(t, usd(t, 1000), user.Balance())
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTopUpBalanceCommandHandler_Handle_ZeroAfterConversion(t *testing.T) {
	ctx := t.Context()
	user := userWithBalance(t, 1000)
	gel, err := kernel.NewMoney(kernel.GEL, 1)
	require.NoError(t, err)
	cmd, err := commands.NewTopUpBalanceCommand(user.ID(), gel, account.Card, "cs_tiny")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	converter := new(MockCurrencyConverter)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, user.ID()).Return(user, nil).Once(),
		converter.On("ConvertTo", ctx, gel, kernel.USD).Return(usd(t, 0), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTopUpBalanceCommandHandler(factory, converter, fixedClock{now})
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, usd(t, 1000), user.Balance())
}
