package usecase_test

import (
	"context"
	"testing"

	"axlas-recipes/domain/dto"
	"axlas-recipes/domain/model"
	"axlas-recipes/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Insert(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactRepo) List(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContact(msg *model.ContactMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ContactReceived(ctx context.Context, msg *model.ContactMessage) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

func TestContactUsecase_Submit(t *testing.T) {
	repo := new(MockContactRepo)
	mailer := new(MockMailer)
	notifier := new(MockNotifier)

	repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	mailer.On("SendContact", mock.Anything).Return(nil).Once()
	notifier.On("ContactReceived", mock.Anything, mock.Anything).Return("msg-1", nil).Once()

	uc := usecase.NewContactUsecase(repo, mailer, notifier)
	err := uc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Axla",
		Email:   "axla@example.com",
		Message: "Loved the stew recipe",
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestContactUsecase_Submit_MissingFields(t *testing.T) {
	uc := usecase.NewContactUsecase(nil, new(MockMailer), nil)

	err := uc.Submit(context.Background(), &dto.ContactRequest{Name: "Axla"})

	assert.ErrorIs(t, err, usecase.ErrMissingFields)
}

func TestContactUsecase_Submit_MailerNotConfigured(t *testing.T) {
	uc := usecase.NewContactUsecase(nil, nil, nil)

	err := uc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Axla",
		Email:   "axla@example.com",
		Message: "Hello",
	})

	assert.ErrorIs(t, err, usecase.ErrMailNotConfigured)
}

func TestContactUsecase_Submit_SendFailurePropagates(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("SendContact", mock.Anything).Return(assert.AnError).Once()

	uc := usecase.NewContactUsecase(nil, mailer, nil)
	err := uc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Axla",
		Email:   "axla@example.com",
		Message: "Hello",
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrMissingFields)
}

func TestContactUsecase_Submit_StoreFailureDoesNotBlockRelay(t *testing.T) {
	repo := new(MockContactRepo)
	mailer := new(MockMailer)

	repo.On("Insert", mock.Anything, mock.Anything).Return(assert.AnError).Once()
	mailer.On("SendContact", mock.Anything).Return(nil).Once()

	uc := usecase.NewContactUsecase(repo, mailer, nil)
	err := uc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Axla",
		Email:   "axla@example.com",
		Message: "Hello",
	})

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestContactUsecase_ListMessages(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("List", mock.Anything, 50).
		Return([]model.ContactMessage{{Name: "Axla", Email: "axla@example.com"}}, nil).
		Once()

	uc := usecase.NewContactUsecase(repo, new(MockMailer), nil)
	messages, err := uc.ListMessages(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, messages, 1)
}
