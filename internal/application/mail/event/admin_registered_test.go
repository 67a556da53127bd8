package mailevent_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailevent "github.com/plotbay/plotbay-backend/internal/application/mail/event"
	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	"github.com/plotbay/plotbay-backend/internal/domain/event"
	"github.com/plotbay/plotbay-backend/tests/mocks"
)

func TestAdminRegisteredHandler_Handle(t *testing.T) {
	t.Parallel()

	newEvent := func() *admin.AdminRegistered {
		return &admin.AdminRegistered{
			Header:  event.NewEventHeader(),
			AdminID: uuid.New(),
			Name:    "Jane Doe",
			Email:   "jane.doe@gmail.com",
		}
	}

	t.Run("sends welcome mail", func(t *testing.T) {
		t.Parallel()
		sender := mocks.NewMockMailSender()
		handler := mailevent.NewAdminRegisteredHandler(mailevent.AdminRegisteredHandlerArgs{Mailsender: sender})

		err := handler.Handle(context.Background(), newEvent())
		require.NoError(t, err)

		sender.AssertMailSent(t, "jane.doe@gmail.com", "Welcome to PlotBay")

		sent := sender.GetSentMails()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].Body, "Dear Jane Doe,")
		assert.Contains(t, sent[0].Body, "welcome aboard, Jane Doe!")
		assert.Contains(t, sent[0].Body, "The PlotBay Team")
	})

	t.Run("nil event is a no-op", func(t *testing.T) {
		t.Parallel()
		sender := mocks.NewMockMailSender()
		handler := mailevent.NewAdminRegisteredHandler(mailevent.AdminRegisteredHandlerArgs{Mailsender: sender})

		require.NoError(t, handler.Handle(context.Background(), nil))
		sender.AssertNoMailSent(t)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		t.Parallel()
		sender := mocks.NewMockMailSender()
		handler := mailevent.NewAdminRegisteredHandler(mailevent.AdminRegisteredHandlerArgs{Mailsender: sender})

		e := newEvent()
		e.Email = "not-an-email"
		require.Error(t, handler.Handle(context.Background(), e))
		sender.AssertNoMailSent(t)
	})

	t.Run("send failure surfaces for redelivery", func(t *testing.T) {
		t.Parallel()
		sender := mocks.NewMockMailSender()
		sender.FailWith(assert.AnError)
		handler := mailevent.NewAdminRegisteredHandler(mailevent.AdminRegisteredHandlerArgs{Mailsender: sender})

		err := handler.Handle(context.Background(), newEvent())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestWelcomeMail(t *testing.T) {
	t.Parallel()

	payload := mailevent.WelcomeMail("Jane Doe", "jane.doe@gmail.com")
	assert.Equal(t, "jane.doe@gmail.com", payload.To)
	assert.Equal(t, "Welcome to PlotBay - Your Registration Details", payload.Subject)
	assert.Contains(t, payload.Body, "Dear Jane Doe,")
	assert.Contains(t, payload.Body, "founding admin")
}
