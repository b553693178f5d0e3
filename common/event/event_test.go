package event

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-transformer/api"
)

const waitTimeout = 2 * time.Second

func TestBroker_SendCommandToTopic(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	sut := InitBus(10)
	received := make(chan *api.UpdateProgressCommand, 1)
	r.Nil(sut.Subscribe(api.ProcessStatusUpdated, func(command *api.UpdateProgressCommand) {
		received <- command
	}))

	sut.SendCommandToTopic(api.ProcessStatusUpdated, &api.UpdateProgressCommand{Name: "transform", Current: 1, Total: 3})

	select {
	case command := <-received:
		a.Equal("transform", command.Name)
		a.Equal(1, command.Current)
		a.Equal(3, command.Total)
		a.True(command.IsThrottled())
	case <-time.After(waitTimeout):
		t.Fatal("command not received")
	}
}

func TestBroker_Unsubscribe(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	sut := InitBus(10)
	received := make(chan *api.UpdateProgressCommand, 2)
	handler := func(command *api.UpdateProgressCommand) {
		received <- command
	}
	r.Nil(sut.Subscribe(api.ProcessStatusUpdated, handler))
	r.Nil(sut.Unsubscribe(api.ProcessStatusUpdated, handler))

	sut.SendCommandToTopic(api.ProcessStatusUpdated, &api.UpdateProgressCommand{Name: "transform"})

	select {
	case <-received:
		t.Fatal("unsubscribed handler was called")
	case <-time.After(100 * time.Millisecond):
	}
	a.Empty(received)
}

func TestBroker_SendError(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	sut := InitBus(10)
	received := make(chan *api.ErrorCommand, 1)
	r.Nil(sut.Subscribe(api.ShowError, func(command *api.ErrorCommand) {
		received <- command
	}))

	sut.SendError("Could not encode", errors.New("broken pipe"))

	select {
	case command := <-received:
		a.Equal("Could not encode\nbroken pipe", command.Message)
		a.False(command.IsThrottled())
	case <-time.After(waitTimeout):
		t.Fatal("error not received")
	}
}

func TestBroker_ConnectToDispatcher(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	sut := InitBus(10)
	dispatched := make(chan func(), 1)
	received := make(chan string, 1)
	r.Nil(sut.ConnectToDispatcher(api.CatalogUpdated, func(fn func()) {
		dispatched <- fn
	}, func(command *api.CatalogUpdatedCommand) {
		received <- command.Source
	}))

	sut.SendCommandToTopic(api.CatalogUpdated, &api.CatalogUpdatedCommand{Source: "/pictures", Pictures: 2})

	select {
	case fn := <-dispatched:
		a.Len(received, 0)
		fn()
		a.Equal("/pictures", <-received)
	case <-time.After(waitTimeout):
		t.Fatal("callback not dispatched")
	}
}
