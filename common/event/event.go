package event

import (
	"fmt"
	"reflect"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-transformer/api"
	"vincit.fi/image-transformer/api/apitype"
	"vincit.fi/image-transformer/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) error {
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Printf("Could not subscribe to '%s': %s", topic, err)
		return err
	}
	return nil
}

func (s *Broker) Unsubscribe(topic api.Topic, fn interface{}) error {
	return s.bus.Unsubscribe(string(topic), fn)
}

// Dispatcher runs a function on the thread that owns the display state,
// e.g. the idle callback queue of a GUI toolkit.
type Dispatcher func(fn func())

// ConnectToDispatcher subscribes callback so that it is always invoked
// through dispatch instead of on the bus worker goroutine.
func (s *Broker) ConnectToDispatcher(topic api.Topic, dispatch Dispatcher, callback interface{}) error {
	cb := func(params ...interface{}) {
		dispatch(func() {
			args := make([]reflect.Value, 0, len(params))
			for _, param := range params {
				args = append(args, reflect.ValueOf(param))
			}
			logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
			reflect.ValueOf(callback).Call(args)
		})
	}
	return s.Subscribe(topic, cb)
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

func (s *Broker) Close(topic api.Topic) {
	s.bus.Close(string(topic))
}
