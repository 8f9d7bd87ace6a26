package messagestream

import (
	"cinema-web/config"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	DriverGoChannel = "gochannel"
	DriverAMQP      = "amqp"
)

var logger = watermill.NewStdLogger(false, false)

type Stream struct {
	cfg       *config.MessageStreamConfig
	goChannel *gochannel.GoChannel
}

func New(cfg *config.MessageStreamConfig) *Stream {
	s := &Stream{cfg: cfg}
	if cfg.Driver != DriverAMQP {
		s.goChannel = gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, logger)
	}
	return s
}

func (s *Stream) amqpConfig() amqp.Config {
	uri := fmt.Sprintf("amqp://%s:%s@%s:%s/", s.cfg.Username, s.cfg.Password, s.cfg.Host, s.cfg.Port)
	return amqp.NewDurableQueueConfig(uri)
}

func (s *Stream) NewPublisher() (message.Publisher, error) {
	if s.goChannel != nil {
		return s.goChannel, nil
	}
	return amqp.NewPublisher(s.amqpConfig(), logger)
}

func (s *Stream) NewSubscriber() (message.Subscriber, error) {
	if s.goChannel != nil {
		return s.goChannel, nil
	}
	return amqp.NewSubscriber(s.amqpConfig(), logger)
}

// Open returns the publisher and subscriber of the configured driver. Either
// both are usable or an error is returned.
func (s *Stream) Open() (message.Publisher, message.Subscriber, error) {
	publisher, err := s.NewPublisher()
	if err != nil {
		return nil, nil, fmt.Errorf("error create publisher: %w", err)
	}
	subscriber, err := s.NewSubscriber()
	if err != nil {
		_ = publisher.Close()
		return nil, nil, fmt.Errorf("error create subscriber: %w", err)
	}
	return publisher, subscriber, nil
}

// NewRouter consumes topic with handlerFunc. Messages whose handler fails are
// forwarded to poisonTopic.
func NewRouter(publisher message.Publisher, poisonTopic, handlerName, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		middleware.CorrelationID,
		poisonQueue,
	)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
