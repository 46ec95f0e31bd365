package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/kilianp07/chargesim/core/model"
	"github.com/kilianp07/chargesim/infra/logger"
)

// pahoClient is the subset of the Paho client the publisher uses.
type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Publisher streams replay progress frames and run summaries to the
// dashboard broker. Topics are <prefix>/<runID>/progress and
// <prefix>/<runID>/summary with JSON payloads.
type Publisher struct {
	cli pahoClient
	cfg Config
	log logger.Logger
}

// NewPublisher connects to the configured broker, retrying with the
// configured backoff before giving up. The status topic announces "online"
// on connect and the LWT payload when the connection dies.
func NewPublisher(cfg Config) (*Publisher, error) {
	opts, err := NewClientOptions(cfg)
	if err != nil {
		return nil, err
	}
	log := logger.New("mqtt-publisher")
	opts.OnConnect = func(c paho.Client) {
		log.Infof("connected to %s", cfg.Broker)
		c.Publish(cfg.LWTTopic, cfg.LWTQoS, true, "online")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Warnf("connection lost: %v", err)
	}

	cli := newMQTTClient(opts)
	backoff := time.Duration(cfg.BackoffMS) * time.Millisecond
	var lastErr error
	for attempt := 0; attempt < cfg.MaxRetries; attempt++ {
		token := cli.Connect()
		token.Wait()
		if lastErr = token.Error(); lastErr == nil {
			return &Publisher{cli: cli, cfg: cfg, log: log}, nil
		}
		log.Warnf("connect attempt %d failed: %v", attempt+1, lastErr)
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, fmt.Errorf("connect %s: %w", cfg.Broker, lastErr)
}

// PublishFrame sends one replay progress update.
func (p *Publisher) PublishFrame(f model.ReplayFrame) error {
	topic := fmt.Sprintf("%s/%s/progress", p.cfg.TopicPrefix, f.RunID)
	return p.publishJSON(topic, f, false)
}

// PublishSummary sends the aggregate view of a finished run.
func (p *Publisher) PublishSummary(runID string, sum model.Summary) error {
	topic := fmt.Sprintf("%s/%s/summary", p.cfg.TopicPrefix, runID)
	return p.publishJSON(topic, sum, p.cfg.Retain)
}

func (p *Publisher) publishJSON(topic string, v any, retain bool) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	token := p.cli.Publish(topic, p.cfg.QoS, retain, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Close announces the offline status and disconnects.
func (p *Publisher) Close() {
	if p.cli == nil || !p.cli.IsConnected() {
		return
	}
	token := p.cli.Publish(p.cfg.LWTTopic, p.cfg.LWTQoS, true, p.cfg.LWTPayload)
	token.Wait()
	p.cli.Disconnect(250)
}
