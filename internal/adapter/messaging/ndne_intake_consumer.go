package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"outorga_monitor/internal/domain/entities"
	"outorga_monitor/internal/infrastructure/logging"
	"outorga_monitor/internal/infrastructure/metrics"
	"outorga_monitor/internal/usecase"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	OutcomeStored    = "stored"
	OutcomeRejected  = "rejected"
	OutcomeMalformed = "malformed"
	OutcomeRetried   = "retried"

	maxBackoff = 10 * time.Second
)

// MessageReader is the subset of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ConsumerConfig is read from KAFKA_BROKERS (comma separated), KAFKA_TOPIC,
// KAFKA_GROUP_ID and INTAKE_ACTOR.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	Actor   string
}

func (c ConsumerConfig) validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("no kafka brokers configured")
	}
	if strings.TrimSpace(c.Topic) == "" {
		return errors.New("kafka topic must not be empty")
	}
	if strings.TrimSpace(c.GroupID) == "" {
		return errors.New("kafka group id must not be empty")
	}
	return nil
}

// NewKafkaReader builds a consumer-group reader for the automated measurement topic.
func NewKafkaReader(cfg ConsumerConfig) (*kafka.Reader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		GroupTopics: []string{cfg.Topic},
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	}), nil
}

// NDNEMeasurementMessage is one automated ND/NE measurement published by field telemetry.
// Levels are accepted as JSON numbers or strings.
type NDNEMeasurementMessage struct {
	ContractID      string     `json:"contract_id"`
	Period          string     `json:"period"`
	StaticLevel     levelValue `json:"static_level"`
	DynamicLevel    levelValue `json:"dynamic_level"`
	MeasuredOn      string     `json:"measured_on"`
	TechnicianID    string     `json:"technician_id"`
	ResponsibleName string     `json:"responsible_name"`
}

type levelValue struct {
	raw *string
}

func (l *levelValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		l.raw = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		l.raw = &s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("level must be a number or string: %w", err)
	}
	s := n.String()
	l.raw = &s
	return nil
}

func (m NDNEMeasurementMessage) fields() usecase.NDNEFields {
	f := usecase.NDNEFields{
		TechnicianID:    &m.TechnicianID,
		ResponsibleName: &m.ResponsibleName,
		MeasuredOn:      &m.MeasuredOn,
		StaticLevel:     m.StaticLevel.raw,
		DynamicLevel:    m.DynamicLevel.raw,
	}
	if m.Period != "" {
		p := entities.Period(m.Period)
		f.Period = &p
	}
	return f
}

// NDNEIntakeConsumer feeds automated measurements into the reconciler. Rejected and
// malformed messages are committed so they never block the partition; storage and
// lock failures are retried in place.
type NDNEIntakeConsumer struct {
	reader  MessageReader
	ndne    usecase.INDNEUseCase
	actor   string
	metrics *metrics.Metrics
	log     *logrus.Entry
	sleep   func(ctx context.Context, d time.Duration) bool
}

func NewNDNEIntakeConsumer(reader MessageReader, ndne usecase.INDNEUseCase, actor string, m *metrics.Metrics) *NDNEIntakeConsumer {
	if strings.TrimSpace(actor) == "" {
		actor = "automated-intake"
	}
	return &NDNEIntakeConsumer{
		reader:  reader,
		ndne:    ndne,
		actor:   actor,
		metrics: m,
		log:     logging.Module("ndne-intake", "messaging"),
		sleep:   sleepCtx,
	}
}

// Run blocks until ctx ends, then closes the reader.
func (c *NDNEIntakeConsumer) Run(ctx context.Context) {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.log.WithError(err).Error("reader close")
		}
	}()
	c.log.Info("consumer start")

	backoff := time.Second
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.log.Info("consumer stop")
				return
			}
			c.log.WithError(err).Error("fetch message")
			if !c.sleep(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff)
			continue
		}
		backoff = time.Second

		if !c.process(ctx, msg) {
			return
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.WithError(err).WithField("offset", msg.Offset).Error("commit message")
		}
	}
}

// process handles one message until it is stored or permanently rejected. It returns
// false only when ctx ended first.
func (c *NDNEIntakeConsumer) process(ctx context.Context, msg kafka.Message) bool {
	entry := c.log.WithFields(logrus.Fields{"partition": msg.Partition, "offset": msg.Offset})

	var payload NDNEMeasurementMessage
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		entry.WithError(err).Warn("malformed ndne message")
		c.metrics.ObserveIntake(OutcomeMalformed)
		return true
	}

	backoff := time.Second
	for {
		rec, err := c.ndne.UpsertAutomated(ctx, payload.ContractID, payload.fields(), c.actor)
		if err == nil {
			entry.WithFields(logrus.Fields{"contract_id": rec.ContractID, "id": rec.ID, "period": rec.Period}).Info("automated record stored")
			c.metrics.ObserveIntake(OutcomeStored)
			return true
		}
		if permanent(err) {
			var verr *usecase.ValidationError
			if errors.As(err, &verr) {
				c.metrics.ObserveValidation(verr.Fields)
			}
			entry.WithError(err).WithField("contract_id", payload.ContractID).Warn("automated record rejected")
			c.metrics.ObserveIntake(OutcomeRejected)
			return true
		}

		entry.WithError(err).Error("automated record not stored, retrying")
		c.metrics.ObserveIntake(OutcomeRetried)
		if !c.sleep(ctx, backoff) {
			return false
		}
		backoff = nextBackoff(backoff)
	}
}

func permanent(err error) bool {
	var verr *usecase.ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, usecase.ErrInvalidContractID) ||
		errors.Is(err, usecase.ErrInvalidActor) ||
		errors.Is(err, usecase.ErrLockerNotConfigured)
}

func nextBackoff(d time.Duration) time.Duration {
	if d*2 > maxBackoff {
		return maxBackoff
	}
	return d * 2
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
