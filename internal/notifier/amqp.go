package notifier

import (
	"context"
	"fmt"
	"roulette_backend/internal/model"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// AMQP публикует заявки на вывод в очередь для ручной выдачи
type AMQP struct {
	mtx   sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewAMQP(url, queue string) (*AMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue, // имя
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return &AMQP{conn: conn, ch: ch, queue: queue}, nil
}

func (n *AMQP) NotifyWithdrawal(ctx context.Context, w model.Withdrawal) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := encodeWithdrawal(w)
	if err != nil {
		return err
	}

	n.mtx.Lock()
	defer n.mtx.Unlock()

	err = n.ch.Publish(
		"",      // exchange по умолчанию
		n.queue, // routing key = имя очереди
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish withdrawal %d: %w", w.ID, err)
	}
	return nil
}

func (n *AMQP) Close() error {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	if err := n.ch.Close(); err != nil {
		_ = n.conn.Close()
		return err
	}
	return n.conn.Close()
}
