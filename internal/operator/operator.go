package operator

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pix-ledger/internal/lock"
	"github.com/carson-networks/pix-ledger/internal/logging"
	"github.com/carson-networks/pix-ledger/internal/operator/actions"
	"github.com/carson-networks/pix-ledger/internal/storage"
)

// writerSource opens storage transactions.
type writerSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage writerSource
	locker  lock.Locker
	logger  *logrus.Logger
	queue   chan ActionItem
}

func NewOperator(s writerSource, locker lock.Locker, logger *logrus.Logger, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		locker:  locker,
		logger:  logger,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up while the item was queued.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := o.perform(item.ctx, item.action)
	if err != nil && o.logger.IsLevelEnabled(logrus.DebugLevel) {
		o.logger.WithError(err).Debugf("Operator.processItem.failed %s", spew.Sdump(item.action))
	}
	item.response <- ActionItemResponse{err: err}
}

func (o *Operator) perform(ctx context.Context, action actions.IAction) error {
	logData := logging.GetLogData(ctx)

	keys := make([]string, 0, 2)
	for _, id := range action.AccountIDs() {
		keys = append(keys, actions.AccountLockKey(id))
	}

	stopLockTimer := logging.StartTiming(logData, "lockMs")
	release, err := o.locker.Lock(ctx, keys...)
	stopLockTimer()
	if err != nil {
		return err
	}
	defer release()

	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	err = action.Perform(ctx, writer)
	if err != nil {
		if rollbackErr := writer.Rollback(); rollbackErr != nil {
			o.logger.WithError(rollbackErr).Error("Operator.perform.Rollback")
		}
		return err
	}

	return writer.Commit()
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
