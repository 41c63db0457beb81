// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/luxfi/metric"

	"github.com/luxfi/ballotvm/txs"
	"github.com/luxfi/ballotvm/utils/wrappers"
)

const txLabel = "tx"

var txLabels = []string{txLabel}

// Metrics tracks transaction outcomes.
type Metrics interface {
	// Mark that the given transaction was applied and committed.
	MarkAccepted(*txs.Tx) error
	// Mark that the given transaction was rejected by a precondition.
	MarkRejected(*txs.Tx) error
}

func New(registerer metric.Registerer) (Metrics, error) {
	m := &metrics{
		numAccepted: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "txs_accepted",
				Help: "number of transactions accepted",
			},
			txLabels,
		),
		numRejected: metric.NewCounterVec(
			metric.CounterOpts{
				Name: "txs_rejected",
				Help: "number of transactions rejected",
			},
			txLabels,
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(metric.AsCollector(m.numAccepted)),
		registerer.Register(metric.AsCollector(m.numRejected)),
	)
	return m, errs.Err
}

type metrics struct {
	numAccepted metric.CounterVec
	numRejected metric.CounterVec
}

func (m *metrics) MarkAccepted(tx *txs.Tx) error {
	return tx.Unsigned.Visit(&txVisitor{counter: m.numAccepted})
}

func (m *metrics) MarkRejected(tx *txs.Tx) error {
	return tx.Unsigned.Visit(&txVisitor{counter: m.numRejected})
}

var _ txs.Visitor = (*txVisitor)(nil)

type txVisitor struct {
	counter metric.CounterVec
}

func (v *txVisitor) CreatePollTx(*txs.CreatePollTx) error {
	v.counter.With(metric.Labels{
		txLabel: "create_poll",
	}).Inc()
	return nil
}

func (v *txVisitor) VoteTx(*txs.VoteTx) error {
	v.counter.With(metric.Labels{
		txLabel: "vote",
	}).Inc()
	return nil
}
