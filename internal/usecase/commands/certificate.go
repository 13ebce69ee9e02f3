package commands

import (
	"context"
	"log/slog"

	"weekchain-capacity/internal/pkg/clock"
	"weekchain-capacity/internal/pkg/errs"
)

type CertificateCommands interface {
	// ExpireCertificates sweeps active certificates past their 15-year
	// validity end. Idempotent; meant to run from a daily schedule.
	ExpireCertificates(ctx context.Context) (int64, error)
	// ResetAnnualAllowances restores the yearly stay allowance for
	// certificates whose anniversary date has passed.
	ResetAnnualAllowances(ctx context.Context) (int64, error)
}

type certificateCommandsImpl struct {
	certs CertificateWriter
	clock clock.Clock
}

func NewCertificateCommands(certs CertificateWriter, clk clock.Clock) CertificateCommands {
	return &certificateCommandsImpl{certs: certs, clock: clk}
}

func (c *certificateCommandsImpl) ExpireCertificates(ctx context.Context) (int64, error) {
	now := c.clock.Now()
	n, err := c.certs.ExpireOverdue(ctx, now)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if n > 0 {
		slog.Info("expired certificates past validity end", "count", n)
	}
	return n, nil
}

func (c *certificateCommandsImpl) ResetAnnualAllowances(ctx context.Context) (int64, error) {
	now := c.clock.Now()
	n, err := c.certs.ResetAnnualAllowances(ctx, now)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if n > 0 {
		slog.Info("reset annual stay allowances", "count", n)
	}
	return n, nil
}
