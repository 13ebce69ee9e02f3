//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/pkg/clock"
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/usecase/commands"
	commandsmock "weekchain-capacity/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCertificateMaintenance(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)

	newTarget := func(t *testing.T) (commands.CertificateCommands, *commandsmock.MockCertificateWriter) {
		t.Helper()
		ctrl := gomock.NewController(t)
		certs := commandsmock.NewMockCertificateWriter(ctrl)
		return commands.NewCertificateCommands(certs, clock.NewMockClock(now)), certs
	}

	t.Run("expire sweeps at the injected time", func(t *testing.T) {
		target, certs := newTarget(t)
		certs.EXPECT().ExpireOverdue(ctx, now).Return(int64(4), nil)

		n, err := target.ExpireCertificates(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 4, n)
	})

	t.Run("expire wraps persistence failures", func(t *testing.T) {
		target, certs := newTarget(t)
		certs.EXPECT().ExpireOverdue(ctx, now).
			Return(int64(0), infra.WrapRepoErr("update failed", assert.AnError))

		_, err := target.ExpireCertificates(ctx)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})

	t.Run("annual reset sweeps at the injected time", func(t *testing.T) {
		target, certs := newTarget(t)
		certs.EXPECT().ResetAnnualAllowances(ctx, now).Return(int64(12), nil)

		n, err := target.ResetAnnualAllowances(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 12, n)
	})

	t.Run("annual reset wraps persistence failures", func(t *testing.T) {
		target, certs := newTarget(t)
		certs.EXPECT().ResetAnnualAllowances(ctx, now).
			Return(int64(0), infra.WrapRepoErr("update failed", assert.AnError))

		_, err := target.ResetAnnualAllowances(ctx)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
