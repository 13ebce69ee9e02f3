package queries

import (
	"context"
	"errors"

	"weekchain-capacity/internal/domain/certificate"
	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/pkg/clock"
	"weekchain-capacity/internal/pkg/errs"

	"github.com/google/uuid"
)

type CertificateQueries interface {
	// CanRequestStay reports whether a certificate may currently request a
	// stay. Expected blocking conditions surface as reasons, not errors.
	CanRequestStay(ctx context.Context, certificateID uuid.UUID) (*StayEligibility, error)
}

type certificateQueriesImpl struct {
	certs CertificateReadStore
	clock clock.Clock
}

func NewCertificateQueries(certs CertificateReadStore, clock clock.Clock) CertificateQueries {
	return &certificateQueriesImpl{certs: certs, clock: clock}
}

func (q *certificateQueriesImpl) CanRequestStay(ctx context.Context, certificateID uuid.UUID) (*StayEligibility, error) {
	snap, err := q.certs.FindByID(ctx, certificateID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &StayEligibility{Allowed: false, Reason: "Certificate not found"}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	cert, err := toDomainCertificate(snap)
	if err != nil {
		return nil, errs.Wrap(err, "invalid certificate record")
	}

	if err := cert.CanRequestStay(q.clock.Now()); err != nil {
		return &StayEligibility{Allowed: false, Reason: eligibilityReason(err)}, nil
	}
	return &StayEligibility{Allowed: true}, nil
}

func toDomainCertificate(snap *CertificateSnapshot) (*certificate.Certificate, error) {
	pax, err := certificate.NewPaxClass(snap.MaxPax)
	if err != nil {
		return nil, err
	}
	stays, err := certificate.NewStaysClass(snap.StaysPerYear)
	if err != nil {
		return nil, err
	}

	return certificate.New(
		snap.ID,
		snap.UserID,
		pax,
		stays,
		certificate.Status(snap.Status),
		snap.RemainingStays,
		snap.YearStart,
		snap.EndDate,
		snap.PriceUSD,
	)
}

func eligibilityReason(err error) string {
	switch {
	case errors.Is(err, certificate.ErrExpired):
		return "Certificate has expired"
	case errors.Is(err, certificate.ErrNotActive):
		return "Certificate is not active"
	case errors.Is(err, certificate.ErrNoStaysRemaining):
		return "No stays remaining this year"
	default:
		return "Certificate cannot request a stay"
	}
}
