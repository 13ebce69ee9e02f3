//go:build e2e

package capacity_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	resdto "weekchain-capacity/internal/handler/dto/response"
	"weekchain-capacity/internal/infra/repository"
	"weekchain-capacity/internal/pkg/jwt"
	"weekchain-capacity/tests/common/dbtest"
	"weekchain-capacity/tests/common/httptest"
	"weekchain-capacity/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CapacityE2ETestSuite struct {
	e2e.SharedSuite
}

func TestCapacityE2ESuite(t *testing.T) {
	suite.Run(t, new(CapacityE2ETestSuite))
}

func (s *CapacityE2ETestSuite) token(role string) string {
	svc := jwt.NewService(s.Config.JWT.Secret, time.Hour)
	token, err := svc.GenerateToken(uuid.New(), role)
	s.Require().NoError(err)
	return token
}

func (s *CapacityE2ETestSuite) recalculate(adminToken string) resdto.SnapshotResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/capacity/recalculate", nil, adminToken)

	var snapshot resdto.SnapshotResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &snapshot)
	return snapshot
}

func (s *CapacityE2ETestSuite) TestCapacityEngineFlow() {
	adminToken := s.token(jwt.RoleAdmin)

	s.Run("status is 404 before the first calculation", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/capacity/status", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No capacity snapshot recorded yet")
	})

	s.Run("a healthy portfolio produces a GREEN snapshot", func() {
		for range 10 {
			dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		}
		for range 20 {
			dbtest.CreateTestCertificate(s.T(), s.DB, 2, 1, "active")
		}

		snapshot := s.recalculate(adminToken)
		s.Equal(480, snapshot.TotalSupplyWeeks)
		s.Equal(336, snapshot.SafeCapacity)
		s.Equal(20, snapshot.CertificatesSilver)
		s.Equal("GREEN", snapshot.SystemStatus)
		s.True(snapshot.SilverSalesEnabled)
		s.False(snapshot.WaitlistEnabled)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/capacity/status", nil, "")
		var status resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &status)
		s.Equal(snapshot.ID, status.ID)
	})

	s.Run("overload stops first-tier sales and opens the waitlist", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		for range 40 {
			dbtest.CreateTestCertificate(s.T(), s.DB, 2, 1, "active")
		}

		// 40 certs * 0.55 = 22 projected weeks on 33 safe weeks: RED
		snapshot := s.recalculate(adminToken)
		s.Equal("RED", snapshot.SystemStatus)
		s.False(snapshot.SilverSalesEnabled)
		s.True(snapshot.GoldSalesEnabled)
		s.True(snapshot.WaitlistEnabled)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability/tiers/1", nil, "")
		var tier resdto.TierAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &tier)
		s.False(tier.Available)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability/tiers/2", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &tier)
		s.True(tier.Available)
	})

	s.Run("inactive certificates carry no demand", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		dbtest.CreateTestCertificate(s.T(), s.DB, 2, 1, "expired")
		dbtest.CreateTestCertificate(s.T(), s.DB, 2, 1, "cancelled")

		snapshot := s.recalculate(adminToken)
		s.Zero(snapshot.CertificatesSilver)
		s.Equal("GREEN", snapshot.SystemStatus)
	})

	s.Run("history is most recent first", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		first := s.recalculate(adminToken)
		second := s.recalculate(adminToken)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/capacity/history?limit=2", nil, adminToken)
		var history []resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &history)
		s.Require().Len(history, 2)
		s.Equal(second.ID, history[0].ID)
		s.Equal(first.ID, history[1].ID)
	})

	s.Run("admin surface rejects viewer tokens", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/capacity/recalculate", nil, s.token(jwt.RoleViewer))
		s.Equal(http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/capacity/recalculate", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *CapacityE2ETestSuite) TestSalesFlow() {
	adminToken := s.token(jwt.RoleAdmin)
	viewerToken := s.token(jwt.RoleViewer)

	s.Run("sales stop at the product beta cap", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		s.recalculate(adminToken)

		productID := dbtest.ProductIDBySpec(s.T(), s.DB, 2, 1)
		url := "/api/products/" + productID.String() + "/record-sale"

		// The 2-pax 1-stay SKU seeds with a cap of 5
		var sale resdto.SaleResponse
		for i := 1; i <= 5; i++ {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, viewerToken)
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &sale)
			s.Equal(i, sale.SoldCount)
		}
		s.Zero(sale.RemainingForProduct)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url, nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Certificate cap reached")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability/products/"+productID.String(), nil, "")
		var decision resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &decision)
		s.False(decision.Available)
		s.Equal("Product beta cap reached", decision.Reason)
	})

	s.Run("the global cap blocks a SKU with headroom", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		s.recalculate(adminToken)

		// Fill every other SKU and widen one so the 68-unit total is reached
		// while the target still has its own headroom.
		ctx := context.Background()
		_, err := s.DB.Exec(ctx,
			`UPDATE certificate_products SET sold_count = beta_cap WHERE NOT (max_pax = 2 AND stays_per_year = 1)`)
		s.Require().NoError(err)
		_, err = s.DB.Exec(ctx,
			`UPDATE certificate_products SET beta_cap = 10, sold_count = 5 WHERE max_pax = 2 AND stays_per_year = 1`)
		s.Require().NoError(err)

		productID := dbtest.ProductIDBySpec(s.T(), s.DB, 2, 1)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/products/"+productID.String()+"/record-sale", nil, viewerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Certificate cap reached")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability/products/"+productID.String(), nil, "")
		var decision resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &decision)
		s.False(decision.Available)
		s.Equal("Global beta cap reached", decision.Reason)

		// ResetDB restores counters but not caps; put the seeded cap back.
		_, err = s.DB.Exec(ctx,
			`UPDATE certificate_products SET beta_cap = 5, sold_count = 0 WHERE max_pax = 2 AND stays_per_year = 1`)
		s.Require().NoError(err)
	})

	s.Run("the admin kill switch closes one SKU", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		s.recalculate(adminToken)

		productID := dbtest.ProductIDBySpec(s.T(), s.DB, 4, 2)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/products/"+productID.String()+"/sales",
			map[string]any{"enabled": false}, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability/products/"+productID.String(), nil, "")
		var decision resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &decision)
		s.False(decision.Available)
		s.Equal("Sales are currently stopped for this product", decision.Reason)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/products/"+productID.String()+"/record-sale", nil, viewerToken)
		// The kill switch also blocks the authoritative commit path
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Certificate cap reached")
	})

	s.Run("spec lookup resolves the seeded catalog", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		s.recalculate(adminToken)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/availability/spec?max_pax=6&stays=3", nil, "")
		var decision resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &decision)
		s.True(decision.Available)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/products/recommend?party_size=5&stays=3", nil, "")
		var recommendation resdto.RecommendationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &recommendation)
		s.Equal(6, recommendation.MaxPax)
		s.Equal(3, recommendation.Stays)
		s.Equal(18000, recommendation.PriceUSD)
	})
}

func (s *CapacityE2ETestSuite) TestWaitlistFlow() {
	adminToken := s.token(jwt.RoleAdmin)
	body := map[string]any{"email": "guest@example.com", "party_size": 4, "desired_stays": 2}

	s.Run("closed while capacity is healthy", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		s.recalculate(adminToken)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Waitlist is not open")
	})

	s.Run("open under overload, duplicates rejected, count lands in the next snapshot", func() {
		dbtest.CreateTestProperty(s.T(), s.DB, "Villa", 48)
		for range 40 {
			dbtest.CreateTestCertificate(s.T(), s.DB, 2, 1, "active")
		}
		snapshot := s.recalculate(adminToken)
		s.Require().True(snapshot.WaitlistEnabled)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist", body, "")
		s.Equal(http.StatusCreated, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/waitlist", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already on waitlist")

		snapshot = s.recalculate(adminToken)
		s.Equal(1, snapshot.WaitlistCount)
	})
}

func (s *CapacityE2ETestSuite) TestCertificateMaintenance() {
	adminToken := s.token(jwt.RoleAdmin)
	viewerToken := s.token(jwt.RoleViewer)

	s.Run("expiry sweep flips overdue certificates and eligibility follows", func() {
		certID := dbtest.CreateTestCertificate(s.T(), s.DB, 2, 1, "active")
		_, err := s.DB.Exec(context.Background(),
			"UPDATE user_certificates SET year_start = NOW() - INTERVAL '16 years', end_date = NOW() - INTERVAL '1 year' WHERE id = $1",
			certID)
		s.Require().NoError(err)

		url := "/api/certificates/" + certID.String() + "/eligibility"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, viewerToken)
		var eligibility resdto.StayEligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &eligibility)
		s.False(eligibility.Allowed)
		s.Equal("Certificate has expired", eligibility.Reason)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/certificates/expire", nil, adminToken)
		var swept resdto.MaintenanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &swept)
		s.EqualValues(1, swept.Affected)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, viewerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &eligibility)
		s.Equal("Certificate has expired", eligibility.Reason)
	})

	s.Run("expiry sweep includes certificates ending at the sweep instant", func() {
		ctx := context.Background()
		sweepAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		certID := dbtest.CreateTestCertificate(s.T(), s.DB, 2, 1, "active")
		_, err := s.DB.Exec(ctx,
			"UPDATE user_certificates SET year_start = $2, end_date = $3 WHERE id = $1",
			certID, sweepAt.AddDate(-15, 0, 0), sweepAt)
		s.Require().NoError(err)

		repo := repository.NewCertificateRepository(s.DB)
		affected, err := repo.ExpireOverdue(ctx, sweepAt)
		s.Require().NoError(err)
		s.EqualValues(1, affected)

		var status string
		err = s.DB.QueryRow(ctx, "SELECT status FROM user_certificates WHERE id = $1", certID).Scan(&status)
		s.Require().NoError(err)
		s.Equal("expired", status)
	})

	s.Run("annual reset restores the stay allowance after the anniversary", func() {
		certID := dbtest.CreateTestCertificate(s.T(), s.DB, 4, 2, "active")
		_, err := s.DB.Exec(context.Background(),
			"UPDATE user_certificates SET year_start = NOW() - INTERVAL '13 months', remaining_stays = 0 WHERE id = $1",
			certID)
		s.Require().NoError(err)

		url := "/api/certificates/" + certID.String() + "/eligibility"
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, viewerToken)
		var eligibility resdto.StayEligibilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &eligibility)
		s.False(eligibility.Allowed)
		s.Equal("No stays remaining this year", eligibility.Reason)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/certificates/reset-annual", nil, adminToken)
		var swept resdto.MaintenanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &swept)
		s.EqualValues(1, swept.Affected)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil, viewerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &eligibility)
		s.True(eligibility.Allowed)
	})
}
