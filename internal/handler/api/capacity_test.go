//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"weekchain-capacity/internal/handler/api"
	resdto "weekchain-capacity/internal/handler/dto/response"
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/usecase/queries"
	"weekchain-capacity/tests/common/builder"
	"weekchain-capacity/tests/common/httptest"
	commandsmock "weekchain-capacity/tests/mock/commands"
	queriesmock "weekchain-capacity/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CapacityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCapacityCommands
	mockQueries  *queriesmock.MockCapacityQueries
	handler      *api.CapacityHandler
}

func (s *CapacityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCapacityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCapacityQueries(s.mockCtrl)
	s.handler = api.NewCapacityHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/capacity/status", s.handler.Status)
	s.router.POST("/capacity/recalculate", s.handler.Recalculate)
	s.router.GET("/capacity/history", s.handler.History)
}

func (s *CapacityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCapacityHandlerSuite(t *testing.T) {
	suite.Run(t, new(CapacityHandlerTestSuite))
}

func (s *CapacityHandlerTestSuite) TestStatus() {
	s.Run("success: returns 200 OK with the latest snapshot", func() {
		view := builder.NewSnapshotBuilder().BuildView()
		s.mockQueries.EXPECT().Latest(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity/status", nil, "")

		var response resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal(view.SafeCapacity, response.SafeCapacity)
		s.Equal(view.SystemStatus, response.SystemStatus)
	})

	s.Run("error: 404 Not Found before the first calculation", func() {
		s.mockQueries.EXPECT().Latest(gomock.Any()).
			Return(nil, errs.ErrSnapshotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity/status", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No capacity snapshot recorded yet")
	})

	s.Run("error: 500 on read failure", func() {
		s.mockQueries.EXPECT().Latest(gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity/status", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load capacity status")
	})
}

func (s *CapacityHandlerTestSuite) TestRecalculate() {
	s.Run("success: returns 201 Created with the new snapshot", func() {
		view := builder.NewSnapshotBuilder().BuildView()
		s.mockCommands.EXPECT().RunCalculation(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/capacity/recalculate", nil, "")

		var response resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.SystemStatus, response.SystemStatus)
	})

	s.Run("error: 500 when the calculation fails", func() {
		s.mockCommands.EXPECT().RunCalculation(gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/capacity/recalculate", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Capacity calculation failed")
	})
}

func (s *CapacityHandlerTestSuite) TestHistory() {
	s.Run("success: passes the limit through", func() {
		views := []*queries.SnapshotView{
			builder.NewSnapshotBuilder().BuildView(),
			builder.NewSnapshotBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().History(gomock.Any(), 5).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity/history?limit=5", nil, "")

		var response []*resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: omitted limit defaults downstream", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), 0).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity/history", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on an out-of-range limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity/history?limit=400", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 500 on read failure", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), 0).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/capacity/history", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load snapshot history")
	})
}
