//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"innkeeper/internal/handler/api"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"
	"innkeeper/tests/common/builder"
	"innkeeper/tests/common/httptest"
	"innkeeper/tests/common/testutil"
	commandsmock "innkeeper/tests/mock/commands"
	queriesmock "innkeeper/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuestHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGuestCommands
	mockQueries  *queriesmock.MockGuestQueries
	handler      *api.GuestHandler
}

func (s *GuestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGuestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.handler = api.NewGuestHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/guests", s.handler.CreateGuest)
	s.router.GET("/guests", s.handler.ListGuests)
	s.router.GET("/guests/:id", s.handler.GetGuest)
	s.router.POST("/guests/:id/documents", s.handler.AddDocument)
}

func (s *GuestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestHandlerTestSuite))
}

func (s *GuestHandlerTestSuite) TestCreateGuest() {
	url := "/guests"

	b := builder.NewGuestBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with the stored view", func() {
		s.mockCommands.EXPECT().CreateGuest(gomock.Any(), reqBody).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Email, response.Email)
	})

	s.Run("error: 409 Conflict on a duplicate email", func() {
		s.mockCommands.EXPECT().CreateGuest(gomock.Any(), reqBody).
			Return(uuid.Nil, errs.Mark(errs.New("duplicate"), commands.ErrDuplicateEmail)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateGuest(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrGuestValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 400 Bad Request on malformed payloads", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *GuestHandlerTestSuite) TestListGuests() {
	s.Run("success: returns all guests", func() {
		views := []*queries.GuestView{
			builder.NewGuestBuilder().BuildView(),
			builder.NewGuestBuilder().WithEmail("grace@example.com").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests", nil, "")

		var response []resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

func (s *GuestHandlerTestSuite) TestGetGuest() {
	returnView := builder.NewGuestBuilder().BuildView()

	s.Run("success: returns 200 OK with documents included", func() {
		returnView.Documents = []queries.DocumentView{{Type: "PASSPORT", Number: "X1234567"}}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/"+returnView.ID.String(), nil, "")

		var response resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Len(response.Documents, 1)
	})

	s.Run("error: 404 Not Found for an unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("guest not found", errs.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Guest not found")
	})
}

func (s *GuestHandlerTestSuite) TestAddDocument() {
	returnView := builder.NewGuestBuilder().BuildView()
	url := "/guests/" + returnView.ID.String() + "/documents"
	reqBody := map[string]any{"type": "PASSPORT", "number": "X1234567"}

	s.Run("success: returns 201 Created with the refreshed view", func() {
		s.mockCommands.EXPECT().AddDocument(gomock.Any(), returnView.ID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 409 Conflict on a duplicate document", func() {
		s.mockCommands.EXPECT().AddDocument(gomock.Any(), returnView.ID, gomock.Any()).
			Return(errs.Mark(errs.New("duplicate"), commands.ErrDuplicateDocument)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 404 Not Found for an unknown guest", func() {
		s.mockCommands.EXPECT().AddDocument(gomock.Any(), returnView.ID, gomock.Any()).
			Return(commands.ErrGuestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Guest not found")
	})

	s.Run("error: 400 Bad Request on an unsupported document type", func() {
		body := map[string]any{"type": "DRIVERS_LICENSE", "number": "X1234567"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
