package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/model"
	"leagueportal/internal/service"
)

const registrationBody = `{
	"playerPhoto": "https://cdn.test/p.jpg",
	"playerName": "Ravi Kumar",
	"contactNumber": "9000000001",
	"dateOfBirth": "2001-04-12",
	"aadharNumber": "123412341234",
	"village": "Laharighat",
	"postOffice": "Laharighat",
	"policeStation": "Laharighat",
	"city": "Morigaon",
	"gpSelection": "GP-1",
	"parentName": "Mohan Kumar",
	"parentContact": "9000000002",
	"emergencyContactName": "Mohan Kumar",
	"emergencyPhone": "9000000002",
	"bowlingStyle": [],
	"battingStyle": ["Right Hand"],
	"primaryRole": "Batsman"
}`

func TestPlayerHandler_Register(t *testing.T) {
	user := testUser(model.RoleUser)

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockPlayerService)
		wantStatus int
	}{
		{
			name: "created",
			body: registrationBody,
			setupMock: func(m *MockPlayerService) {
				m.On("Register", mock.Anything, user.ID, mock.MatchedBy(func(in service.RegisterPlayerInput) bool {
					return in.PlayerName == "Ravi Kumar" && in.PrimaryRole == "Batsman" &&
						len(in.BattingStyle) == 1 && in.GPSelection == "GP-1"
				})).Return(&model.Player{
					ID:            uuid.New(),
					PlayerName:    "Ravi Kumar",
					PaymentStatus: model.PaymentStatusPending,
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       `{"playerName":"Ravi Kumar"}`,
			setupMock:  func(*MockPlayerService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "already registered",
			body: registrationBody,
			setupMock: func(m *MockPlayerService) {
				m.On("Register", mock.Anything, user.ID, mock.Anything).Return(nil, apperrors.ErrPlayerAlreadyRegistered)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPlayerService)
			tt.setupMock(svc)
			env := newTestEnv()
			h := NewPlayerHandler(svc)
			env.e.POST("/api/players/register", h.Register, env.authMW)

			rec := env.do(http.MethodPost, "/api/players/register", tt.body, echo.MIMEApplicationJSON, env.token(t, user))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var resp RegisterPlayerResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, model.PaymentStatusPending, resp.Player.PaymentStatus)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestPlayerHandler_MeNotRegistered(t *testing.T) {
	user := testUser(model.RoleUser)
	svc := new(MockPlayerService)
	svc.On("GetForUser", mock.Anything, user.ID).Return(nil, nil)
	env := newTestEnv()
	env.e.GET("/api/players/me", NewPlayerHandler(svc).Me, env.authMW)

	rec := env.do(http.MethodGet, "/api/players/me", "", "", env.token(t, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"player":null}`, rec.Body.String())
}
