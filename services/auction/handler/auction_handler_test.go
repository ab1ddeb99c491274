package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	auction "fantasy-auction/internal/auctionService"
	"fantasy-auction/internal/auctionerrors"
	model "fantasy-auction/internal/models"
	"fantasy-auction/internal/server"
	"fantasy-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *handler.MockAuctionServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := handler.NewMockAuctionServiceInterface(ctrl)
	return server.SetupRouter(mockService, nil), mockService
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))
	return env
}

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setupMock  func(m *handler.MockAuctionServiceInterface)
		wantStatus int
	}{
		{
			name: "created",
			body: gin.H{"username": "alice", "email": "alice@example.com"},
			setupMock: func(m *handler.MockAuctionServiceInterface) {
				m.EXPECT().CreateUser("alice", "alice@example.com").
					Return(model.User{UserID: "u1", Username: "alice", Email: "alice@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing email rejected by binding",
			body:       gin.H{"username": "alice"},
			setupMock:  func(m *handler.MockAuctionServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tt.setupMock(mockService)

			recorder := doJSON(t, router, http.MethodPost, "/api/users", tt.body)
			require.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestPlaceBidHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setupMock  func(m *handler.MockAuctionServiceInterface)
		wantStatus int
		wantError  string
	}{
		{
			name: "bid accepted",
			body: gin.H{"user_id": "u1", "amount": 2_000_000},
			setupMock: func(m *handler.MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid("t1", "u1", int64(2_000_000)).Return(model.Bid{
					BidID:        "b1",
					TournamentID: "t1",
					UserID:       "u1",
					TeamID:       "team1",
					Amount:       2_000_000,
					CreatedAt:    time.Date(2026, 3, 1, 12, 0, 30, 0, time.UTC),
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown tournament",
			body: gin.H{"user_id": "u1", "amount": 2_000_000},
			setupMock: func(m *handler.MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid("t1", "u1", int64(2_000_000)).
					Return(model.Bid{}, auctionerrors.ErrTournamentNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "outbid",
			body: gin.H{"user_id": "u1", "amount": 2_000_000},
			setupMock: func(m *handler.MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid("t1", "u1", int64(2_000_000)).
					Return(model.Bid{}, auctionerrors.ErrNotHighest)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "over budget",
			body: gin.H{"user_id": "u1", "amount": 600_000_000},
			setupMock: func(m *handler.MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid("t1", "u1", int64(600_000_000)).
					Return(model.Bid{}, auctionerrors.ErrOverBudget)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero amount rejected by binding",
			body:       gin.H{"user_id": "u1", "amount": 0},
			setupMock:  func(m *handler.MockAuctionServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tt.setupMock(mockService)

			recorder := doJSON(t, router, http.MethodPost, "/api/tournaments/t1/bid", tt.body)
			require.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				env := decodeEnvelope(t, recorder)
				var bid struct {
					BidID     string `json:"bid_id"`
					Amount    int64  `json:"amount"`
					CreatedAt string `json:"created_at"`
				}
				require.NoError(t, json.Unmarshal(env.Data, &bid))
				require.Equal(t, "b1", bid.BidID)
				require.Equal(t, int64(2_000_000), bid.Amount)
				require.Equal(t, "2026-03-01T12:00:30Z", bid.CreatedAt)
			}
		})
	}
}

func TestStartAuctionHandler(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m *handler.MockAuctionServiceInterface)
		wantStatus int
	}{
		{
			name: "started",
			setupMock: func(m *handler.MockAuctionServiceInterface) {
				m.EXPECT().StartAuction("t1", "admin1").
					Return(model.Tournament{TournamentID: "t1", Status: model.StatusAuctionActive, CurrentTeamID: "team1"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "non-admin forbidden",
			setupMock: func(m *handler.MockAuctionServiceInterface) {
				m.EXPECT().StartAuction("t1", "admin1").
					Return(model.Tournament{}, auctionerrors.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "already started",
			setupMock: func(m *handler.MockAuctionServiceInterface) {
				m.EXPECT().StartAuction("t1", "admin1").
					Return(model.Tournament{}, auctionerrors.ErrNotPending)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newTestRouter(t)
			tt.setupMock(mockService)

			recorder := doJSON(t, router, http.MethodPost, "/api/tournaments/t1/start-auction",
				gin.H{"admin_id": "admin1"})
			require.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestJoinByCodeHandler(t *testing.T) {
	t.Run("joined", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		mockService.EXPECT().JoinByCode("AB12CD", "u2").
			Return(model.Tournament{TournamentID: "t1", Participants: []string{"u1", "u2"}}, nil)

		recorder := doJSON(t, router, http.MethodPost, "/api/tournaments/join-by-code",
			gin.H{"join_code": "AB12CD", "user_id": "u2"})
		require.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		mockService.EXPECT().JoinByCode("NOPE99", "u2").
			Return(model.Tournament{}, auctionerrors.ErrTournamentNotFound)

		recorder := doJSON(t, router, http.MethodPost, "/api/tournaments/join-by-code",
			gin.H{"join_code": "NOPE99", "user_id": "u2"})
		require.Equal(t, http.StatusNotFound, recorder.Code)

		env := decodeEnvelope(t, recorder)
		require.Equal(t, "tournament not found", env.Message)
	})
}

func TestAdvanceTeamHandler(t *testing.T) {
	t.Run("advanced with winner", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		deadline := time.Date(2026, 3, 1, 12, 2, 0, 0, time.UTC)
		mockService.EXPECT().AdvanceTeam("t1").Return(auction.AdvanceResult{
			NextTeamID: "team2",
			BidEndTime: &deadline,
			WinningBid: &model.Bid{BidID: "b1", TeamID: "team1", UserID: "u1", Amount: 5_000_000},
		}, nil)

		recorder := doJSON(t, router, http.MethodPost, "/api/tournaments/t1/advance", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		env := decodeEnvelope(t, recorder)
		require.Equal(t, "advanced to next team", env.Message)

		var resp struct {
			Completed  bool   `json:"completed"`
			NextTeamID string `json:"next_team_id"`
			BidEndTime string `json:"bid_end_time"`
			WinningBid *struct {
				Amount int64 `json:"amount"`
			} `json:"winning_bid"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &resp))
		require.False(t, resp.Completed)
		require.Equal(t, "team2", resp.NextTeamID)
		require.Equal(t, "2026-03-01T12:02:00Z", resp.BidEndTime)
		require.NotNil(t, resp.WinningBid)
		require.Equal(t, int64(5_000_000), resp.WinningBid.Amount)
	})

	t.Run("completed", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		mockService.EXPECT().AdvanceTeam("t1").Return(auction.AdvanceResult{Completed: true}, nil)

		recorder := doJSON(t, router, http.MethodPost, "/api/tournaments/t1/advance", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		require.Equal(t, "auction completed", decodeEnvelope(t, recorder).Message)
	})

	t.Run("not active", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		mockService.EXPECT().AdvanceTeam("t1").
			Return(auction.AdvanceResult{}, auctionerrors.ErrAuctionNotActive)

		recorder := doJSON(t, router, http.MethodPost, "/api/tournaments/t1/advance", nil)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetTournamentHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		mockService.EXPECT().GetTournament("t1").Return(model.Tournament{
			TournamentID: "t1",
			Name:         "friends league",
			JoinCode:     "AB12CD",
			Status:       model.StatusPending,
		}, nil)

		recorder := doJSON(t, router, http.MethodGet, "/api/tournaments/t1", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		env := decodeEnvelope(t, recorder)
		var tournament model.Tournament
		require.NoError(t, json.Unmarshal(env.Data, &tournament))
		require.Equal(t, "AB12CD", tournament.JoinCode)
	})

	t.Run("not found", func(t *testing.T) {
		router, mockService := newTestRouter(t)
		mockService.EXPECT().GetTournament("ghost").
			Return(model.Tournament{}, auctionerrors.ErrTournamentNotFound)

		recorder := doJSON(t, router, http.MethodGet, "/api/tournaments/ghost", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestListHandlersReturnEmptySlices(t *testing.T) {
	router, mockService := newTestRouter(t)
	mockService.EXPECT().GetBids("t1").Return(nil, nil)
	mockService.EXPECT().GetSquads("t1").Return(nil, nil)
	mockService.EXPECT().GetChatMessages("t1").Return(nil, nil)

	for _, path := range []string{
		"/api/tournaments/t1/bids",
		"/api/tournaments/t1/squads",
		"/api/tournaments/t1/chat",
	} {
		recorder := doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		env := decodeEnvelope(t, recorder)
		require.Equal(t, "[]", string(env.Data), "path %s", path)
	}
}
