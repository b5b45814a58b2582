package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ngogiaquyen/coinshop/internal/domain"
)

func TestHandleRegister(t *testing.T) {
	accountID := uuid.NewString()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockEconomyService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Success grants starting balance",
			body: `{"username": "mandarin_learner"}`,
			setupMock: func(m *MockEconomyService) {
				m.On("Register", mock.Anything, "mandarin_learner").
					Return(&domain.Account{ID: accountID, Username: "mandarin_learner", Balance: 2500}, nil)
			},
			expectedStatus: http.StatusCreated,
			verifyBody: func(t *testing.T, body string) {
				var resp RegisterResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, accountID, resp.AccountID)
				assert.Equal(t, int64(2500), resp.Balance)
			},
		},
		{
			name:           "Username too short",
			body:           `{"username": "ab"}`,
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name:           "Username with spaces",
			body:           `{"username": "two words"}`,
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name: "Duplicate username",
			body: `{"username": "mandarin_learner"}`,
			setupMock: func(m *MockEconomyService) {
				m.On("Register", mock.Anything, "mandarin_learner").Return(nil, domain.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			verifyBody: func(t *testing.T, body string) {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, KindConflict, resp.Kind)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockEconomyService)
			tt.setupMock(mockSvc)

			handler := HandleRegister(mockSvc)

			req := httptest.NewRequest("POST", "/account/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
