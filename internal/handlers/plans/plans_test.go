package plans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/dto"
	planservice "github.com/hescoapp/hesco/internal/service/planservice"
	"github.com/hescoapp/hesco/pkg/auth"
)

func NewMock(t *testing.T) (*PlanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newAuthedRequest(method, target, body string, urlParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, 1)
	if len(urlParams) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range urlParams {
			rctx.URLParams.Add(key, value)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestGetPlansHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetPlans(gomock.Any()).Return([]domain.Plan{
		{ID: 1, Name: "Starter", Price: 500, Currency: "KES", DurationMonths: 1, IsActive: true},
		{ID: 2, Name: "Bronze", Price: 1000, Currency: "KES", DurationMonths: 1, IsActive: true},
	}, nil)

	req := newAuthedRequest(http.MethodGet, "/api/user/plans", "", nil)
	rec := httptest.NewRecorder()
	handler.GetPlans(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response []dto.PlanResponseDTO
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response, 2)
}

func TestSubmitPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		applicationID string
		body          string
		prepareMock   func()
		expectedCode  int
	}{
		{
			name:          "Message accepted",
			applicationID: "5",
			body:          `{"mpesa_number":"254700000001","mpesa_message":"QGH7K2M1XY Confirmed. Ksh1,000.00 sent to HESCO"}`,
			prepareMock: func() {
				service.EXPECT().
					SubmitPayment(gomock.Any(), 1, 5, "254700000001", "QGH7K2M1XY Confirmed. Ksh1,000.00 sent to HESCO").
					Return(&domain.PaymentSubmission{
						ID:            9,
						UserID:        1,
						ApplicationID: 5,
						MpesaNumber:   "254700000001",
						MpesaMessage:  "QGH7K2M1XY Confirmed. Ksh1,000.00 sent to HESCO",
						Amount:        1000,
						Status:        domain.PaymentSubmissionPending,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid application id",
			applicationID: "abc",
			body:          `{"mpesa_message":"msg"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:          "Invalid request body",
			applicationID: "5",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:          "Missing confirmation message",
			applicationID: "5",
			body:          `{"mpesa_number":"254700000001","mpesa_message":"  "}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
		},
		{
			name:          "Unknown application",
			applicationID: "5",
			body:          `{"mpesa_message":"msg"}`,
			prepareMock: func() {
				service.EXPECT().SubmitPayment(gomock.Any(), 1, 5, "", "msg").
					Return(nil, planservice.ErrApplicationNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:          "Application already processed",
			applicationID: "5",
			body:          `{"mpesa_message":"msg"}`,
			prepareMock: func() {
				service.EXPECT().SubmitPayment(gomock.Any(), 1, 5, "", "msg").
					Return(nil, planservice.ErrAlreadyProcessed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:          "Internal error",
			applicationID: "5",
			body:          `{"mpesa_message":"msg"}`,
			prepareMock: func() {
				service.EXPECT().SubmitPayment(gomock.Any(), 1, 5, "", "msg").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newAuthedRequest(http.MethodPost, "/api/user/applications/"+tt.applicationID+"/payment", tt.body,
				map[string]string{"id": tt.applicationID})
			rec := httptest.NewRecorder()
			handler.SubmitPayment(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var response dto.PaymentSubmissionResponseDTO
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, 9, response.ID)
				assert.Equal(t, 5, response.ApplicationID)
				assert.Equal(t, "pending", response.Status)
				assert.Equal(t, "QGH7K2M1XY Confirmed. Ksh1,000.00 sent to HESCO", response.MpesaMessage)
			}
		})
	}
}
