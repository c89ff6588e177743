package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctorsportal/config"
	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingService struct {
	bookings  map[string][]models.Booking
	byID      map[string]*models.Booking
	created   []models.Booking
	duplicate bool
}

func (f *fakeBookingService) CreateBooking(b models.Booking) (*booking.CreateResult, error) {
	if f.duplicate {
		return &booking.CreateResult{
			AlreadyBooked: true,
			Message:       "You already have a booking on " + b.AppointmentDate,
		}, nil
	}
	f.created = append(f.created, b)
	return &booking.CreateResult{InsertedID: "65a000000000000000000001"}, nil
}

func (f *fakeBookingService) GetBookingsByEmail(email string) ([]models.Booking, error) {
	return f.bookings[email], nil
}

func (f *fakeBookingService) GetBookingByID(id string) (*models.Booking, error) {
	return f.byID[id], nil
}

func (f *fakeBookingService) CreatePaymentIntent(price float64) (string, error) {
	return "pi_test_secret", nil
}

func (f *fakeBookingService) RecordPayment(p models.Payment) (string, error) {
	return "65a000000000000000000002", nil
}

func newBookingRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	p := NewPaymentHandler(svc)
	r.GET("/bookings", middleware.VerifyJWT(), h.GetBookings)
	r.GET("/bookings/:id", h.GetBookingByID)
	r.POST("/bookings", h.CreateBooking)
	r.POST("/create-payment-intent", p.CreatePaymentIntent)
	return r
}

func bearerFor(t *testing.T, email string) string {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	token, err := utils.GenerateToken(email, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGetBookingsEmailMismatchReturns403(t *testing.T) {
	svc := &fakeBookingService{bookings: map[string][]models.Booking{
		"other@example.com": {{TreatmentName: "Cleaning"}},
	}}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=other@example.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "pat@example.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "Cleaning", "no data on a forbidden request")
}

func TestGetBookingsOwnEmail(t *testing.T) {
	svc := &fakeBookingService{bookings: map[string][]models.Booking{
		"pat@example.com": {{TreatmentName: "Cleaning", AppointmentDate: "2024-01-01"}},
	}}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=pat@example.com", nil)
	req.Header.Set("Authorization", bearerFor(t, "pat@example.com"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool             `json:"success"`
		Data    []models.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Cleaning", body.Data[0].TreatmentName)
}

func TestCreateBookingSuccessEnvelope(t *testing.T) {
	svc := &fakeBookingService{}
	r := newBookingRouter(svc)

	payload := `{"treatmentName":"Cleaning","appointmentDate":"2024-01-01","appointmentTime":"10:00","email":"pat@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "insertedId")
	require.Len(t, svc.created, 1)
}

func TestCreateBookingDuplicateIsBusinessFailureNotProtocolError(t *testing.T) {
	svc := &fakeBookingService{duplicate: true}
	r := newBookingRouter(svc)

	payload := `{"treatmentName":"Cleaning","appointmentDate":"2024-01-01","appointmentTime":"10:00","email":"pat@example.com"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Duplicates ride inside a 200, never a 4xx.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "You already have a booking on 2024-01-01")
	assert.Empty(t, svc.created)
}

func TestGetBookingByIDUnknownYieldsNullData(t *testing.T) {
	svc := &fakeBookingService{byID: map[string]*models.Booking{}}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/65a0000000000000000000ff", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":null`)
}

func TestCreatePaymentIntentReturnsClientSecret(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":99}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pi_test_secret")
}
