package router

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/krishimitra/server/internal/domain/models"
	"github.com/krishimitra/server/internal/repository/kv"
	"github.com/krishimitra/server/internal/server/handlers"
	"github.com/krishimitra/server/internal/service/advisory"
	"github.com/krishimitra/server/internal/service/farmer"
	"github.com/krishimitra/server/internal/service/finance"
	"github.com/krishimitra/server/internal/service/market"
	"github.com/krishimitra/server/internal/service/profit"
)

type RouterSuite struct {
	suite.Suite
	engine *gin.Engine
	store  *kv.MemoryStore
}

func (s *RouterSuite) SetupTest() {
	s.store = kv.NewMemoryStore()

	h := Handlers{
		Finance:  handlers.NewFinanceHandler(finance.NewService(s.store, nil, nil), nil),
		Profit:   handlers.NewProfitHandler(profit.NewService(s.store, nil), nil),
		Advisory: handlers.NewAdvisoryHandler(advisory.NewService(s.store, nil, rand.New(rand.NewSource(1)), nil), nil),
		Farmer:   handlers.NewFarmerHandler(farmer.NewService(s.store, nil), nil),
		Market:   handlers.NewMarketHandler(market.NewService(s.store, nil), nil),
	}
	s.engine = New(h, nil)
}

func (s *RouterSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(s.T(), err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder, out any) {
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), out))
}

func (s *RouterSuite) TestHealth() {
	rec := s.get("/health")
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.JSONEq(s.T(), `{"status":"ok"}`, rec.Body.String())
}

func (s *RouterSuite) TestFinanceRecordAndSummary() {
	rec := s.postJSON("/finance/record", gin.H{
		"farmerId": "F1",
		"type":     "income",
		"amount":   50000,
		"category": "crop_sale",
	})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var created struct {
		Success  bool   `json:"success"`
		RecordID string `json:"recordId"`
	}
	s.decode(rec, &created)
	assert.True(s.T(), created.Success)
	assert.NotEmpty(s.T(), created.RecordID)

	rec = s.postJSON("/finance/record", gin.H{
		"farmerId": "F1",
		"type":     "expense",
		"amount":   8000,
		"category": "seeds",
	})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	rec = s.get("/finance/F1")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var view models.LedgerView
	s.decode(rec, &view)
	assert.Len(s.T(), view.Records, 2)
	assert.Equal(s.T(), 50000.0, view.Summary.TotalIncome)
	assert.Equal(s.T(), 8000.0, view.Summary.TotalExpense)
	assert.Equal(s.T(), 42000.0, view.Summary.Profit)
	assert.Equal(s.T(), 84.0, view.Summary.ProfitMargin)
}

func (s *RouterSuite) TestFinanceRecordValidation() {
	rec := s.postJSON("/finance/record", gin.H{
		"farmerId": "F1",
		"type":     "income",
		"category": "crop_sale",
	})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	s.decode(rec, &body)
	assert.NotEmpty(s.T(), body.Error)
}

func (s *RouterSuite) TestFinanceRecordMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/finance/record", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.JSONEq(s.T(), `{"error":"invalid request body"}`, rec.Body.String())
}

func (s *RouterSuite) TestFinanceSummaryUnknownFarmer() {
	rec := s.get("/finance/nobody")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var view models.LedgerView
	s.decode(rec, &view)
	assert.Empty(s.T(), view.Records)
	assert.Zero(s.T(), view.Summary.Profit)
}

func (s *RouterSuite) TestCalculateProfitPath() {
	rec := s.postJSON("/calculate-profit-path", gin.H{
		"currentIncome": 100000,
		"landSize":      2,
		"cropType":      "rice",
	})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var projection models.ProfitPathProjection
	s.decode(rec, &projection)
	assert.Equal(s.T(), 200000.0, projection.TargetIncome)
	assert.Equal(s.T(), 150.0, projection.AchievementPercent)
	assert.Len(s.T(), projection.Strategies, 5)
}

func (s *RouterSuite) TestCalculateProfitPathValidation() {
	rec := s.postJSON("/calculate-profit-path", gin.H{"cropType": "rice"})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
	assert.JSONEq(s.T(), `{"error":"current income and land size are required"}`, rec.Body.String())
}

func (s *RouterSuite) TestIncomeHistory() {
	rec := s.postJSON("/calculate-profit-path", gin.H{
		"currentIncome": 100000,
		"landSize":      2,
	})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	rec = s.get("/farmer-income-history/F1")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var body struct {
		History []models.ProfitCalculation `json:"history"`
	}
	s.decode(rec, &body)
	require.Len(s.T(), body.History, 1)
	assert.Equal(s.T(), 100000.0, body.History[0].CurrentIncome)
}

func (s *RouterSuite) TestPredictYield() {
	rec := s.postJSON("/predict-yield", gin.H{
		"cropType": "rice",
		"soilType": "alluvial",
		"landSize": 2,
	})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var prediction models.YieldPrediction
	s.decode(rec, &prediction)
	assert.Positive(s.T(), prediction.ExpectedYieldPerAcre)
	assert.Len(s.T(), prediction.Recommendations, 3)
}

func (s *RouterSuite) TestPredictYieldValidation() {
	rec := s.postJSON("/predict-yield", gin.H{"landSize": 2})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestCheckSubsidy() {
	rec := s.postJSON("/check-subsidy", gin.H{"landSize": 2, "farmerType": "organic"})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var check models.SubsidyCheck
	s.decode(rec, &check)
	assert.True(s.T(), check.Eligible)
	assert.Len(s.T(), check.EligibleSchemes, 5)
}

func (s *RouterSuite) TestWeatherByLocation() {
	rec := s.get("/weather/Pune")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var forecast models.WeatherForecast
	s.decode(rec, &forecast)
	assert.Equal(s.T(), "Pune", forecast.Location)
	assert.Len(s.T(), forecast.Forecast, 7)
}

func (s *RouterSuite) TestGovernmentSchemes() {
	rec := s.get("/government-schemes")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var body struct {
		Schemes []models.GovernmentScheme `json:"schemes"`
	}
	s.decode(rec, &body)
	assert.Len(s.T(), body.Schemes, 3)
}

func (s *RouterSuite) TestFarmerProfileRoundtrip() {
	rec := s.postJSON("/farmer/profile", gin.H{"name": "Ravi Kumar", "location": "Nashik"})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var body struct {
		Success  bool   `json:"success"`
		FarmerID string `json:"farmerId"`
	}
	s.decode(rec, &body)
	assert.True(s.T(), body.Success)
	assert.NotEmpty(s.T(), body.FarmerID)
}

func (s *RouterSuite) TestMarketplaceRoundtrip() {
	rec := s.postJSON("/marketplace/create-listing", gin.H{
		"farmerId":     "farmer_1",
		"cropType":     "rice",
		"quantity":     50,
		"pricePerUnit": 2100,
	})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	rec = s.get("/marketplace/listings")
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var body struct {
		Listings []models.Listing `json:"listings"`
	}
	s.decode(rec, &body)
	require.Len(s.T(), body.Listings, 1)
	assert.Equal(s.T(), "active", body.Listings[0].Status)
}

func (s *RouterSuite) TestMarketplaceValidation() {
	rec := s.postJSON("/marketplace/create-listing", gin.H{"farmerId": "farmer_1"})
	assert.Equal(s.T(), http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestCORSHeaders() {
	req := httptest.NewRequest(http.MethodOptions, "/finance/record", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	assert.Equal(s.T(), http.StatusNoContent, rec.Code)
	assert.Equal(s.T(), "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}
