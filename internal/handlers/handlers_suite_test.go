package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"finance-portal/config"
	"finance-portal/internal/models"
	"finance-portal/internal/server"
)

const testSecret = "portal-test-secret"

var dbCounter int64

// PortalSuite runs the HTTP API against an in-memory database with one
// seeded user per role that the scenarios need.
type PortalSuite struct {
	suite.Suite

	db     *gorm.DB
	router *gin.Engine

	lead       models.User
	finance    models.User
	facilities models.User
	admin      models.User

	equipment    models.BudgetCategory
	refreshments models.BudgetCategory
}

func TestPortalSuite(t *testing.T) {
	suite.Run(t, new(PortalSuite))
}

func (s *PortalSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.T().Setenv("JWT_SECRET", testSecret)
}

func (s *PortalSuite) SetupTest() {
	// A named shared-cache database keeps one schema per test across the
	// pool's connections.
	dsn := fmt.Sprintf("file:portal%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(config.Migrate(db))
	s.db = db

	s.lead = s.createUser("lead@portal.test", models.RoleEventTeamLead)
	s.finance = s.createUser("finance@portal.test", models.RoleFinanceTeam)
	s.facilities = s.createUser("facilities@portal.test", models.RoleFacilitiesTeam)
	s.admin = s.createUser("admin@portal.test", models.RoleAdmin)

	s.equipment = s.createCategory("Equipment", 1)
	s.refreshments = s.createCategory("Refreshments", 2)

	s.router = gin.New()
	server.SetupRoutes(s.router, db)
}

func (s *PortalSuite) createUser(email string, role models.Role) models.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	s.Require().NoError(err)

	user := models.User{
		Email:    email,
		Password: string(hashed),
		Name:     string(role),
		Role:     role,
		IsActive: true,
	}
	s.Require().NoError(s.db.Create(&user).Error)
	return user
}

func (s *PortalSuite) createCategory(name string, order int) models.BudgetCategory {
	category := models.BudgetCategory{Name: name, Order: order, IsActive: true}
	s.Require().NoError(s.db.Create(&category).Error)
	return category
}

func (s *PortalSuite) tokenFor(user models.User) string {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	s.Require().NoError(err)
	return token
}

func (s *PortalSuite) request(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *PortalSuite) decode(recorder *httptest.ResponseRecorder, target interface{}) {
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), target))
}

// createEvent drives the API as the lead and returns the created event.
func (s *PortalSuite) createEvent(title string) models.Event {
	recorder := s.request(http.MethodPost, "/v1/events", s.tokenFor(s.lead), gin.H{
		"title": title,
		"type":  "TECHNICAL",
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var event models.Event
	s.decode(recorder, &event)
	return event
}

func (s *PortalSuite) submitBudget(eventID uuid.UUID, categoryID uuid.UUID, amount, sponsor float64) *httptest.ResponseRecorder {
	return s.request(http.MethodPost, fmt.Sprintf("/v1/events/%s/budgets", eventID), s.tokenFor(s.lead), gin.H{
		"budgets": []gin.H{
			{"categoryId": categoryID, "amount": amount, "sponsorContribution": sponsor},
		},
	})
}

func (s *PortalSuite) approve(eventID uuid.UUID, body gin.H) *httptest.ResponseRecorder {
	return s.request(http.MethodPost, fmt.Sprintf("/v1/events/%s/budgets/approve", eventID), s.tokenFor(s.finance), body)
}
