package handlers_test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-portal/internal/models"
)

func (s *PortalSuite) TestLoginIssuesUsableToken() {
	recorder := s.request(http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "finance@portal.test",
		"password": "password123",
	})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var payload struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	s.decode(recorder, &payload)
	s.NotEmpty(payload.Token)
	s.Equal(models.RoleFinanceTeam, payload.User.Role)
	s.NotContains(recorder.Body.String(), "password")

	recorder = s.request(http.MethodGet, "/v1/auth/me", payload.Token, nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var me models.User
	s.decode(recorder, &me)
	s.Equal(s.finance.ID, me.ID)
}

func (s *PortalSuite) TestLoginRejectsBadCredentials() {
	recorder := s.request(http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "finance@portal.test",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *PortalSuite) TestDeactivatedUserCannotLogin() {
	s.Require().NoError(s.db.Model(&models.User{}).
		Where("id = ?", s.lead.ID).Update("is_active", false).Error)

	recorder := s.request(http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "lead@portal.test",
		"password": "password123",
	})
	s.Equal(http.StatusUnauthorized, recorder.Code)

	// an already-issued token dies at the startup check too
	recorder = s.request(http.MethodGet, "/v1/auth/me", s.tokenFor(s.lead), nil)
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *PortalSuite) TestRequestsWithoutTokenAreRejected() {
	recorder := s.request(http.MethodGet, "/v1/events", "", nil)
	s.Equal(http.StatusUnauthorized, recorder.Code)

	recorder = s.request(http.MethodGet, "/v1/events", "not-a-jwt", nil)
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *PortalSuite) TestNavigationPayload() {
	recorder := s.request(http.MethodGet, "/v1/navigation", s.tokenFor(s.finance), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var payload struct {
		Dashboard string `json:"dashboard"`
		Menu      []struct {
			Label string `json:"label"`
			Path  string `json:"path"`
		} `json:"menu"`
		AllowedPaths []string `json:"allowedPaths"`
	}
	s.decode(recorder, &payload)
	s.Equal("FinanceDashboard", payload.Dashboard)
	s.Require().NotEmpty(payload.Menu)
	s.Equal("/", payload.Menu[0].Path)
	s.Contains(payload.AllowedPaths, "/finance/budgets")
	s.NotContains(payload.AllowedPaths, "/admin/users")
}

func (s *PortalSuite) TestChangePassword() {
	recorder := s.request(http.MethodPost, "/v1/auth/change-password", s.tokenFor(s.lead), gin.H{
		"currentPassword": "password123",
		"newPassword":     "betterpassword",
	})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	recorder = s.request(http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "lead@portal.test",
		"password": "betterpassword",
	})
	s.Equal(http.StatusOK, recorder.Code)

	recorder = s.request(http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "lead@portal.test",
		"password": "password123",
	})
	s.Equal(http.StatusUnauthorized, recorder.Code)
}
