package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance-portal/internal/models"
)

func (s *PortalSuite) TestOnlyLeadsCreateEvents() {
	recorder := s.request(http.MethodPost, "/v1/events", s.tokenFor(s.finance), gin.H{
		"title": "Finance Offsite",
		"type":  "EVENT",
	})
	s.Equal(http.StatusForbidden, recorder.Code)

	recorder = s.request(http.MethodPost, "/v1/events", s.tokenFor(s.lead), gin.H{
		"title": "Finance Offsite",
		"type":  "EVENT",
	})
	s.Equal(http.StatusCreated, recorder.Code, recorder.Body.String())
}

func (s *PortalSuite) TestCreateEventRejectsUnknownType() {
	recorder := s.request(http.MethodPost, "/v1/events", s.tokenFor(s.lead), gin.H{
		"title": "Mystery Gathering",
		"type":  "PARTY",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *PortalSuite) TestLeadsOnlySeeTheirOwnEvents() {
	s.createEvent("Lead Event")

	otherLead := s.createUser("other-lead@portal.test", models.RoleEventTeamLead)
	recorder := s.request(http.MethodPost, "/v1/events", s.tokenFor(otherLead), gin.H{
		"title": "Other Lead Event",
		"type":  "SEMINAR",
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = s.request(http.MethodGet, "/v1/events", s.tokenFor(s.lead), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var events []models.Event
	s.decode(recorder, &events)
	s.Require().Len(events, 1)
	s.Equal("Lead Event", events[0].Title)

	// finance reviews everything
	recorder = s.request(http.MethodGet, "/v1/events", s.tokenFor(s.finance), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	s.decode(recorder, &events)
	s.Len(events, 2)
}

func (s *PortalSuite) TestFacilitiesOnlySeeApprovedEvents() {
	s.createEvent("Still Pending")
	s.approvedEvent("Ready To Run", 200, 200)

	recorder := s.request(http.MethodGet, "/v1/events", s.tokenFor(s.facilities), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var events []models.Event
	s.decode(recorder, &events)
	s.Require().Len(events, 1)
	s.Equal("Ready To Run", events[0].Title)
}

func (s *PortalSuite) TestCompletionOnlyFromApproved() {
	pending := s.createEvent("Not Yet Decided")

	recorder := s.request(http.MethodPut,
		fmt.Sprintf("/v1/events/%s", pending.ID), s.tokenFor(s.lead),
		gin.H{"status": "COMPLETED"})
	s.Equal(http.StatusConflict, recorder.Code)

	approved := s.approvedEvent("Done And Dusted", 300, 300)
	recorder = s.request(http.MethodPut,
		fmt.Sprintf("/v1/events/%s", approved.ID), s.tokenFor(s.lead),
		gin.H{"status": "COMPLETED"})
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var updated models.Event
	s.decode(recorder, &updated)
	s.Equal(models.StatusCompleted, updated.Status)
}

func (s *PortalSuite) TestDeleteBlockedByRecordedExpenses() {
	event := s.approvedEvent("Spent Already", 500, 500)
	recorder := s.recordExpense(event.ID, 1, 100, 100)
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = s.request(http.MethodDelete,
		fmt.Sprintf("/v1/events/%s", event.ID), s.tokenFor(s.lead), nil)
	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *PortalSuite) TestVenueAssignment() {
	event := s.approvedEvent("Needs A Room", 400, 400)

	recorder := s.request(http.MethodPost, "/v1/venues", s.tokenFor(s.facilities), gin.H{
		"name":     "Main Auditorium",
		"location": "Block A",
	})
	s.Require().Equal(http.StatusCreated, recorder.Code, recorder.Body.String())

	var venue models.Venue
	s.decode(recorder, &venue)

	recorder = s.request(http.MethodGet, "/v1/venues/events-for-assignment", s.tokenFor(s.facilities), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var unassigned []models.Event
	s.decode(recorder, &unassigned)
	s.Require().Len(unassigned, 1)
	s.Equal(event.ID, unassigned[0].ID)

	recorder = s.request(http.MethodPost,
		fmt.Sprintf("/v1/venues/%s/assign/%s", venue.ID, event.ID), s.tokenFor(s.facilities), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())

	var assigned models.Event
	s.decode(recorder, &assigned)
	s.Equal("Main Auditorium", assigned.Venue)

	recorder = s.request(http.MethodGet, "/v1/venues/events-for-assignment", s.tokenFor(s.facilities), nil)
	s.Require().Equal(http.StatusOK, recorder.Code, recorder.Body.String())
	s.decode(recorder, &unassigned)
	s.Empty(unassigned)
}
