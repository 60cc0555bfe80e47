//go:build integration_test || all_tests

package integration_testing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/workoutdelivery/internal/civil"
	"github.com/2beens/workoutdelivery/internal/config"
	"github.com/2beens/workoutdelivery/internal/delivery"
	"github.com/2beens/workoutdelivery/internal/distribution"
	"github.com/2beens/workoutdelivery/internal/middleware"
	"github.com/2beens/workoutdelivery/internal/replies"
	"github.com/2beens/workoutdelivery/internal/schedule"
	"github.com/2beens/workoutdelivery/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) newUserWithPlan(sessions int) (ownerID, phone string) {
	ownerID = uuid.NewString()
	phone = gofakeit.Numerify("55119########")

	_, err := s.DB.Exec(`
		INSERT INTO app_user (id, name, phone, delivery_opt_in) VALUES ($1, $2, $3, true)
	`, ownerID, gofakeit.Name(), "+"+phone)
	require.NoError(s.T(), err)

	planSessions := make([]workouts.Session, 0, sessions)
	for i := 0; i < sessions; i++ {
		planSessions = append(planSessions, workouts.Session{
			Title: fmt.Sprintf("Treino %c", 'A'+i),
			Exercises: []workouts.Exercise{
				{Name: gofakeit.Noun(), Sets: 3, Reps: "12", RestSeconds: 60},
			},
		})
	}
	sessionsJSON, err := json.Marshal(planSessions)
	require.NoError(s.T(), err)

	_, err = s.DB.Exec(`
		INSERT INTO workout_plan (owner_id, sessions, is_active, is_fallback, created_at)
		VALUES ($1, $2, true, false, now())
	`, ownerID, string(sessionsJSON))
	require.NoError(s.T(), err)

	return ownerID, phone
}

func (s *IntegrationTestSuite) today() civil.Date {
	clock, err := civil.NewClockForZone(config.DefaultCivilTimezone)
	require.NoError(s.T(), err)
	return clock.Today()
}

func (s *IntegrationTestSuite) runDistribution(ctx context.Context, adminToken string) (*http.Response, *distribution.RunResult) {
	req, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/distribution/run", nil)
	require.NoError(s.T(), err)
	req.Header.Set(middleware.AdminTokenHeader, adminToken)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	var result distribution.RunResult
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&result))
	return resp, &result
}

func (s *IntegrationTestSuite) postReply(ctx context.Context, messageID, phone, text string) replies.WebhookResponse {
	body, err := json.Marshal(replies.WebhookMessage{
		FromPhone:   phone,
		MessageText: text,
		MessageID:   messageID,
		Timestamp:   time.Now().UnixMilli(),
	})
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/webhook/messages", bytes.NewReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.WebhookSecretHeader, testWebhookSecret)

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var webhookResp replies.WebhookResponse
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&webhookResp))
	return webhookResp
}

func (s *IntegrationTestSuite) instanceStatus(ownerID string, date civil.Date) string {
	var status string
	err := s.DB.QueryRow(`
		SELECT delivery_status FROM workout_instance WHERE owner_id = $1 AND date = $2
	`, ownerID, date.String()).Scan(&status)
	require.NoError(s.T(), err)
	return status
}

func (s *IntegrationTestSuite) TestDistributionRun_Unauthorized() {
	resp, result := s.runDistribution(context.Background(), "not-the-token")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Nil(result)
}

func (s *IntegrationTestSuite) TestDistributionAndReply() {
	ctx := context.Background()
	today := s.today()
	if today.Weekday() == time.Sunday {
		s.T().Skip("sunday is always a rest day")
	}

	ownerID, phone := s.newUserWithPlan(6)

	resp, result := s.runDistribution(ctx, testAdminToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NotNil(result)
	s.Equal(today, result.Date)
	s.GreaterOrEqual(result.Sent, 1)
	s.Require().Len(s.sentTo(phone), 1)
	s.Equal(string(workouts.DeliverySent), s.instanceStatus(ownerID, today))

	// same day re-run does not send again
	resp, _ = s.runDistribution(ctx, testAdminToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(s.sentTo(phone), 1)

	firstID := uuid.NewString()
	webhookResp := s.postReply(ctx, firstID, phone, "Feito!")
	s.True(webhookResp.Processed)
	s.Require().NotNil(webhookResp.Outcome)
	s.True(webhookResp.Outcome.Completed)
	s.Equal(10, webhookResp.Outcome.PointsAwarded)
	s.Equal(delivery.MessageReplyCongrats, webhookResp.Outcome.Reply)
	s.Equal(string(workouts.DeliveryCompleted), s.instanceStatus(ownerID, today))
	s.Len(s.sentTo(phone), 2)

	// provider redelivery
	webhookResp = s.postReply(ctx, firstID, phone, "Feito!")
	s.True(webhookResp.Duplicate)
	s.False(webhookResp.Processed)

	webhookResp = s.postReply(ctx, uuid.NewString(), phone, "feito de novo")
	s.Require().NotNil(webhookResp.Outcome)
	s.False(webhookResp.Outcome.Completed)
	s.Equal(delivery.MessageReplyAlreadyDone, webhookResp.Outcome.Reply)

	var points int
	s.Require().NoError(s.DB.QueryRow(`
		SELECT COALESCE(SUM(points), 0) FROM points_ledger WHERE owner_id = $1
	`, ownerID).Scan(&points))
	s.Equal(10, points)

	var inbound, outbound int
	s.Require().NoError(s.DB.QueryRow(`
		SELECT
			COUNT(*) FILTER (WHERE direction = 'inbound'),
			COUNT(*) FILTER (WHERE direction = 'outbound')
		FROM message_log WHERE owner_id = $1
	`, ownerID).Scan(&inbound, &outbound))
	s.Equal(2, inbound)
	s.Equal(3, outbound)
}

func (s *IntegrationTestSuite) TestReply_UnknownSender() {
	webhookResp := s.postReply(context.Background(), uuid.NewString(), gofakeit.Numerify("55119########"), "feito")
	s.False(webhookResp.Processed)
	s.Equal("unknown_sender", webhookResp.Reason)
}

func (s *IntegrationTestSuite) TestScheduleWeek() {
	ownerID, _ := s.newUserWithPlan(3)

	req, err := http.NewRequest("GET", serverEndpoint+"/schedule/"+ownerID+"/week/0", nil)
	s.Require().NoError(err)
	req.Header.Set("User-Agent", "curl/8.4.0")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Require().Equal(http.StatusUnauthorized, resp.StatusCode)

	req.Header.Set(middleware.AdminTokenHeader, testAdminToken)
	resp, err = s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var week schedule.WeekResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&week))
	s.Require().Len(week.Slots, 7)

	training := map[time.Weekday]string{}
	for _, slot := range week.Slots {
		if !slot.Rest {
			training[slot.Weekday] = slot.Title
		}
	}
	s.Equal(map[time.Weekday]string{
		time.Monday:    "Treino A",
		time.Wednesday: "Treino B",
		time.Friday:    "Treino C",
	}, training)
}
