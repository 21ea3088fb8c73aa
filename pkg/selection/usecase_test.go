package selection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
	"github.com/aazdagabde/smart-hire/pkg/application"
	"github.com/aazdagabde/smart-hire/pkg/notify"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

type fakeAppRepo struct {
	apps map[uuid.UUID]application.Application
	// statusErr triggers an update failure for specific applications.
	statusErr map[uuid.UUID]error
}

func (r *fakeAppRepo) Create(_ context.Context, a application.Application) error {
	r.apps[a.ID] = a
	return nil
}

func (r *fakeAppRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return application.Application{}, apperr.New(apperr.CodeNotFound, "отклик не найден")
	}
	return a, nil
}

func (r *fakeAppRepo) GetByOfferAndApplicant(_ context.Context, _, _ uuid.UUID) (application.Application, error) {
	return application.Application{}, apperr.New(apperr.CodeNotFound, "отклик не найден")
}

func (r *fakeAppRepo) Resubmit(_ context.Context, _ application.Resubmission) error { return nil }

func (r *fakeAppRepo) ListByOffer(_ context.Context, offerID uuid.UUID) ([]application.Application, error) {
	var out []application.Application
	for _, a := range r.apps {
		if a.OfferID == offerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) ListByApplicant(_ context.Context, _ uuid.UUID, _, _ int) ([]application.Application, error) {
	return nil, nil
}

func (r *fakeAppRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	if err := r.statusErr[id]; err != nil {
		return err
	}
	a, ok := r.apps[id]
	if !ok {
		return apperr.New(apperr.CodeNotFound, "отклик не найден")
	}
	a.Status = status
	r.apps[id] = a
	return nil
}

func (r *fakeAppRepo) SetScore(_ context.Context, id uuid.UUID, score int) error {
	a := r.apps[id]
	a.CVScore = &score
	r.apps[id] = a
	return nil
}

func (r *fakeAppRepo) UpdateNotes(_ context.Context, _ uuid.UUID, _ string) error { return nil }

type fakeOfferRepo struct {
	offers map[uuid.UUID]offer.Offer
}

func (r *fakeOfferRepo) Create(_ context.Context, _ offer.Offer) error { return nil }

func (r *fakeOfferRepo) GetByID(_ context.Context, id uuid.UUID) (offer.Offer, error) {
	o, ok := r.offers[id]
	if !ok {
		return offer.Offer{}, apperr.New(apperr.CodeNotFound, "оффер не найден")
	}
	return o, nil
}

func (r *fakeOfferRepo) GetByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (offer.Offer, error) {
	o, ok := r.offers[id]
	if !ok || o.OwnerID != ownerID {
		return offer.Offer{}, apperr.New(apperr.CodeNotFound, "оффер не найден")
	}
	return o, nil
}

func (r *fakeOfferRepo) ListByOwner(_ context.Context, _ uuid.UUID, _, _ int) ([]offer.Offer, error) {
	return nil, nil
}

func (r *fakeOfferRepo) ListPublished(_ context.Context, _, _ int) ([]offer.Offer, error) {
	return nil, nil
}

func (r *fakeOfferRepo) UpdateForOwner(_ context.Context, _ offer.Offer) error { return nil }

func (r *fakeOfferRepo) DeleteForOwner(_ context.Context, _, _ uuid.UUID) error { return nil }

func (r *fakeOfferRepo) AddField(_ context.Context, _ offer.CustomField) error { return nil }

func (r *fakeOfferRepo) GetField(_ context.Context, _ uuid.UUID) (offer.CustomField, error) {
	return offer.CustomField{}, apperr.New(apperr.CodeNotFound, "вопрос не найден")
}

func (r *fakeOfferRepo) RemoveField(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeOfferRepo) ListFields(_ context.Context, _ uuid.UUID) ([]offer.CustomField, error) {
	return nil, nil
}

type fakeSender struct {
	sent []notify.Message
	// failFor makes delivery fail for specific recipients.
	failFor map[string]error
}

func (s *fakeSender) Send(_ context.Context, msg notify.Message) error {
	if err := s.failFor[msg.RecipientEmail]; err != nil {
		return err
	}
	s.sent = append(s.sent, msg)
	return nil
}

type fixture struct {
	apps   *fakeAppRepo
	offers *fakeOfferRepo
	sender *fakeSender
	svc    UseCase

	ownerID uuid.UUID
	offerID uuid.UUID
}

func newFixture(t *testing.T, deadline *time.Time) *fixture {
	t.Helper()
	apps := &fakeAppRepo{apps: map[uuid.UUID]application.Application{}, statusErr: map[uuid.UUID]error{}}
	offers := &fakeOfferRepo{offers: map[uuid.UUID]offer.Offer{}}
	sender := &fakeSender{failFor: map[string]error{}}

	ownerID := uuid.New()
	o := offer.Offer{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Title:    "Go разработчик",
		Status:   offer.StatusPublished,
		Deadline: deadline,
	}
	offers.offers[o.ID] = o

	return &fixture{
		apps:    apps,
		offers:  offers,
		sender:  sender,
		svc:     NewService(apps, offers, sender, zap.NewNop()),
		ownerID: ownerID,
		offerID: o.ID,
	}
}

func (fx *fixture) addApplication(email string, score *int, appliedAt time.Time) application.Application {
	a := application.Application{
		ID:             uuid.New(),
		OfferID:        fx.offerID,
		ApplicantID:    uuid.New(),
		ApplicantName:  "Кандидат " + email,
		ApplicantEmail: email,
		AppliedAt:      appliedAt,
		Status:         application.StatusPending,
		CVScore:        score,
	}
	fx.apps.apps[a.ID] = a
	return a
}

func scored(v int) *int { return &v }

func deadlineDaysAgo(days int) *time.Time {
	d := time.Now().UTC().AddDate(0, 0, -days)
	return &d
}

func TestRankOrdersByScoreThenRecency(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := []application.Application{
		{ApplicantName: "old-80", CVScore: scored(80), AppliedAt: base},
		{ApplicantName: "unscored", CVScore: nil, AppliedAt: base.Add(5 * time.Hour)},
		{ApplicantName: "95", CVScore: scored(95), AppliedAt: base},
		{ApplicantName: "new-80", CVScore: scored(80), AppliedAt: base.Add(time.Hour)},
	}

	got := Rank(in)

	ranked := make([]string, 0, len(got))
	for _, a := range got {
		ranked = append(ranked, a.ApplicantName)
	}
	assert.Equal(t, []string{"95", "new-80", "old-80", "unscored"}, ranked)
	// вход не мутируется
	assert.Equal(t, "old-80", in[0].ApplicantName)
}

func TestRunBulkSelectionDeadlineGate(t *testing.T) {
	t.Run("future deadline blocks even with confirmation", func(t *testing.T) {
		future := time.Now().UTC().AddDate(0, 0, 7)
		fx := newFixture(t, &future)
		fx.addApplication("a@example.com", scored(90), time.Now().UTC())

		_, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
			OfferID: fx.offerID, TopCount: 1, Action: ActionInterview, Confirmed: true,
		})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CodeGate))
	})

	t.Run("no deadline requires confirmation", func(t *testing.T) {
		fx := newFixture(t, nil)
		fx.addApplication("a@example.com", scored(90), time.Now().UTC())

		_, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
			OfferID: fx.offerID, TopCount: 1, Action: ActionInterview,
		})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CodeGate))

		res, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
			OfferID: fx.offerID, TopCount: 1, Action: ActionInterview, Confirmed: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.UpdatedCount)
	})
}

func TestRunBulkSelectionValidation(t *testing.T) {
	fx := newFixture(t, deadlineDaysAgo(1))
	fx.addApplication("a@example.com", scored(90), time.Now().UTC())
	fx.addApplication("b@example.com", scored(50), time.Now().UTC())

	t.Run("unknown action", func(t *testing.T) {
		_, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
			OfferID: fx.offerID, TopCount: 1, Action: "REJECT",
		})
		require.Error(t, err)
		assert.Contains(t, apperr.FieldsOf(err), "actionType")
	})

	t.Run("top count out of range", func(t *testing.T) {
		for _, n := range []int{0, -1, 3} {
			_, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
				OfferID: fx.offerID, TopCount: n, Action: ActionInterview,
			})
			require.Error(t, err)
			assert.Contains(t, apperr.FieldsOf(err), "topCount")
		}
	})

	t.Run("foreign owner", func(t *testing.T) {
		_, err := fx.svc.RunBulkSelection(context.Background(), uuid.New(), Request{
			OfferID: fx.offerID, TopCount: 1, Action: ActionInterview,
		})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})

	// валидация отработала до любых мутаций
	for _, a := range fx.apps.apps {
		assert.Equal(t, application.StatusPending, a.Status)
	}
	assert.Empty(t, fx.sender.sent)
}

func TestRunBulkSelectionPicksTopByScore(t *testing.T) {
	fx := newFixture(t, deadlineDaysAgo(1))
	now := time.Now().UTC()

	top1 := fx.addApplication("top1@example.com", scored(90), now)
	mid := fx.addApplication("mid@example.com", scored(70), now)
	top2 := fx.addApplication("top2@example.com", scored(85), now)
	unscored := fx.addApplication("none@example.com", nil, now)
	low := fx.addApplication("low@example.com", scored(40), now)

	res, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
		OfferID:  fx.offerID,
		TopCount: 3,
		Action:   ActionInterview,
		Message:  "Приглашаем на собеседование",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.UpdatedCount)
	assert.Empty(t, res.Failures)
	assert.Equal(t, []uuid.UUID{top1.ID, top2.ID, mid.ID}, res.SelectedIDs)

	for _, id := range []uuid.UUID{top1.ID, top2.ID, mid.ID} {
		assert.Equal(t, application.StatusInterviewScheduled, fx.apps.apps[id].Status)
	}
	// невыбранные не меняются: авто-отказа нет
	assert.Equal(t, application.StatusPending, fx.apps.apps[unscored.ID].Status)
	assert.Equal(t, application.StatusPending, fx.apps.apps[low.ID].Status)

	require.Len(t, fx.sender.sent, 3)
	for _, msg := range fx.sender.sent {
		assert.Equal(t, notify.TemplateInterview, msg.Template)
		assert.Equal(t, "Приглашаем на собеседование", msg.Body)
	}
}

func TestRunBulkSelectionAcceptAction(t *testing.T) {
	fx := newFixture(t, deadlineDaysAgo(1))
	a := fx.addApplication("a@example.com", scored(90), time.Now().UTC())

	res, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
		OfferID: fx.offerID, TopCount: 1, Action: ActionAccept,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.UpdatedCount)
	assert.Equal(t, application.StatusAccepted, fx.apps.apps[a.ID].Status)
	require.Len(t, fx.sender.sent, 1)
	assert.Equal(t, notify.TemplateAccept, fx.sender.sent[0].Template)
}

func TestRunBulkSelectionPartialFailures(t *testing.T) {
	fx := newFixture(t, deadlineDaysAgo(1))
	now := time.Now().UTC()

	ok := fx.addApplication("ok@example.com", scored(90), now)
	badStatus := fx.addApplication("badstatus@example.com", scored(85), now)
	badMail := fx.addApplication("badmail@example.com", scored(80), now)

	fx.apps.statusErr[badStatus.ID] = errors.New("connection reset")
	fx.sender.failFor["badmail@example.com"] = errors.New("mailbox unavailable")

	res, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
		OfferID: fx.offerID, TopCount: 3, Action: ActionInterview,
	})
	require.NoError(t, err, "частичные сбои не являются ошибкой операции")

	// смена статуса упала у одного, доставка у другого
	assert.Equal(t, 2, res.UpdatedCount)
	require.Len(t, res.Failures, 2)

	byStage := map[string]Failure{}
	for _, f := range res.Failures {
		byStage[f.Stage] = f
	}
	assert.Equal(t, badStatus.ID, byStage["status"].ApplicationID)
	assert.Equal(t, badMail.ID, byStage["notify"].ApplicationID)

	// сбой статуса не блокирует остальных; сбой доставки не откатывает статус
	assert.Equal(t, application.StatusPending, fx.apps.apps[badStatus.ID].Status)
	assert.Equal(t, application.StatusInterviewScheduled, fx.apps.apps[badMail.ID].Status)
	assert.Equal(t, application.StatusInterviewScheduled, fx.apps.apps[ok.ID].Status)

	// письмо ушло только успешному
	require.Len(t, fx.sender.sent, 1)
	assert.Equal(t, "ok@example.com", fx.sender.sent[0].RecipientEmail)
}

func TestRunBulkSelectionRerunIsStable(t *testing.T) {
	fx := newFixture(t, deadlineDaysAgo(1))
	now := time.Now().UTC()
	a := fx.addApplication("a@example.com", scored(90), now)
	fx.addApplication("b@example.com", scored(50), now)

	first, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
		OfferID: fx.offerID, TopCount: 1, Action: ActionInterview,
	})
	require.NoError(t, err)

	second, err := fx.svc.RunBulkSelection(context.Background(), fx.ownerID, Request{
		OfferID: fx.offerID, TopCount: 1, Action: ActionInterview,
	})
	require.NoError(t, err)

	// повторный прогон выбирает тех же кандидатов
	assert.Equal(t, first.SelectedIDs, second.SelectedIDs)
	assert.Equal(t, application.StatusInterviewScheduled, fx.apps.apps[a.ID].Status)
}
