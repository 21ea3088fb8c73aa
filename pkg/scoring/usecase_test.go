package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
	"github.com/aazdagabde/smart-hire/pkg/application"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

type fakeAppRepo struct {
	apps map[uuid.UUID]application.Application
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

func (r *fakeAppRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ application.Status) error {
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

func (r *fakeOfferRepo) Create(_ context.Context, o offer.Offer) error { return nil }

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

type fakeModel struct {
	answer string
	err    error
}

func (m *fakeModel) Ask(_ context.Context, _, _ string) (string, error) {
	return m.answer, m.err
}

func newScoringService(model *fakeModel) (*service, *fakeAppRepo, *fakeOfferRepo) {
	apps := &fakeAppRepo{apps: map[uuid.UUID]application.Application{}}
	offers := &fakeOfferRepo{offers: map[uuid.UUID]offer.Offer{}}
	svc := NewService(apps, offers, model, zap.NewNop()).(*service)
	return svc, apps, offers
}

func TestScoreOneParsesModelReply(t *testing.T) {
	o := offer.Offer{Title: "Go разработчик", Description: "Backend"}
	a := application.Application{ParsedCV: "пять лет Go"}

	cases := []struct {
		name  string
		reply string
		want  int
	}{
		{name: "plain json", reply: `{"score": 85}`, want: 85},
		{name: "fenced json", reply: "```json\n{\"score\": 42}\n```", want: 42},
		{name: "json with prose around", reply: "Вот результат: {\"score\": 7} — удачи!", want: 7},
		{name: "clamped above", reply: `{"score": 150}`, want: 100},
		{name: "clamped below", reply: `{"score": -3}`, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newScoringService(&fakeModel{answer: tc.reply})
			got, err := svc.scoreOne(context.Background(), o, a)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("garbage reply", func(t *testing.T) {
		svc, _, _ := newScoringService(&fakeModel{answer: "сложно сказать"})
		_, err := svc.scoreOne(context.Background(), o, a)
		require.Error(t, err)
	})

	t.Run("empty resume text", func(t *testing.T) {
		svc, _, _ := newScoringService(&fakeModel{answer: `{"score": 85}`})
		_, err := svc.scoreOne(context.Background(), o, application.Application{ParsedCV: "   "})
		require.Error(t, err)
	})

	t.Run("model failure", func(t *testing.T) {
		svc, _, _ := newScoringService(&fakeModel{err: errors.New("timeout")})
		_, err := svc.scoreOne(context.Background(), o, a)
		require.Error(t, err)
	})
}

func TestRequestAnalysisChecksOwnership(t *testing.T) {
	svc, _, offers := newScoringService(&fakeModel{answer: `{"score": 50}`})

	ownerID := uuid.New()
	o := offer.Offer{ID: uuid.New(), OwnerID: ownerID, Title: "Go разработчик", Status: offer.StatusPublished}
	offers.offers[o.ID] = o

	err := svc.RequestAnalysis(context.Background(), uuid.New(), o.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	require.NoError(t, svc.RequestAnalysis(context.Background(), ownerID, o.ID))
}

func TestSummarizeUsesOwnerScope(t *testing.T) {
	svc, apps, offers := newScoringService(&fakeModel{answer: "Сильный бэкенд-разработчик."})

	ownerID := uuid.New()
	o := offer.Offer{ID: uuid.New(), OwnerID: ownerID, Title: "Go разработчик"}
	offers.offers[o.ID] = o
	a := application.Application{ID: uuid.New(), OfferID: o.ID, ParsedCV: "пять лет Go"}
	apps.apps[a.ID] = a

	got, err := svc.Summarize(context.Background(), ownerID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Сильный бэкенд-разработчик.", got)

	_, err = svc.Summarize(context.Background(), uuid.New(), a.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("  abc  ", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
