package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
	"github.com/aazdagabde/smart-hire/pkg/application"
)

// ApplicationRepository хранит отклики кандидатов. Ровно одна запись на пару
// (оффер, кандидат) — обеспечивается уникальным индексом.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) (*ApplicationRepository, error) {
	r := &ApplicationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	offer_id UUID NOT NULL REFERENCES offers(id) ON DELETE CASCADE,
	applicant_id UUID NOT NULL,
	applicant_name TEXT NOT NULL DEFAULT '',
	applicant_email TEXT NOT NULL DEFAULT '',
	applied_at TIMESTAMPTZ NOT NULL,
	status TEXT NOT NULL DEFAULT 'PENDING',
	cv_file_ref TEXT NOT NULL,
	cv_score INT CHECK (cv_score >= 0 AND cv_score <= 100),
	internal_notes TEXT NOT NULL DEFAULT '',
	answers JSONB NOT NULL DEFAULT '[]',
	parsed_cv TEXT NOT NULL DEFAULT '',
	UNIQUE (offer_id, applicant_id)
);
CREATE INDEX IF NOT EXISTS idx_applications_offer ON applications(offer_id);
CREATE INDEX IF NOT EXISTS idx_applications_applicant ON applications(applicant_id);
`)
	return err
}

var errApplicationNotFound = apperr.New(apperr.CodeNotFound, "отклик не найден")

const applicationColumns = `id, offer_id, applicant_id, applicant_name, applicant_email, applied_at, status, cv_file_ref, cv_score, internal_notes, answers, parsed_cv`

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	var status string
	var applied time.Time
	var answersJSON []byte
	if err := row.Scan(&a.ID, &a.OfferID, &a.ApplicantID, &a.ApplicantName, &a.ApplicantEmail,
		&applied, &status, &a.CVFileRef, &a.CVScore, &a.InternalNotes, &answersJSON, &a.ParsedCV); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, errApplicationNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	a.AppliedAt = applied.UTC()
	_ = json.Unmarshal(answersJSON, &a.Answers)
	return a, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO applications (id, offer_id, applicant_id, applicant_name, applicant_email, applied_at, status, cv_file_ref, cv_score, internal_notes, answers, parsed_cv)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`, a.ID, a.OfferID, a.ApplicantID, a.ApplicantName, a.ApplicantEmail, a.AppliedAt, string(a.Status), a.CVFileRef, a.CVScore, a.InternalNotes, answersJSON, a.ParsedCV)
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
}

func (r *ApplicationRepository) GetByOfferAndApplicant(ctx context.Context, offerID, applicantID uuid.UUID) (application.Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, `
SELECT `+applicationColumns+` FROM applications WHERE offer_id = $1 AND applicant_id = $2`, offerID, applicantID))
}

// Resubmit заменяет файл, текст и ответы повторной подачи; статус, скор и
// заметки рекрутера сохраняются.
func (r *ApplicationRepository) Resubmit(ctx context.Context, sub application.Resubmission) error {
	answersJSON, err := json.Marshal(sub.Answers)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, `
UPDATE applications SET cv_file_ref = $2, parsed_cv = $3, answers = $4 WHERE id = $1
`, sub.ID, sub.CVFileRef, sub.ParsedCV, answersJSON)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) listApplications(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []application.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *ApplicationRepository) ListByOffer(ctx context.Context, offerID uuid.UUID) ([]application.Application, error) {
	return r.listApplications(ctx, `
SELECT `+applicationColumns+` FROM applications WHERE offer_id = $1 ORDER BY applied_at`, offerID)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID, limit, offset int) ([]application.Application, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.listApplications(ctx, `
SELECT `+applicationColumns+` FROM applications WHERE applicant_id = $3
ORDER BY applied_at DESC LIMIT $1 OFFSET $2`, limit, offset, applicantID)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) SetScore(ctx context.Context, id uuid.UUID, score int) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE applications SET cv_score = $2 WHERE id = $1`, id, score)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE applications SET internal_notes = $2 WHERE id = $1`, id, notes)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errApplicationNotFound
	}
	return nil
}
