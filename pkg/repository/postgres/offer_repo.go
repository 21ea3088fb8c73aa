package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aazdagabde/smart-hire/pkg/apperr"
	"github.com/aazdagabde/smart-hire/pkg/offer"
)

// OfferRepository хранит офферы и схему их вопросов.
type OfferRepository struct {
	pool *pgxpool.Pool
}

func NewOfferRepository(pool *pgxpool.Pool) (*OfferRepository, error) {
	r := &OfferRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *OfferRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS offers (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	contract_type TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'DRAFT',
	deadline DATE,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_offers_owner ON offers(owner_id);
CREATE TABLE IF NOT EXISTS offer_fields (
	id UUID PRIMARY KEY,
	offer_id UUID NOT NULL REFERENCES offers(id) ON DELETE CASCADE,
	label TEXT NOT NULL,
	field_type TEXT NOT NULL,
	options TEXT NOT NULL DEFAULT '',
	is_required BOOLEAN NOT NULL DEFAULT FALSE,
	position INT NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_offer_fields_offer ON offer_fields(offer_id);
`)
	return err
}

var errOfferNotFound = apperr.New(apperr.CodeNotFound, "оффер не найден")

func (r *OfferRepository) Create(ctx context.Context, o offer.Offer) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO offers (id, owner_id, title, description, location, contract_type, status, deadline, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, o.ID, o.OwnerID, strings.TrimSpace(o.Title), o.Description, o.Location, o.ContractType, string(o.Status), o.Deadline, o.CreatedAt)
	return err
}

const offerColumns = `id, owner_id, title, description, location, contract_type, status, deadline, created_at`

func scanOffer(row pgx.Row) (offer.Offer, error) {
	var o offer.Offer
	var status string
	var deadline *time.Time
	var created time.Time
	if err := row.Scan(&o.ID, &o.OwnerID, &o.Title, &o.Description, &o.Location, &o.ContractType, &status, &deadline, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return offer.Offer{}, errOfferNotFound
		}
		return offer.Offer{}, err
	}
	o.Status = offer.Status(status)
	o.Deadline = deadline
	o.CreatedAt = created.UTC()
	return o, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id uuid.UUID) (offer.Offer, error) {
	return scanOffer(r.pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
}

func (r *OfferRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (offer.Offer, error) {
	return scanOffer(r.pool.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1 AND owner_id = $2`, id, ownerID))
}

func (r *OfferRepository) listOffers(ctx context.Context, query string, args ...any) ([]offer.Offer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []offer.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, rows.Err()
}

func (r *OfferRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]offer.Offer, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.listOffers(ctx, `
SELECT `+offerColumns+` FROM offers WHERE owner_id = $3
ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset, ownerID)
}

func (r *OfferRepository) ListPublished(ctx context.Context, limit, offset int) ([]offer.Offer, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.listOffers(ctx, `
SELECT `+offerColumns+` FROM offers WHERE status = 'PUBLISHED'
ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *OfferRepository) UpdateForOwner(ctx context.Context, o offer.Offer) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE offers SET title = $3, description = $4, location = $5, contract_type = $6, status = $7, deadline = $8
WHERE id = $1 AND owner_id = $2
`, o.ID, o.OwnerID, strings.TrimSpace(o.Title), o.Description, o.Location, o.ContractType, string(o.Status), o.Deadline)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errOfferNotFound
	}
	return nil
}

func (r *OfferRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errOfferNotFound
	}
	return nil
}

// Варианты хранятся одной строкой через ';' — сами значения валидируются
// на отсутствие ';' на уровне разбора схемы.
func (r *OfferRepository) AddField(ctx context.Context, f offer.CustomField) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO offer_fields (id, offer_id, label, field_type, options, is_required, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, f.ID, f.OfferID, f.Label, string(f.Type), strings.Join(f.Options, ";"), f.Required, f.Position)
	return err
}

func (r *OfferRepository) GetField(ctx context.Context, fieldID uuid.UUID) (offer.CustomField, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, offer_id, label, field_type, options, is_required, position
FROM offer_fields WHERE id = $1`, fieldID)
	return scanField(row)
}

func scanField(row pgx.Row) (offer.CustomField, error) {
	var f offer.CustomField
	var fieldType, options string
	if err := row.Scan(&f.ID, &f.OfferID, &f.Label, &fieldType, &options, &f.Required, &f.Position); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return offer.CustomField{}, apperr.New(apperr.CodeNotFound, "вопрос не найден")
		}
		return offer.CustomField{}, err
	}
	f.Type = offer.FieldType(fieldType)
	if options != "" {
		f.Options = strings.Split(options, ";")
	}
	return f, nil
}

func (r *OfferRepository) RemoveField(ctx context.Context, offerID, fieldID uuid.UUID) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM offer_fields WHERE id = $1 AND offer_id = $2`, fieldID, offerID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *OfferRepository) ListFields(ctx context.Context, offerID uuid.UUID) ([]offer.CustomField, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, offer_id, label, field_type, options, is_required, position
FROM offer_fields WHERE offer_id = $1 ORDER BY position, id`, offerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []offer.CustomField
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, f)
	}
	return res, rows.Err()
}
