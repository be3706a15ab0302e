package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/samikhan1239/StayFinder/internal/dates"
	"github.com/samikhan1239/StayFinder/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

const bookingColumns = `id, listing_id, user_id, check_in, check_out, guests, price_total, currency,
		first_name, last_name, email, phone, status, payment_status,
		payment_order_ref, payment_proof_ref, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	dates    *dates.Normalizer
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB, normalizer *dates.Normalizer) *BookingRepository {
	return &BookingRepository{
		db:    db,
		dates: normalizer,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *BookingRepository) scan(row rowScanner) (*domain.Booking, error) {
	var (
		b     domain.Booking
		proof sql.NullString
	)
	if err := row.Scan(
		&b.ID, &b.ListingID, &b.UserID, &b.CheckIn, &b.CheckOut, &b.Guests, &b.PriceTotal, &b.Currency,
		&b.FirstName, &b.LastName, &b.Email, &b.Phone, &b.Status, &b.PaymentStatus,
		&b.PaymentOrderRef, &proof, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.PaymentProofRef = proof.String
	b.CheckIn = r.dates.FromStorage(b.CheckIn)
	b.CheckOut = r.dates.FromStorage(b.CheckOut)
	return &b, nil
}

func day(t time.Time) string {
	return t.Format(dates.DayLayout)
}

// Create inserts a pending booking. Writers of the same listing are
// serialised by a transaction-scoped advisory lock and the overlap is
// re-checked inside the transaction; the bookings_no_overlap exclusion
// constraint remains the final guard.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin tx: %w", domain.ErrPersistence, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, b.ListingID); err != nil {
		return fmt.Errorf("%w: lock listing: %w", domain.ErrPersistence, err)
	}

	overlapQuery := `SELECT COUNT(*) FROM bookings
			  WHERE listing_id = $1
			    AND status = ANY($2)
			    AND check_in < $4::date
			    AND $3::date < check_out`
	var clashes int
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.ListingID,
		pq.Array(domain.ActiveStatuses), day(b.CheckIn), day(b.CheckOut),
	).Scan(&clashes); err != nil {
		return fmt.Errorf("%w: count overlapping: %w", domain.ErrPersistence, err)
	}

	if clashes > 0 {
		return domain.ErrDatesUnavailable
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4::date, $5::date, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NULL, $16, $17)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.ListingID, b.UserID, day(b.CheckIn), day(b.CheckOut), b.Guests, b.PriceTotal, b.Currency,
		b.FirstName, b.LastName, b.Email, b.Phone, b.Status, b.PaymentStatus,
		b.PaymentOrderRef, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				return domain.ErrDatesUnavailable
			case pgUniqueViolation:
				return domain.ErrOrderRefDuplicate
			}
		}
		return fmt.Errorf("%w: insert booking: %w", domain.ErrPersistence, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit booking: %w", domain.ErrPersistence, err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: get booking: %w", domain.ErrPersistence, err)
	}

	b, err := r.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: scan booking: %w", domain.ErrPersistence, err)
	}

	return b, nil
}

func (r *BookingRepository) ListOverlapping(ctx context.Context, listingID string, checkIn, checkOut time.Time) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE listing_id = $1
			    AND status = ANY($2)
			    AND check_in < $4::date
			    AND $3::date < check_out
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, listingID,
		pq.Array(domain.ActiveStatuses), day(checkIn), day(checkOut),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list overlapping bookings: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// Confirm is a compare-and-set on status: only a booking that is still
// pending at write time is moved to confirmed.
func (r *BookingRepository) Confirm(ctx context.Context, id, paymentProofRef string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $3, payment_status = $4, payment_proof_ref = $5, updated_at = now()
			  WHERE id = $1
			    AND status = $2
			  RETURNING ` + bookingColumns

	row := r.db.Master.QueryRowContext(
		ctx, query, id,
		domain.BookingStatusPending, domain.BookingStatusConfirmed,
		domain.PaymentStatusCaptured, paymentProofRef,
	)
	b, err := r.scan(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: confirm booking: %w", domain.ErrPersistence, err)
	}

	// Nothing matched: either the booking vanished or it already left pending.
	var status string
	checkErr := r.db.Master.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
	if errors.Is(checkErr, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if checkErr != nil {
		return nil, fmt.Errorf("%w: check booking status: %w", domain.ErrPersistence, checkErr)
	}

	return nil, domain.ErrAlreadyProcessed
}

func (r *BookingRepository) CancelExpired(ctx context.Context, createdBefore time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, payment_status = $3, updated_at = now()
			  WHERE status = $1
			    AND created_at < $4
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		domain.PaymentStatusFailed, createdBefore,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: cancel expired: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list bookings by user: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *BookingRepository) collect(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %w", domain.ErrPersistence, err)
		}
		res = append(res, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate bookings: %w", domain.ErrPersistence, err)
	}
	return res, nil
}
