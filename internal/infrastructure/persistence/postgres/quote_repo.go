package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/domain/valueobject"
)

// QuoteRepo implements port.QuoteRepository.
type QuoteRepo struct {
	pool *pgxpool.Pool
}

// NewQuoteRepo creates a new repository backed by PostgreSQL.
func NewQuoteRepo(pool *pgxpool.Pool) *QuoteRepo {
	return &QuoteRepo{pool: pool}
}

// Save persists a pricing quote (upsert by ID with optimistic locking).
func (r *QuoteRepo) Save(ctx context.Context, quote model.PricingQuote) error {
	offerJSON, breakdownJSON, err := marshalOutcome(quote)
	if err != nil {
		return err
	}

	req := quote.Request()
	query := `
		INSERT INTO pricing_quotes (
			id, tenant_id, merchant_id,
			monthly_true_revenue, existing_daily_payment, requested_amount,
			position, term_months, factor_rate_override,
			industry, credit_score, risk_score, volatility,
			status, decision, decline_reason, decline_explanation,
			offer, breakdown,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		ON CONFLICT (id) DO UPDATE SET
			status              = EXCLUDED.status,
			decision            = EXCLUDED.decision,
			decline_reason      = EXCLUDED.decline_reason,
			decline_explanation = EXCLUDED.decline_explanation,
			offer               = EXCLUDED.offer,
			breakdown           = EXCLUDED.breakdown,
			version             = pricing_quotes.version + 1,
			updated_at          = EXCLUDED.updated_at
		WHERE pricing_quotes.version = $20
	`

	var declineReason, declineExplanation string
	if decline := quote.DeclineInfo(); decline != nil {
		declineReason = decline.Reason.String()
		declineExplanation = decline.Explanation
	}

	tag, err := r.pool.Exec(ctx, query,
		quote.ID(), quote.TenantID(), quote.MerchantID(),
		req.MonthlyTrueRevenue, req.ExistingDailyPayment, req.RequestedAmount,
		req.Position, req.TermMonths, req.FactorRateOverride,
		req.Industry, req.CreditScore, req.RiskScore, req.Volatility.String(),
		quote.Status().String(), quote.Decision().String(), declineReason, declineExplanation,
		offerJSON, breakdownJSON,
		quote.Version(), quote.CreatedAt(), quote.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save pricing quote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on pricing quote")
	}
	return nil
}

// FindByID retrieves a single pricing quote.
func (r *QuoteRepo) FindByID(ctx context.Context, tenantID, id string) (model.PricingQuote, error) {
	query := selectQuoteColumns + ` WHERE tenant_id = $1 AND id = $2`
	quote, err := scanQuote(r.pool.QueryRow(ctx, query, tenantID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.PricingQuote{}, model.ErrQuoteNotFound
	}
	return quote, err
}

// FindByMerchantID retrieves all quotes for a merchant, newest first.
func (r *QuoteRepo) FindByMerchantID(ctx context.Context, tenantID, merchantID string) ([]model.PricingQuote, error) {
	query := selectQuoteColumns + ` WHERE tenant_id = $1 AND merchant_id = $2 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, tenantID, merchantID)
	if err != nil {
		return nil, fmt.Errorf("query pricing quotes: %w", err)
	}
	defer rows.Close()

	var result []model.PricingQuote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, quote)
	}
	return result, rows.Err()
}

const selectQuoteColumns = `
	SELECT id, tenant_id, merchant_id,
	       monthly_true_revenue, existing_daily_payment, requested_amount,
	       position, term_months, factor_rate_override,
	       industry, credit_score, risk_score, volatility,
	       status, decision, decline_reason, decline_explanation,
	       offer, breakdown,
	       version, created_at, updated_at
	FROM pricing_quotes`

func scanQuote(s scannable) (model.PricingQuote, error) {
	var (
		id, tenantID, merchantID                     string
		monthlyRevenue, existingDaily, requested     decimal.Decimal
		position, termMonths                         int
		factorOverride                               decimal.Decimal
		industry                                     string
		creditScore, riskScore                       int
		volatilityStr, statusStr, decisionStr        string
		declineReason, declineExplanation            string
		offerJSON, breakdownJSON                     []byte
		version                                      int
		createdAt, updatedAt                         time.Time
	)

	err := s.Scan(
		&id, &tenantID, &merchantID,
		&monthlyRevenue, &existingDaily, &requested,
		&position, &termMonths, &factorOverride,
		&industry, &creditScore, &riskScore, &volatilityStr,
		&statusStr, &decisionStr, &declineReason, &declineExplanation,
		&offerJSON, &breakdownJSON,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.PricingQuote{}, fmt.Errorf("scan pricing quote: %w", err)
	}

	volatility, err := valueobject.NewVolatility(volatilityStr)
	if err != nil {
		return model.PricingQuote{}, fmt.Errorf("parse volatility: %w", err)
	}
	status, err := valueobject.NewQuoteStatus(statusStr)
	if err != nil {
		return model.PricingQuote{}, fmt.Errorf("parse status: %w", err)
	}
	var decision valueobject.Decision
	if decisionStr != "" {
		if decision, err = valueobject.NewDecision(decisionStr); err != nil {
			return model.PricingQuote{}, fmt.Errorf("parse decision: %w", err)
		}
	}

	var offer *model.Offer
	if len(offerJSON) > 0 {
		offer = &model.Offer{}
		if err := json.Unmarshal(offerJSON, offer); err != nil {
			return model.PricingQuote{}, fmt.Errorf("decode offer: %w", err)
		}
	}
	var breakdown model.MathBreakdown
	if len(breakdownJSON) > 0 {
		if err := json.Unmarshal(breakdownJSON, &breakdown); err != nil {
			return model.PricingQuote{}, fmt.Errorf("decode breakdown: %w", err)
		}
	}

	var decline *model.Decline
	if declineReason != "" {
		reason, err := valueobject.NewDeclineReason(declineReason)
		if err != nil {
			return model.PricingQuote{}, fmt.Errorf("parse decline reason: %w", err)
		}
		decline = &model.Decline{Reason: reason, Explanation: declineExplanation}
	}

	req := model.OfferRequest{
		MonthlyTrueRevenue:   monthlyRevenue,
		ExistingDailyPayment: existingDaily,
		RequestedAmount:      requested,
		Position:             position,
		TermMonths:           termMonths,
		FactorRateOverride:   factorOverride,
		Industry:             industry,
		CreditScore:          creditScore,
		RiskScore:            riskScore,
		Volatility:           volatility,
	}

	return model.ReconstructPricingQuote(
		id, tenantID, merchantID,
		req, status, decision, offer, decline, breakdown,
		version, createdAt, updatedAt,
	), nil
}

func marshalOutcome(quote model.PricingQuote) (offerJSON, breakdownJSON []byte, err error) {
	if offer := quote.Offer(); offer != nil {
		if offerJSON, err = json.Marshal(offer); err != nil {
			return nil, nil, fmt.Errorf("encode offer: %w", err)
		}
	}
	if breakdownJSON, err = json.Marshal(quote.Breakdown()); err != nil {
		return nil, nil, fmt.Errorf("encode breakdown: %w", err)
	}
	return offerJSON, breakdownJSON, nil
}
