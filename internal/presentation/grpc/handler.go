package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fundline/pricing-service/internal/application/usecase"
	"github.com/fundline/pricing-service/internal/domain/model"
	"github.com/fundline/pricing-service/internal/platform/observability"
)

// PricingHandler exposes pricing operations over gRPC.
type PricingHandler struct {
	UnimplementedPricingServiceServer

	priceOffer *usecase.PriceOfferUseCase
	scenarios  *usecase.GenerateScenariosUseCase
	getQuote   *usecase.GetQuoteUseCase
	logger     *slog.Logger
	metrics    *observability.PricingMetrics
}

// NewPricingHandler creates a handler with all use-case dependencies.
// metrics may be nil when metrics are disabled.
func NewPricingHandler(
	priceOffer *usecase.PriceOfferUseCase,
	scenarios *usecase.GenerateScenariosUseCase,
	getQuote *usecase.GetQuoteUseCase,
	logger *slog.Logger,
	metrics *observability.PricingMetrics,
) *PricingHandler {
	return &PricingHandler{
		priceOffer: priceOffer,
		scenarios:  scenarios,
		getQuote:   getQuote,
		logger:     logger,
		metrics:    metrics,
	}
}

// PriceOffer prices a single offer request and stores the resulting quote.
func (h *PricingHandler) PriceOffer(ctx context.Context, req *PriceOfferRequest) (*PriceOfferResponse, error) {
	start := time.Now()

	resp, err := h.priceOffer.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("price offer failed", "merchant_id", req.MerchantID, "error", err)
		return nil, mapError(err)
	}

	h.metrics.RecordQuote(ctx, resp.Decision, time.Since(start).Seconds())
	h.logger.Info("offer priced",
		"quote_id", resp.ID,
		"merchant_id", resp.MerchantID,
		"decision", resp.Decision,
	)
	return &resp, nil
}

// GenerateScenarios prices the configured term scenarios side by side.
func (h *PricingHandler) GenerateScenarios(ctx context.Context, req *GenerateScenariosRequest) (*GenerateScenariosResponse, error) {
	resp, err := h.scenarios.Execute(ctx, *req)
	if err != nil {
		h.logger.Error("scenario generation failed", "merchant_id", req.MerchantID, "error", err)
		return nil, mapError(err)
	}
	return &resp, nil
}

// GetQuote retrieves a stored quote by ID.
func (h *PricingHandler) GetQuote(ctx context.Context, req *GetQuoteRequest) (*GetQuoteResponse, error) {
	resp, err := h.getQuote.Execute(ctx, *req)
	if err != nil {
		return nil, mapError(err)
	}
	return &resp, nil
}

// mapError translates domain errors into gRPC status codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrQuoteNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
