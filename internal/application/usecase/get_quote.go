package usecase

import (
	"context"
	"fmt"

	"github.com/fundline/pricing-service/internal/application/dto"
	"github.com/fundline/pricing-service/internal/domain/port"
)

// GetQuoteUseCase retrieves a stored pricing quote.
type GetQuoteUseCase struct {
	quoteRepo port.QuoteRepository
}

// NewGetQuoteUseCase wires dependencies.
func NewGetQuoteUseCase(quoteRepo port.QuoteRepository) *GetQuoteUseCase {
	return &GetQuoteUseCase{quoteRepo: quoteRepo}
}

// Execute fetches a quote by tenant and ID.
func (uc *GetQuoteUseCase) Execute(ctx context.Context, req dto.GetQuoteRequest) (dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.FindByID(ctx, req.TenantID, req.QuoteID)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("find quote: %w", err)
	}
	return toQuoteResponse(quote), nil
}
