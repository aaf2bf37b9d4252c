package registry

import (
	"context"
	"errors"
	"time"

	"profitshare-backend/internal/domain/investor"
	"profitshare-backend/internal/domain/reference"
	"profitshare-backend/pkg/id"
)

// Usecase onboards the records the allocation engine selects from:
// investors and reference partners.
type Usecase struct {
	investors  investor.Repository
	references reference.Repository
}

func NewUsecase(investors investor.Repository, references reference.Repository) *Usecase {
	return &Usecase{investors: investors, references: references}
}

type RegisterInvestorInput struct {
	OwnerID          string  `json:"owner_id"`
	Name             string  `json:"name"`
	ProfitPercentage float64 `json:"profit_percentage"`
	ProfitAmount     float64 `json:"profit_amount"` // cumulative target; 0 = unlimited
	InvestmentAmount float64 `json:"investment_amount"`
}

type InvestorDTO struct {
	InvestorID       string    `json:"investor_id"`
	OwnerID          string    `json:"owner_id"`
	Name             string    `json:"name"`
	Status           string    `json:"status"`
	ProfitPercentage float64   `json:"profit_percentage"`
	ProfitAmount     float64   `json:"profit_amount"`
	InvestmentAmount float64   `json:"investment_amount"`
	TotalReturn      float64   `json:"total_return"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u *Usecase) RegisterInvestor(ctx context.Context, in RegisterInvestorInput) (*InvestorDTO, error) {
	if in.OwnerID == "" || len(in.OwnerID) != 32 || in.InvestmentAmount <= 0 {
		return nil, errors.New("invalid input")
	}

	inv := &investor.Investor{
		InvestorID:       id.NewID32(),
		OwnerID:          in.OwnerID,
		Name:             in.Name,
		Status:           investor.StatusActive,
		ProfitPercentage: in.ProfitPercentage,
		ProfitAmount:     in.ProfitAmount,
		InvestmentAmount: in.InvestmentAmount,
		TotalReturn:      in.InvestmentAmount, // nothing earned yet
	}
	if err := u.investors.Create(ctx, inv); err != nil {
		return nil, err
	}

	return &InvestorDTO{
		InvestorID:       inv.InvestorID,
		OwnerID:          inv.OwnerID,
		Name:             inv.Name,
		Status:           string(inv.Status),
		ProfitPercentage: inv.ProfitPercentage,
		ProfitAmount:     inv.ProfitAmount,
		InvestmentAmount: inv.InvestmentAmount,
		TotalReturn:      inv.TotalReturn,
		CreatedAt:        inv.CreatedAt,
	}, nil
}

type RegisterReferenceInput struct {
	OwnerID    string  `json:"owner_id"`
	Name       string  `json:"name"`
	ProfitRate float64 `json:"profit_rate"`
}

type ReferenceDTO struct {
	ReferenceID string    `json:"reference_id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	ProfitRate  float64   `json:"profit_rate"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *Usecase) RegisterReference(ctx context.Context, in RegisterReferenceInput) (*ReferenceDTO, error) {
	if in.OwnerID == "" || len(in.OwnerID) != 32 {
		return nil, errors.New("invalid input")
	}

	ref := &reference.Reference{
		ReferenceID: id.NewID32(),
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		ProfitRate:  in.ProfitRate,
	}
	if err := u.references.Create(ctx, ref); err != nil {
		return nil, err
	}

	return &ReferenceDTO{
		ReferenceID: ref.ReferenceID,
		OwnerID:     ref.OwnerID,
		Name:        ref.Name,
		ProfitRate:  ref.ProfitRate,
		CreatedAt:   ref.CreatedAt,
	}, nil
}
