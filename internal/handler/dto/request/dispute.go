package request

import (
	"marketplace-core/internal/domain/dispute"
	"marketplace-core/internal/usecase/commands"
)

type OpenDisputeRequest struct {
	Reason  string `json:"reason" binding:"required,oneof=no_show not_as_described not_received other"`
	Message string `json:"message" binding:"required"`
}

func (r OpenDisputeRequest) ToCommand() commands.OpenDisputeRequest {
	return commands.OpenDisputeRequest{
		Reason:  dispute.Reason(r.Reason),
		Message: r.Message,
	}
}

type ResolveDisputeRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=refund_buyer release_to_seller cancel_order"`
	Note    string `json:"note" binding:"max=2000"`
}

func (r ResolveDisputeRequest) ToCommand() commands.ResolveDisputeRequest {
	return commands.ResolveDisputeRequest{
		Outcome: dispute.Outcome(r.Outcome),
		Note:    r.Note,
	}
}
