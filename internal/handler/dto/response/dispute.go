package response

import "marketplace-core/internal/usecase/queries"

type ResolutionResponse struct {
	Outcome    string `json:"outcome"`
	Note       string `json:"note,omitempty"`
	ResolvedBy string `json:"resolved_by"`
	ResolvedAt int64  `json:"resolved_at"`
}

type DisputeResponse struct {
	ID         string              `json:"id"`
	OrderID    string              `json:"order_id"`
	OpenedBy   *string             `json:"opened_by,omitempty"`
	Reason     string              `json:"reason"`
	Message    string              `json:"message"`
	IsResolved bool                `json:"is_resolved"`
	Resolution *ResolutionResponse `json:"resolution,omitempty"`
	CreatedAt  int64               `json:"created_at"`
	UpdatedAt  int64               `json:"updated_at"`
}

// FromDisputeViews never returns nil so the list always renders as an array.
func FromDisputeViews(views []queries.DisputeView) []DisputeResponse {
	res := make([]DisputeResponse, len(views))
	for i, v := range views {
		res[i] = DisputeResponse{
			ID:         v.ID.String(),
			OrderID:    v.OrderID.String(),
			OpenedBy:   uuidPtr(v.OpenedBy),
			Reason:     v.Reason,
			Message:    v.Message,
			IsResolved: v.IsResolved,
			CreatedAt:  v.CreatedAt.Unix(),
			UpdatedAt:  v.UpdatedAt.Unix(),
		}
		if r := v.Resolution; r != nil {
			res[i].Resolution = &ResolutionResponse{
				Outcome:    r.Outcome,
				Note:       r.Note,
				ResolvedBy: r.ResolvedBy.String(),
				ResolvedAt: r.ResolvedAt.Unix(),
			}
		}
	}
	return res
}
