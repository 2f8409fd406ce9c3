package response

import (
	"marketplace-core/internal/domain/user"
	"marketplace-core/internal/usecase/queries"
)

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	CreatedAt   int64  `json:"created_at"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID().String(),
		Email:       u.Email().Value(),
		DisplayName: u.DisplayName().Value(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt().Unix(),
	}
}

type SideResponse struct {
	Average         *float64 `json:"average,omitempty"`
	Count           int64    `json:"count"`
	ItemsTransacted int64    `json:"items_transacted"`
}

type ReputationResponse struct {
	UserID        string       `json:"user_id"`
	DisplayName   string       `json:"display_name"`
	TrustScore    *float64     `json:"trust_score,omitempty"`
	Seller        SideResponse `json:"seller"`
	Buyer         SideResponse `json:"buyer"`
	Cancellations int64        `json:"cancellations"`
	NoShows       int64        `json:"no_shows"`
	Disputes      int64        `json:"disputes"`
	UpdatedAt     int64        `json:"updated_at"`
}

func FromReputationView(v *queries.ReputationView) (*ReputationResponse, error) {
	var res ReputationResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
