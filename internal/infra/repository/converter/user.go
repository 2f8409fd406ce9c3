package converter

import (
	"marketplace-core/internal/domain/reputation"
	"marketplace-core/internal/domain/user"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:          u.ID(),
		Email:       u.Email().Value(),
		DisplayName: u.DisplayName().Value(),
		Role:        u.Role().String(),
		CreatedAt:   pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	displayName, err := user.NewDisplayName(row.DisplayName)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	trust, err := pgconv.Float64PtrFromPgtype(row.TrustScore)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		email,
		displayName,
		role,
		trust,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func StatsFromRow(row sqlc.ReputationStats) *reputation.Stats {
	return reputation.ReconstructStats(
		row.UserID,
		reputation.Side{RatingSum: row.SellerRatingSum, RatingCount: row.SellerRatingCount, ItemsTransacted: row.SellerItems},
		reputation.Side{RatingSum: row.BuyerRatingSum, RatingCount: row.BuyerRatingCount, ItemsTransacted: row.BuyerItems},
		row.Cancellations,
		row.NoShows,
		row.Disputes,
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func StatsToUpdateParams(s *reputation.Stats) sqlc.UpdateReputationStatsParams {
	return sqlc.UpdateReputationStatsParams{
		UserID:            s.UserID(),
		SellerRatingSum:   s.Seller().RatingSum,
		SellerRatingCount: s.Seller().RatingCount,
		SellerItems:       s.Seller().ItemsTransacted,
		BuyerRatingSum:    s.Buyer().RatingSum,
		BuyerRatingCount:  s.Buyer().RatingCount,
		BuyerItems:        s.Buyer().ItemsTransacted,
		Cancellations:     s.Cancellations(),
		NoShows:           s.NoShows(),
		Disputes:          s.Disputes(),
		UpdatedAt:         pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}
