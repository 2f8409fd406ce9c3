package converter

import (
	"encoding/json"

	"marketplace-core/internal/domain/dispute"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/pgconv"
)

func DisputeToCreateParams(d *dispute.Dispute) sqlc.CreateDisputeParams {
	return sqlc.CreateDisputeParams{
		ID:        d.ID(),
		OrderID:   d.OrderID(),
		OpenedBy:  pgconv.UUIDPtrToPgtype(d.OpenedBy()),
		Reason:    string(d.Reason()),
		Message:   d.Message(),
		CreatedAt: pgconv.TimeToPgtype(d.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(d.UpdatedAt()),
	}
}

func DisputeToResolveParams(d *dispute.Dispute) (sqlc.ResolveDisputeParams, error) {
	raw, err := json.Marshal(d.Resolution())
	if err != nil {
		return sqlc.ResolveDisputeParams{}, errs.Wrap(err, "failed to encode dispute resolution")
	}
	return sqlc.ResolveDisputeParams{
		ID:         d.ID(),
		Resolution: raw,
		UpdatedAt:  pgconv.TimeToPgtype(d.UpdatedAt()),
	}, nil
}

func DisputeFromRow(row sqlc.Disputes) (*dispute.Dispute, error) {
	reason, err := dispute.ParseReason(row.Reason)
	if err != nil {
		return nil, errs.Wrapf(err, "stored dispute %s", row.ID)
	}
	resolution, err := DecodeResolution(row.Resolution)
	if err != nil {
		return nil, errs.Wrapf(err, "stored dispute %s", row.ID)
	}
	return dispute.Reconstruct(
		row.ID,
		row.OrderID,
		pgconv.UUIDPtrFromPgtype(row.OpenedBy),
		reason,
		row.Message,
		row.IsResolved,
		resolution,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func DecodeResolution(raw []byte) (*dispute.Resolution, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var res dispute.Resolution
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, errs.Wrap(err, "failed to decode dispute resolution")
	}
	return &res, nil
}
