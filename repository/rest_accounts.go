package repository

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
)

func (r *restRepository) GetMicrosoftAccounts(ctx context.Context) ([]model.MicrosoftAccount, error) {
	return getList[model.MicrosoftAccount](ctx, r.client, "/microsoft-accounts")
}

func (r *restRepository) GetMicrosoftAccount(ctx context.Context, ref model.AccountRef) (*model.MicrosoftAccount, error) {
	return getOne[model.MicrosoftAccount](ctx, r.client, "/microsoft-accounts/%s", ref)
}

func (r *restRepository) DeleteMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	return del(ctx, r.client, "/microsoft-accounts/%s", ref)
}

func (r *restRepository) SetMicrosoftAccountRole(ctx context.Context, ref model.AccountRef, role model.Role) (*model.MicrosoftAccount, error) {
	body := struct {
		Role model.Role `json:"role"`
	}{Role: role}
	return put[model.MicrosoftAccount](ctx, r.client, body, "/microsoft-accounts/%s/role", ref)
}

func (r *restRepository) LinkMicrosoftAccount(ctx context.Context, ref model.AccountRef, userID int32) error {
	body := struct {
		UserID int32 `json:"userId"`
	}{UserID: userID}
	p := "/microsoft-accounts/" + ref.String() + "/link"
	if err := r.client.Post(ctx, p, body, nil); err != nil {
		return translate(err, p)
	}
	return nil
}

func (r *restRepository) UnlinkMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	return del(ctx, r.client, "/microsoft-accounts/%s/link", ref)
}

func (r *restRepository) LinkLaterMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	p := "/microsoft-accounts/" + ref.String() + "/link-later"
	if err := r.client.Post(ctx, p, struct{}{}, nil); err != nil {
		return translate(err, p)
	}
	return nil
}
