package repository

import (
	"context"
	"fmt"

	"github.com/Sports-day/sports-day-demo/platforms/sportsday"
)

type restRepository struct {
	client sportsday.Client
}

// NewREST returns the live repository, backed by the sports-day REST API.
func NewREST(client sportsday.Client) Repository {
	return &restRepository{client: client}
}

func getList[T any](ctx context.Context, c sportsday.Client, path string, args ...any) ([]T, error) {
	p := fmt.Sprintf(path, args...)
	var res []T
	if err := c.Get(ctx, p, &res); err != nil {
		return nil, translate(err, p)
	}
	if res == nil {
		res = make([]T, 0)
	}
	return res, nil
}

func getOne[T any](ctx context.Context, c sportsday.Client, path string, args ...any) (*T, error) {
	p := fmt.Sprintf(path, args...)
	var res T
	if err := c.Get(ctx, p, &res); err != nil {
		return nil, translate(err, p)
	}
	return &res, nil
}

func post[T any](ctx context.Context, c sportsday.Client, body any, path string, args ...any) (*T, error) {
	p := fmt.Sprintf(path, args...)
	var res T
	if err := c.Post(ctx, p, body, &res); err != nil {
		return nil, translate(err, p)
	}
	return &res, nil
}

func put[T any](ctx context.Context, c sportsday.Client, body any, path string, args ...any) (*T, error) {
	p := fmt.Sprintf(path, args...)
	var res T
	if err := c.Put(ctx, p, body, &res); err != nil {
		return nil, translate(err, p)
	}
	return &res, nil
}

func del(ctx context.Context, c sportsday.Client, path string, args ...any) error {
	p := fmt.Sprintf(path, args...)
	if err := c.Delete(ctx, p); err != nil {
		return translate(err, p)
	}
	return nil
}

func translate(err error, path string) error {
	if sportsday.IsNotFound(err) {
		return fmt.Errorf("%s %w: %w", path, ErrNotFound, err)
	}
	return fmt.Errorf("error calling sports-day %s: %w", path, err)
}
