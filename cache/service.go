// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"

	"github.com/stashkv/stash"
	"github.com/stashkv/stash/pkg/errors"
	svcerr "github.com/stashkv/stash/pkg/errors/service"
)

var _ Service = (*service)(nil)

type service struct {
	repo       Repository
	idProvider stash.IDProvider
}

// NewService instantiates the cache service implementation.
func NewService(repo Repository, idProvider stash.IDProvider) Service {
	return &service{
		repo:       repo,
		idProvider: idProvider,
	}
}

func (svc *service) Store(ctx context.Context, value Value) (string, error) {
	if !value.Kind().Valid() {
		return "", svcerr.ErrUnsupportedType
	}

	key, err := svc.idProvider.ID()
	if err != nil {
		return "", errors.Wrap(svcerr.ErrUniqueID, err)
	}

	if err := svc.repo.Save(ctx, key, value); err != nil {
		return "", errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return key, nil
}

func (svc *service) Retrieve(ctx context.Context, key string, kind Kind) (Value, error) {
	raw, err := svc.repo.Retrieve(ctx, key)
	if err != nil {
		return Value{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	value, err := Decode(raw, kind)
	if err != nil {
		return Value{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	return value, nil
}

func (svc *service) Remove(ctx context.Context, key string) error {
	if err := svc.repo.Remove(ctx, key); err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return nil
}

func (svc *service) Reset(ctx context.Context) error {
	if err := svc.repo.Reset(ctx); err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return nil
}
