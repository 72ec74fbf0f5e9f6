package catalog

import (
	"context"
	"io"
	"path"

	"farmstand/internal/structs"
	"farmstand/pkg/filemanager"
	"farmstand/pkg/logger"
	"farmstand/pkg/upstream"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	Params struct {
		fx.In
		Upstream upstream.Client
		Files    filemanager.File
		Logger   logger.Logger
	}

	Service interface {
		List(ctx context.Context) ([]structs.Product, error)
		Get(ctx context.Context, id string) (structs.Product, error)
		Create(ctx context.Context, sess structs.Session, req structs.CreateProduct) (structs.Product, error)
		Update(ctx context.Context, sess structs.Session, id string, req structs.PatchProduct) (structs.Product, error)
		Delete(ctx context.Context, sess structs.Session, id string) error
		UploadImage(ctx context.Context, filename string, contentType string, body io.Reader) (string, error)
	}

	service struct {
		upstream upstream.Client
		files    filemanager.File
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		upstream: p.Upstream,
		files:    p.Files,
		logger:   p.Logger,
	}
}

func (s *service) List(ctx context.Context) ([]structs.Product, error) {
	products, err := s.upstream.ListProducts(ctx)
	if err != nil {
		s.logger.Error(ctx, "->upstream.ListProducts", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, id string) (structs.Product, error) {
	product, err := s.upstream.GetProduct(ctx, id)
	if err != nil {
		s.logger.Error(ctx, "->upstream.GetProduct", zap.Error(err))
		return structs.Product{}, err
	}
	return product, nil
}

func (s *service) Create(ctx context.Context, sess structs.Session, req structs.CreateProduct) (structs.Product, error) {
	product, err := s.upstream.CreateProduct(ctx, sess.UpstreamToken, req)
	if err != nil {
		s.logger.Error(ctx, "->upstream.CreateProduct", zap.Error(err))
		return structs.Product{}, err
	}
	return product, nil
}

func (s *service) Update(ctx context.Context, sess structs.Session, id string, req structs.PatchProduct) (structs.Product, error) {
	product, err := s.upstream.UpdateProduct(ctx, sess.UpstreamToken, id, req)
	if err != nil {
		s.logger.Error(ctx, "->upstream.UpdateProduct", zap.Error(err))
		return structs.Product{}, err
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, sess structs.Session, id string) error {
	if err := s.upstream.DeleteProduct(ctx, sess.UpstreamToken, id); err != nil {
		s.logger.Error(ctx, "->upstream.DeleteProduct", zap.Error(err))
		return err
	}
	return nil
}

// UploadImage stores a product photo and returns its public URL, to be
// sent upstream as the product's imageURL.
func (s *service) UploadImage(ctx context.Context, filename string, contentType string, body io.Reader) (string, error) {
	key := "products/" + uuid.NewString() + path.Ext(filename)

	url, err := s.files.Upload(ctx, body, key, contentType)
	if err != nil {
		s.logger.Error(ctx, "->files.Upload", zap.Error(err))
		return "", err
	}
	return url, nil
}
