package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	repo "github.com/storelab/ecommerce-api/internal/domain/repository"
	"github.com/storelab/ecommerce-api/pkg/helpers"
)

// CatalogService fronts the product repository with a Redis read-through
// cache and keeps the Elasticsearch product index in sync. Cache and index
// maintenance are best-effort: a Redis or ES hiccup never fails the request,
// Postgres stays the source of truth.
type CatalogService struct {
	Products        repo.ProductRepository
	Redis           *redis.Client
	ES              *elasticsearch.Client
	ESProductsIndex string
	GCS             *storage.Client
	GCSBucket       string
	Logger          *logrus.Logger
}

func NewCatalogService(products repo.ProductRepository, rdb *redis.Client, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		Products:        products,
		Redis:           rdb,
		ES:              es,
		ESProductsIndex: esIndex,
		GCS:             gcs,
		GCSBucket:       gcsBucket,
		Logger:          logger,
	}
}

const productCacheTTL = 5 * time.Minute

func productCacheKey(id string) string {
	return "product:" + id
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	if s.Redis != nil {
		var cached entity.Product
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, productCacheKey(id), &cached); err == nil && ok {
			return &cached, nil
		}
	}
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		_ = helpers.RedisSetJSON(ctx, s.Redis, productCacheKey(id), p, productCacheTTL)
	}
	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.Products.List(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *entity.Product) error {
	if err := s.Products.Create(ctx, p); err != nil {
		return err
	}
	s.indexProduct(ctx, p)
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, p *entity.Product) error {
	if err := s.Products.Update(ctx, p); err != nil {
		return err
	}
	if s.Redis != nil {
		_ = helpers.RedisDel(ctx, s.Redis, productCacheKey(p.ID))
	}
	s.indexProduct(ctx, p)
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.Products.Delete(ctx, id); err != nil {
		return err
	}
	if s.Redis != nil {
		_ = helpers.RedisDel(ctx, s.Redis, productCacheKey(id))
	}
	s.deleteProductIndex(ctx, id)
	return nil
}

// UploadProductImage stores the image in GCS and saves the public URL on the
// product record.
func (s *CatalogService) UploadProductImage(ctx context.Context, id string, r io.Reader, filename, contentType string) (*entity.Product, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("object storage not configured")
	}
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("products", id, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	p.ImageURL = url
	if err := s.Products.Update(ctx, p); err != nil {
		return nil, err
	}
	if s.Redis != nil {
		_ = helpers.RedisDel(ctx, s.Redis, productCacheKey(p.ID))
	}
	s.indexProduct(ctx, p)
	return p, nil
}

func (s *CatalogService) indexProduct(ctx context.Context, p *entity.Product) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image_url":   p.ImageURL,
		"created_at":  p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESProductsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
}

func (s *CatalogService) deleteProductIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESProductsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// SearchProducts performs a multi_match search on name and description.
func (s *CatalogService) SearchProducts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESProductsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
