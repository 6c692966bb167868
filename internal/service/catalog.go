package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jaiswalarts/artshop/internal/events"
	"github.com/jaiswalarts/artshop/internal/models"
	"github.com/jaiswalarts/artshop/internal/repo"
	"github.com/jaiswalarts/artshop/internal/search"
	"github.com/jaiswalarts/artshop/internal/transport"
	"github.com/jaiswalarts/artshop/internal/uploads"
	"github.com/jaiswalarts/artshop/internal/util"
	"github.com/jaiswalarts/artshop/pkg/logging"
)

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	Save(filename string, src io.Reader) (string, error)
}

type CatalogService struct {
	Repo   *repo.GormRepo
	Images ImageStore
	Index  search.Index
	Events events.Publisher
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return prod, err
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	prod, err := s.Repo.GetProductBySlug(ctx, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return prod, err
}

func (s *CatalogService) SearchProducts(ctx context.Context, query, category string) ([]models.Product, error) {
	return s.Repo.SearchProducts(ctx, query, category)
}

// FullText pages through fuzzy matches from the search index. Without an
// index, or when the index fails, it pages through the name search instead.
func (s *CatalogService) FullText(ctx context.Context, query string, page, size int) (*transport.SearchResponse, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.full_text")

	from, limit := util.Calculate(page, size)
	if page < 1 {
		page = 1
	}

	if s.Index != nil && s.Index.Enabled() {
		total, items, err := s.Index.Search(ctx, query, from, limit)
		if err == nil {
			if items == nil {
				items = []models.Product{}
			}
			return &transport.SearchResponse{Total: total, Items: items, Page: page, Size: limit}, nil
		}
		l.Error("search_index_error", "reason", "falling back to database", "error", err)
	}

	all, err := s.Repo.SearchProducts(ctx, query, "")
	if err != nil {
		return nil, err
	}
	items := []models.Product{}
	if from < len(all) {
		items = all[from:min(from+limit, len(all))]
	}
	return &transport.SearchResponse{Total: int64(len(all)), Items: items, Page: page, Size: limit}, nil
}

// AddProduct stores the image, then the product row under Slugify(name).
func (s *CatalogService) AddProduct(ctx context.Context, form transport.ProductForm, filename string, image io.Reader) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.add_product")

	if form.OriginalPrice == nil || form.CurrentPrice == nil {
		return nil, fmt.Errorf("%w: original_price and current_price are required", ErrValidation)
	}
	slug := util.Slugify(form.Name)
	if slug == "" {
		return nil, fmt.Errorf("%w: name has no slug characters", ErrValidation)
	}

	if _, err := s.Repo.GetProductBySlug(ctx, slug); err == nil {
		l.Warn("add_product_error", "status", 409, "reason", "slug taken", "slug", slug)
		return nil, fmt.Errorf("%w: slug %q", ErrConflict, slug)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("lookup slug: %w", err)
	}

	imageURL, err := s.Images.Save(filename, image)
	if err != nil {
		if errors.Is(err, uploads.ErrBadFilename) {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		l.Error("add_product_error", "status", 500, "reason", "cannot store image", "error", err)
		return nil, fmt.Errorf("save image: %w", err)
	}

	prod := &models.Product{
		Name:          form.Name,
		Artist:        form.Artist,
		Description:   form.Description,
		Category:      form.Category,
		OriginalPrice: *form.OriginalPrice,
		CurrentPrice:  *form.CurrentPrice,
		ImageURL:      imageURL,
		Slug:          slug,
	}
	if shape := strings.TrimSpace(form.Shape); shape != "" {
		prod.Shape = &shape
	}

	if _, err := s.Repo.CreateProduct(ctx, prod); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, fmt.Errorf("%w: slug %q", ErrConflict, slug)
		}
		l.Error("add_product_error", "status", 500, "reason", "cannot add product to db", "error", err)
		return nil, fmt.Errorf("create product: %w", err)
	}

	if s.Index != nil {
		if err := s.Index.IndexProduct(ctx, prod); err != nil {
			l.Error("search_index_error", "product_id", prod.ID, "error", err)
		}
	}
	s.publish(ctx, "product_created", prod)
	l.Info("add_product_success", "product_id", prod.ID, "slug", slug)
	return prod, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "catalog.delete_product")

	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}

	if s.Index != nil {
		if err := s.Index.DeleteProduct(ctx, id); err != nil {
			l.Error("search_index_error", "product_id", id, "error", err)
		}
	}
	s.publish(ctx, "product_deleted", &models.Product{ID: id})
	return nil
}

func (s *CatalogService) publish(ctx context.Context, typ string, prod *models.Product) {
	if s.Events == nil {
		return
	}
	ev := events.Event{
		Type: typ,
		Key:  strconv.FormatUint(uint64(prod.ID), 10),
		Data: map[string]any{"id": prod.ID, "name": prod.Name, "slug": prod.Slug},
	}
	if err := s.Events.Publish(ctx, events.TopicProducts, ev); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", events.TopicProducts, "type", typ, "error", err)
	}
}
