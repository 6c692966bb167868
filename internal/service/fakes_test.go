package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jaiswalarts/artshop/internal/events"
	"github.com/jaiswalarts/artshop/internal/models"
	"github.com/jaiswalarts/artshop/internal/repo"
	"github.com/jaiswalarts/artshop/internal/testutil"
	"github.com/jaiswalarts/artshop/internal/uploads"
	"github.com/jaiswalarts/artshop/pkg/tokens"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	topics []string
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Type
	}
	return out
}

type fakeIndex struct {
	enabled   bool
	indexed   []uint
	deleted   []uint
	searchErr error
	hits      []models.Product
	total     int64
	failWrite bool
}

func (f *fakeIndex) Enabled() bool { return f.enabled }

func (f *fakeIndex) IndexProduct(_ context.Context, p *models.Product) error {
	if f.failWrite {
		return errors.New("index unavailable")
	}
	f.indexed = append(f.indexed, p.ID)
	return nil
}

func (f *fakeIndex) DeleteProduct(_ context.Context, id uint) error {
	if f.failWrite {
		return errors.New("index unavailable")
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeIndex) Search(context.Context, string, int, int) (int64, []models.Product, error) {
	return f.total, f.hits, f.searchErr
}

type fakeGateway struct {
	calls    int
	amount   int
	currency string
	resp     map[string]any
	err      error
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount int, currency string) (map[string]any, error) {
	g.calls++
	g.amount, g.currency = amount, currency
	return g.resp, g.err
}

type memImages struct {
	saved map[string]string
}

func (m *memImages) Save(filename string, src io.Reader) (string, error) {
	if filename == "" {
		return "", uploads.ErrBadFilename
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	if m.saved == nil {
		m.saved = map[string]string{}
	}
	m.saved[filename] = string(data)
	return "uploads/" + filename, nil
}

func newAccountService(t *testing.T) (*AccountService, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	return &AccountService{
		Repo:   repo.New(testutil.NewDB(t)),
		Tokens: tokens.NewIssuer([]byte("test-jwt-secret"), tokens.DefaultTTL),
		Events: pub,
	}, pub
}

func newCatalogService(t *testing.T) (*CatalogService, *fakeIndex, *recordingPublisher, *memImages) {
	t.Helper()
	idx := &fakeIndex{}
	pub := &recordingPublisher{}
	imgs := &memImages{}
	return &CatalogService{
		Repo:   repo.New(testutil.NewDB(t)),
		Images: imgs,
		Index:  idx,
		Events: pub,
	}, idx, pub, imgs
}

func mustProduct(t *testing.T, r *repo.GormRepo, name, category string) *models.Product {
	t.Helper()
	p, err := r.CreateProduct(context.Background(), &models.Product{
		Name:     name,
		Artist:   "A. Jaiswal",
		Category: category,
		ImageURL: "uploads/x.jpg",
		Slug:     name,
	})
	require.NoError(t, err)
	return p
}
