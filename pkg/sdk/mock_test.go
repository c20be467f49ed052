package beautydex

import (
	"context"

	"github.com/kailas-cloud/beautydex/internal/domain/product"
	discoveryuc "github.com/kailas-cloud/beautydex/internal/usecase/discovery"
	healthuc "github.com/kailas-cloud/beautydex/internal/usecase/health"
)

// --- askUseCase mock ---

type mockAskUC struct {
	askFn func(ctx context.Context, raw string) discoveryuc.Answer
}

func (m *mockAskUC) Ask(ctx context.Context, raw string) discoveryuc.Answer {
	return m.askFn(ctx, raw)
}

// --- recommendUseCase mock ---

type mockRecommendUC struct {
	productFn   func(ctx context.Context, id string) (product.Product, error)
	recommendFn func(ctx context.Context, id string, limit int) ([]product.Product, error)
}

func (m *mockRecommendUC) Product(ctx context.Context, id string) (product.Product, error) {
	return m.productFn(ctx, id)
}

func (m *mockRecommendUC) Recommend(ctx context.Context, id string, limit int) ([]product.Product, error) {
	return m.recommendFn(ctx, id, limit)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }

// --- helpers ---

func testClient(askSvc askUseCase, recommendSvc recommendUseCase, healthSvc healthUseCase) *Client {
	return &Client{
		askSvc:       askSvc,
		recommendSvc: recommendSvc,
		healthSvc:    healthSvc,
	}
}

func score(f float64) *float64 { return &f }

func sampleCatalog() []Product {
	return []Product{
		{ID: "rj-1", Name: "Mat Ruj", Price: "199 TL", RatingScore: score(4.2), Subcategory: "ruj"},
		{ID: "rj-2", Name: "Parlak Ruj", Price: "149 TL", RatingScore: score(4.9), Subcategory: "ruj"},
		{ID: "mk-1", Name: "Hacim Maskarası", Price: "249 TL", RatingScore: score(4.7), Subcategory: "kas_maskarasi"},
		{ID: "fr-1", Name: "Toprak Far Paleti", Price: "399 TL", Subcategory: "far", Description: "Sıcak tonlar"},
	}
}
