package usecase

import (
	"testing"

	"github.com/Waschdachs-Git/RepFinder/internal/domain"
)

func TestDetectBrandTerm(t *testing.T) {
	testCases := []struct {
		name        string
		productName string
		want        string
	}{
		{"simple brand", "Nike Air Max 97", "nike"},
		{"longer term wins over substring", "Nike Air Jordan 1 High", "nike air jordan"},
		{"case insensitive", "ADIDAS Samba OG", "adidas"},
		{"multi-word brand", "The North Face Nuptse", "the north face"},
		{"no brand", "Plain Puffer Jacket", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectBrandTerm(tc.productName); got != tc.want {
				t.Errorf("DetectBrandTerm(%q) = %q, want %q", tc.productName, got, tc.want)
			}
		})
	}
}

func TestProductType(t *testing.T) {
	testCases := []struct {
		name    string
		product domain.Product
		want    string
	}{
		{
			"subcategory pattern",
			domain.Product{Subcategory: "Running Sneakers", Category: domain.CategoryShoes},
			"Sneaker",
		},
		{
			"specific outerwear wins over generic jacket",
			domain.Product{Subcategory: "Puffer Jackets", Category: domain.CategoryCoatsAndJackets},
			"Puffer jacket",
		},
		{
			"tshirt spelling variants",
			domain.Product{Subcategory: "T-Shirts", Category: domain.CategoryTops},
			"T-shirt",
		},
		{
			"category fallback",
			domain.Product{Subcategory: "Something Odd", Category: domain.CategoryJewelry},
			"Jewelry",
		},
		{
			"empty subcategory uses category",
			domain.Product{Category: domain.CategoryShoes},
			"Sneaker",
		},
		{
			"unknown category",
			domain.Product{Category: "mystery"},
			"Product",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ProductType(tc.product); got != tc.want {
				t.Errorf("ProductType() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	p := domain.Product{
		Name:        "Nike Air Max 97 Silver Bullet",
		Subcategory: "Sneakers",
		Category:    domain.CategoryShoes,
	}

	got := DisplayTitle(p)
	want := "Sneaker – inspired by Nike Air Max 97 Silver Bullet"
	if got != want {
		t.Errorf("DisplayTitle() = %q, want %q", got, want)
	}
}
