package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitPrice(t *testing.T) {
	p := Product{Price: 100}
	assert.Equal(t, 100.0, p.UnitPrice())

	sale := 80.0
	p.SalePrice = &sale
	assert.Equal(t, 80.0, p.UnitPrice())
}

func TestDisplayImage(t *testing.T) {
	legacy := "uploads/old.jpg"
	p := Product{LegacyImage: &legacy}
	assert.Equal(t, "uploads/old.jpg", p.DisplayImage())

	p.Images = []ProductImage{
		{URL: "uploads/a.jpg"},
		{URL: "uploads/b.jpg", IsPrimary: true},
	}
	assert.Equal(t, "uploads/b.jpg", p.DisplayImage())

	p.Images[1].IsPrimary = false
	assert.Equal(t, "uploads/a.jpg", p.DisplayImage())

	p.Images = nil
	p.LegacyImage = nil
	assert.Empty(t, p.DisplayImage())
}

func TestEffectiveSlug(t *testing.T) {
	c := Category{Name: "Brake Parts", Slug: "brakes"}
	assert.Equal(t, "brakes", c.EffectiveSlug())

	c.Slug = ""
	assert.Equal(t, "brake-parts", c.EffectiveSlug())
}
