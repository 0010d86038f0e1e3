package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"shopfront/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

const dateLayout = "2006-01-02"

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID           string                `yaml:"id"`
	Name         string                `yaml:"name"`
	Price        float64               `yaml:"price"`
	Rating       float64               `yaml:"rating"`
	ArrivalDate  string                `yaml:"arrival_date"`
	TotalRatings int                   `yaml:"total_ratings"`
	Images       []domain.ProductImage `yaml:"images"`
	Description  string                `yaml:"description"`
	Comments     []seedComment         `yaml:"comments"`
}

type seedComment struct {
	ID       string  `yaml:"id"`
	Username string  `yaml:"username"`
	Text     string  `yaml:"text"`
	Rating   float64 `yaml:"rating"`
}

// SeedProducts decodes the built-in demo catalog
func SeedProducts() ([]domain.Product, error) {
	return parseSeed(seedYAML)
}

func parseSeed(data []byte) ([]domain.Product, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	products := make([]domain.Product, 0, len(f.Products))
	for _, sp := range f.Products {
		arrival, err := time.Parse(dateLayout, sp.ArrivalDate)
		if err != nil {
			return nil, fmt.Errorf("product %s: invalid arrival date: %w", sp.ID, err)
		}
		p := domain.Product{
			ID:           sp.ID,
			Name:         sp.Name,
			Price:        sp.Price,
			Rating:       sp.Rating,
			Images:       sp.Images,
			Description:  strings.TrimRight(sp.Description, "\n"),
			ArrivalDate:  arrival,
			TotalRatings: sp.TotalRatings,
		}
		for _, sc := range sp.Comments {
			p.Comments = append(p.Comments, domain.Comment{
				ID:        sc.ID,
				ProductID: sp.ID,
				Username:  sc.Username,
				Text:      sc.Text,
				Rating:    sc.Rating,
				CreatedAt: arrival,
			})
		}
		products = append(products, p)
	}
	return products, nil
}
