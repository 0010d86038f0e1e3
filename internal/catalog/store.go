// Package catalog stores the demo products and their comments.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopfront/internal/domain"
)

var (
	// ErrProductNotFound is returned for an unknown product id
	ErrProductNotFound = errors.New("product not found")
	// ErrEmptyComment is returned when the trimmed comment text is empty
	ErrEmptyComment = errors.New("comment text is empty")
	// ErrInvalidRating is returned for a rating outside (0, 5]
	ErrInvalidRating = errors.New("rating must be greater than 0 and at most 5")
)

// MaxRating is the number of stars of the rating scale
const MaxRating = 5

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            TEXT PRIMARY KEY,
	position      INTEGER NOT NULL,
	name          TEXT NOT NULL,
	price         REAL NOT NULL,
	rating        REAL NOT NULL,
	description   TEXT NOT NULL,
	arrival_date  TEXT NOT NULL,
	total_ratings INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS product_images (
	product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	id         TEXT NOT NULL,
	src        TEXT NOT NULL,
	alt        TEXT NOT NULL,
	PRIMARY KEY (product_id, id)
);
CREATE TABLE IF NOT EXISTS comments (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	username   TEXT NOT NULL,
	text       TEXT NOT NULL,
	rating     REAL NOT NULL,
	created_at TEXT NOT NULL
);
`

// Store persists the catalog in SQLite
type Store struct {
	db    *sql.DB
	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

// NewStore creates the catalog tables on db if needed
func NewStore(ctx context.Context, db *sql.DB, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return &Store{
		db:    db,
		log:   logger.Named("catalog"),
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

// Seed inserts products when the catalog is empty. It reports whether
// anything was written.
func (s *Store) Seed(ctx context.Context, products []domain.Product) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count products: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	for i, p := range products {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO products (id, position, name, price, rating, description, arrival_date, total_ratings)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Name, p.Price, p.Rating, p.Description, p.ArrivalDate.Format(dateLayout), p.TotalRatings,
		); err != nil {
			return false, fmt.Errorf("failed to insert product %s: %w", p.ID, err)
		}
		for j, img := range p.Images {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO product_images (product_id, position, id, src, alt) VALUES (?, ?, ?, ?, ?)`,
				p.ID, j, img.ID, img.Src, img.Alt,
			); err != nil {
				return false, fmt.Errorf("failed to insert image %s: %w", img.ID, err)
			}
		}
		for _, c := range p.Comments {
			if err := insertComment(ctx, tx, p.ID, c); err != nil {
				return false, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}
	s.log.Info("seeded catalog", zap.Int("products", len(products)))
	return true, nil
}

// Products returns every product in catalog order
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, price, rating, description, arrival_date, total_ratings
		 FROM products ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	index := make(map[string]int)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	images, err := s.images(ctx, "")
	if err != nil {
		return nil, err
	}
	for id, imgs := range images {
		if i, ok := index[id]; ok {
			products[i].Images = imgs
		}
	}

	comments, err := s.comments(ctx, "")
	if err != nil {
		return nil, err
	}
	for id, cs := range comments {
		if i, ok := index[id]; ok {
			products[i].Comments = cs
		}
	}
	return products, nil
}

// Product returns one product with its images and comments
func (s *Store) Product(ctx context.Context, id string) (domain.Product, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, price, rating, description, arrival_date, total_ratings
		 FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	if err != nil {
		return domain.Product{}, err
	}

	images, err := s.images(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	p.Images = images[id]

	comments, err := s.comments(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	p.Comments = comments[id]
	return p, nil
}

// AddComment validates and stores a new comment. The product's rating count
// grows by one.
func (s *Store) AddComment(ctx context.Context, productID, username, text string, rating float64) (domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Comment{}, ErrEmptyComment
	}
	if rating <= 0 || rating > MaxRating {
		return domain.Comment{}, fmt.Errorf("%w: %v", ErrInvalidRating, rating)
	}

	c := domain.Comment{
		ID:        s.newID(),
		ProductID: productID,
		Username:  username,
		Text:      text,
		Rating:    rating,
		CreatedAt: s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to begin comment insert: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE products SET total_ratings = total_ratings + 1 WHERE id = ?`, productID)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to update rating count: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.Comment{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	if err := insertComment(ctx, tx, productID, c); err != nil {
		return domain.Comment{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Comment{}, fmt.Errorf("failed to commit comment: %w", err)
	}

	s.log.Info("comment added",
		zap.String("product", productID),
		zap.String("comment", c.ID),
		zap.Float64("rating", rating))
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p       domain.Product
		arrival string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Rating, &p.Description, &arrival, &p.TotalRatings); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("failed to scan product: %w", err)
	}
	t, err := time.Parse(dateLayout, arrival)
	if err != nil {
		return p, fmt.Errorf("product %s: invalid arrival date: %w", p.ID, err)
	}
	p.ArrivalDate = t
	return p, nil
}

// images returns images grouped by product; productID "" selects all
func (s *Store) images(ctx context.Context, productID string) (map[string][]domain.ProductImage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, id, src, alt FROM product_images
		 WHERE ? = '' OR product_id = ?
		 ORDER BY product_id, position`, productID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.ProductImage)
	for rows.Next() {
		var pid string
		var img domain.ProductImage
		if err := rows.Scan(&pid, &img.ID, &img.Src, &img.Alt); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		out[pid] = append(out[pid], img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read images: %w", err)
	}
	return out, nil
}

// comments returns comments grouped by product in insertion order
func (s *Store) comments(ctx context.Context, productID string) (map[string][]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, product_id, username, text, rating, created_at FROM comments
		 WHERE ? = '' OR product_id = ?
		 ORDER BY seq`, productID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Comment)
	for rows.Next() {
		var c domain.Comment
		var created string
		if err := rows.Scan(&c.ID, &c.ProductID, &c.Username, &c.Text, &c.Rating, &created); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		if c.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("comment %s: invalid timestamp: %w", c.ID, err)
		}
		out[c.ProductID] = append(out[c.ProductID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}
	return out, nil
}

func insertComment(ctx context.Context, tx *sql.Tx, productID string, c domain.Comment) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO comments (id, product_id, username, text, rating, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, productID, c.Username, c.Text, c.Rating, c.CreatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("failed to insert comment %s: %w", c.ID, err)
	}
	return nil
}
