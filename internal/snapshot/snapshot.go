// Package snapshot stores the dated observations kept per book: retailer
// rankings, retailer prices and the daily averages derived from them. Rows
// are append-only and always read newest first.
package snapshot

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a book has no snapshot of the requested kind.
var ErrNotFound = errors.New("snapshot not found")

// Foreign keys from each snapshot table to the book catalog.
const (
	ConstraintRankingBook = "a_books_kyoboranking_book_fk"
	ConstraintPriceBook   = "a_books_kyoboprice_book_fk"
	ConstraintAverageBook = "a_books_average_book_fk"
)

// Column scales of the NUMERIC columns.
const (
	ratingPrecision, ratingScale = 3, 1
	moneyPrecision, moneyScale   = 10, 2
)

// Ranking is one day's Kyobo bestseller position for a book.
type Ranking struct {
	ID        int64           `json:"rankingid"`
	BookISBN  string          `json:"book" validate:"required,len=13"`
	InputDate time.Time       `json:"inputdate"`
	Rank      int             `json:"kyoborank"`
	Rating    decimal.Decimal `json:"kyoborating"`
	Reviews   int             `json:"kyoboreview" validate:"gte=0"`
	UpDown    int             `json:"kyoboupdown"`
}

// Price is one day's Kyobo list and sale price for a book.
type Price struct {
	ID        int64           `json:"priceid"`
	BookISBN  string          `json:"book" validate:"required,len=13"`
	InputDate time.Time       `json:"inputdate"`
	Price     decimal.Decimal `json:"kyoboprice"`
	SalePrice decimal.Decimal `json:"kyobosaleprice"`
	Points    int             `json:"kyobopoint" validate:"gte=0"`
	URL       string          `json:"kyobourl" validate:"omitempty,url"`
}

// Average is the daily rollup computed by the averaging job.
type Average struct {
	ID          int64           `json:"priceid"`
	BookISBN    string          `json:"book" validate:"required,len=13"`
	InputDate   time.Time       `json:"inputdate"`
	Rating      decimal.Decimal `json:"averagerating"`
	Ranking     decimal.Decimal `json:"averageranking"`
	WeekRanking int             `json:"averageweekranking"`
}
