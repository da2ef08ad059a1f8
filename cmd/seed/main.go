package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"bookshelf/internal/activity"
	"bookshelf/internal/book"
	"bookshelf/internal/platform/clock"
	"bookshelf/internal/platform/config"
	"bookshelf/internal/platform/dberr"
	"bookshelf/internal/platform/postgres"
	"bookshelf/internal/readinglist"
	"bookshelf/internal/readingstats"
	"bookshelf/internal/snapshot"
	"bookshelf/internal/user"

	"github.com/shopspring/decimal"
)

type services struct {
	books      *book.Service
	snapshots  *snapshot.Service
	users      *user.Service
	shelf      *readinglist.Service
	stats      *readingstats.Service
	activities *activity.Service
}

func main() {
	var (
		count = flag.Int("books", 50, "Number of books to generate")
		days  = flag.Int("days", 14, "Days of ranking and price history per book")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stderr)

	if err := run(context.Background(), cfg, logger, *count, *days); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, count, days int) error {
	if count <= 0 {
		return errNoBooks
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clk := clock.System{Location: loc}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := services{
		books:      book.NewService(book.NewPostgresRepo(pool, cfg.DBTimeout)),
		snapshots:  snapshot.NewService(snapshot.NewPostgresRepo(pool, cfg.DBTimeout), clk),
		users:      user.NewService(user.NewPostgresRepo(pool, cfg.DBTimeout), clk),
		shelf:      readinglist.NewService(readinglist.NewPostgresRepo(pool, cfg.DBTimeout)),
		stats:      readingstats.NewService(readingstats.NewPostgresRepo(pool, cfg.DBTimeout)),
		activities: activity.NewService(activity.NewPostgresRepo(pool, cfg.DBTimeout), clk),
	}

	logger.Info("generating books", slog.Int("count", count), slog.Int("days", days))
	today := clock.Today(clk)
	isbns := make([]string, 0, count)
	for i := 0; i < count; i++ {
		b := randomBook(i)
		if err := svc.books.Upsert(ctx, &b); err != nil {
			return fmt.Errorf("book %d: %w", i+1, err)
		}
		isbns = append(isbns, b.ISBN)

		if err := seedHistory(ctx, svc.snapshots, b.ISBN, today, days); err != nil {
			return err
		}
		if (i+1)%10 == 0 {
			logger.Info("generated books", slog.Int("done", i+1), slog.Int("total", count))
		}
	}

	return seedReader(ctx, logger, svc, isbns)
}

// seedHistory writes one ranking, price and average per day, oldest first,
// ending with today's row which is left to the default input date.
func seedHistory(ctx context.Context, snapshots *snapshot.Service, isbn string, today time.Time, days int) error {
	rank := 1 + rand.Intn(200)
	listPrice := decimal.NewFromInt(int64(12+rand.Intn(14)) * 1000)
	for d := days - 1; d >= 0; d-- {
		var inputDate time.Time
		if d > 0 {
			inputDate = today.AddDate(0, 0, -d)
		}

		move := rand.Intn(11) - 5
		if rank-move < 1 {
			move = rank - 1
		}
		rank -= move
		rating := decimal.NewFromFloat(7 + rand.Float64()*3)

		if err := snapshots.RecordRanking(ctx, &snapshot.Ranking{
			BookISBN: isbn, InputDate: inputDate, Rank: rank, Rating: rating,
			Reviews: rand.Intn(500), UpDown: move,
		}); err != nil {
			return err
		}
		if err := snapshots.RecordPrice(ctx, &snapshot.Price{
			BookISBN: isbn, InputDate: inputDate, Price: listPrice,
			SalePrice: listPrice.Mul(decimal.RequireFromString("0.9")),
			Points:    int(listPrice.IntPart() / 20),
			URL:       "https://product.kyobobook.co.kr/detail/" + isbn,
		}); err != nil {
			return err
		}
		if err := snapshots.RecordAverage(ctx, &snapshot.Average{
			BookISBN: isbn, InputDate: inputDate, Rating: rating,
			Ranking: decimal.NewFromInt(int64(rank % 100)), WeekRanking: rank,
		}); err != nil {
			return err
		}
	}
	return nil
}

func seedReader(ctx context.Context, logger *slog.Logger, svc services, isbns []string) error {
	demo, err := svc.users.Register(ctx, user.RegisterInput{
		Username: "demo",
		Password: "Demo1234!",
		Email:    "demo@example.com",
		Nickname: "demo",
	})
	switch {
	case dberr.IsUniqueViolation(err, ""):
		logger.Info("demo user already exists, skipping reader data")
		return nil
	case err != nil:
		return fmt.Errorf("demo user: %w", err)
	}

	if _, err := svc.stats.Create(ctx, demo.ID); err != nil {
		return err
	}

	statuses := readinglist.Statuses
	for i, isbn := range isbns {
		if i == 10 {
			break
		}
		st := statuses[i%len(statuses)]
		if _, err := svc.shelf.Add(ctx, readinglist.AddInput{UserID: demo.ID, BookISBN: isbn, Status: st}); err != nil {
			return err
		}

		kind := activity.TypeStart
		if st == readinglist.StatusCompleted {
			kind = activity.TypeComplete
		}
		if err := svc.activities.Record(ctx, &activity.Activity{UserID: demo.ID, Type: kind, BookISBN: &isbn}); err != nil {
			return err
		}
	}

	logger.Info("seeded demo reader", slog.Int64("user_id", demo.ID), slog.String("nickname", demo.String()))
	return nil
}

var (
	titles     = []string{"소년이 온다", "채식주의자", "작별하지 않는다", "불편한 편의점", "아몬드", "달러구트 꿈 백화점", "역행자", "세이노의 가르침", "트렌드 코리아", "물고기는 존재하지 않는다"}
	authors    = []string{"한강", "김호연", "손원평", "이미예", "자청", "세이노", "김난도", "룰루 밀러"}
	publishers = []string{"창비", "문학동네", "나무옆의자", "다산북스", "웅진지식하우스", "미래의창", "곰출판"}
	categories = []string{"소설", "에세이", "자기계발", "경제경영", "인문", "과학"}
)

var errNoBooks = errors.New("no books requested")

func randomBook(i int) book.Book {
	return book.Book{
		ISBN:       fmt.Sprintf("979%010d", 1_100_000_000+i),
		Title:      fmt.Sprintf("%s %d", titles[rand.Intn(len(titles))], i+1),
		Author:     authors[rand.Intn(len(authors))],
		Publisher:  publishers[rand.Intn(len(publishers))],
		Publishing: time.Date(2000+rand.Intn(25), time.Month(1+rand.Intn(12)), 1+rand.Intn(28), 0, 0, 0, 0, time.UTC),
		CoverURL:   fmt.Sprintf("https://contents.kyobobook.co.kr/sih/fit-in/458x0/pdt/979%010d.jpg", 1_100_000_000+i),
		Category:   categories[rand.Intn(len(categories))],
	}
}
