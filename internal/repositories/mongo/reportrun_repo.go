package mongo

import (
	"context"
	"time"

	"github.com/vijaydevops-git/AugConsultant-sub000/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRunRepository interface {
	Insert(ctx context.Context, run *models.ReportRun) error
	ListRecent(ctx context.Context, limit int64) ([]models.ReportRun, error)
}

type reportRunRepo struct {
	col *mongo.Collection
}

func NewReportRunRepo(db *mongo.Database) ReportRunRepository {
	return &reportRunRepo{col: db.Collection("report_runs")}
}

func (r *reportRunRepo) Insert(ctx context.Context, run *models.ReportRun) error {
	if run.RanAt.IsZero() {
		run.RanAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, run)
	return err
}

func (r *reportRunRepo) ListRecent(ctx context.Context, limit int64) ([]models.ReportRun, error) {
	if limit <= 0 {
		limit = 50
	}
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"ran_at": -1}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ReportRun
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
