package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"aging_curve/db"
	"aging_curve/models"
)

// tickingClock 每次调用前进一秒，保证 created_at 严格递增
func tickingClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}

func newSQLiteRepo(t *testing.T) *ResultRepository {
	t.Helper()
	conn, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, db.Migrate(context.Background(), conn, db.DriverSQLite))

	return NewResultRepository(conn, db.DriverSQLite).
		WithClock(tickingClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)))
}

var sampleProfile = models.Profile{Birth: "1990-05-01 08:00", Gender: "M", IsMarried: "N", IsDating: "Y"}

func sampleResult(theme string) models.AnalysisResult {
	return models.AnalysisResult{
		AnalysisSummary:        models.AnalysisSummary{Theme: theme, Advice: "천천히 가도 괜찮다."},
		PersonalityAndAptitude: models.PersonalityAndAptitude{CoreTrait: "침착함", Strength: "끈기", Weakness: ""},
		RelationshipAndFamily:  models.RelationshipAndFamily{LoveStyle: "헌신형", PartnerAffinity: "온화한 사람", SocialPattern: "소수 정예"},
		WealthAndCareer:        models.WealthAndCareer{WealthType: "축적형", BestCareer: "연구직", FinancialAdvice: "분산 투자"},
	}
}

func TestCreateThenFindByProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	want := sampleResult("늦게 피는 꽃")
	id, err := repo.Create(ctx, sampleProfile, want)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := repo.FindByProfile(ctx, models.BuildProfileKey(sampleProfile))
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, id, rec.ID)
	require.Equal(t, models.StatusActive, rec.Status)
	require.Nil(t, rec.DeletedAt)
	if diff := cmp.Diff(want, rec.ResultData); diff != "" {
		t.Fatalf("result data mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, sampleProfile, rec.UserInput)
}

func TestFindByProfileMissReturnsNil(t *testing.T) {
	rec, err := newSQLiteRepo(t).FindByProfile(context.Background(), `{"birth":"x"}`)
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestFindByProfileIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	_, err := repo.Create(ctx, sampleProfile, sampleResult("a"))
	require.NoError(t, err)

	key := models.BuildProfileKey(sampleProfile)
	first, err := repo.FindByProfile(ctx, key)
	require.NoError(t, err)
	second, err := repo.FindByProfile(ctx, key)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("lookups differ:\n%s", diff)
	}
}

func TestFindByProfileReturnsLatestActive(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	_, err := repo.Create(ctx, sampleProfile, sampleResult("old"))
	require.NoError(t, err)
	newer, err := repo.Create(ctx, sampleProfile, sampleResult("new"))
	require.NoError(t, err)

	rec, err := repo.FindByProfile(ctx, models.BuildProfileKey(sampleProfile))
	require.NoError(t, err)
	require.Equal(t, newer, rec.ID)
	require.Equal(t, "new", rec.ResultData.AnalysisSummary.Theme)
}

func TestRegenerationSequencing(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	key := models.BuildProfileKey(sampleProfile)

	oldID, err := repo.Create(ctx, sampleProfile, sampleResult("old"))
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(ctx, oldID))
	newID, err := repo.Create(ctx, sampleProfile, sampleResult("new"))
	require.NoError(t, err)
	require.NotEqual(t, oldID, newID)

	rec, err := repo.FindByProfile(ctx, key)
	require.NoError(t, err)
	require.Equal(t, newID, rec.ID)

	old, err := repo.GetByID(ctx, oldID)
	require.NoError(t, err)
	require.Equal(t, models.StatusDeleted, old.Status)
	require.NotNil(t, old.DeletedAt)
	require.Equal(t, "old", old.ResultData.AnalysisSummary.Theme)
}

func TestSoftDeleteOnlyActiveRecordHidesProfile(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	id, err := repo.Create(ctx, sampleProfile, sampleResult("a"))
	require.NoError(t, err)
	require.NoError(t, repo.SoftDelete(ctx, id))

	rec, err := repo.FindByProfile(ctx, models.BuildProfileKey(sampleProfile))
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestSoftDeleteTwiceKeepsFirstTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	id, err := repo.Create(ctx, sampleProfile, sampleResult("a"))
	require.NoError(t, err)
	require.NoError(t, repo.SoftDelete(ctx, id))
	first, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(ctx, id))
	second, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, first.DeletedAt.Equal(*second.DeletedAt))
}

func TestSoftDeleteUnknownID(t *testing.T) {
	err := newSQLiteRepo(t).SoftDelete(context.Background(), "nope")
	require.ErrorIs(t, err, ErrResultNotFound)
}

func TestGetByIDUnknown(t *testing.T) {
	_, err := newSQLiteRepo(t).GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, ErrResultNotFound)
}

func TestServerTime(t *testing.T) {
	conn, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	got, err := NewMainRepository(conn, db.DriverSQLite).ServerTime(context.Background())
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), got, time.Minute)
}
