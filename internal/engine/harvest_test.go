package engine

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/toolforge/tool-spacemedia-sub000/internal/config"
	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
	"github.com/toolforge/tool-spacemedia-sub000/internal/engine/mocks"
)

type HarvestTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source       *mocks.MockSource
	catalog      *mocks.MockCatalogStore
	cursors      *mocks.MockCursorStore
	problems     *mocks.MockProblemStore
	txManager    *mocks.MockTransactionManager
	archive      *mocks.MockArchive
	fingerprints *mocks.MockFingerprinter
	assets       *mocks.MockAssetFetcher
	describer    *mocks.MockDescriber
	notifier     *mocks.MockNotifier

	logger     *slog.Logger
	cfg        config.SourceConfig
	harvestCfg config.HarvestConfig
}

func (s *HarvestTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSource(s.ctrl)
	s.catalog = mocks.NewMockCatalogStore(s.ctrl)
	s.cursors = mocks.NewMockCursorStore(s.ctrl)
	s.problems = mocks.NewMockProblemStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.archive = mocks.NewMockArchive(s.ctrl)
	s.fingerprints = mocks.NewMockFingerprinter(s.ctrl)
	s.assets = mocks.NewMockAssetFetcher(s.ctrl)
	s.describer = mocks.NewMockDescriber(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	s.cfg = config.SourceConfig{
		Key:                 "test-source",
		Name:                "Test Source",
		GracePeriod:         7 * 24 * time.Hour,
		SimilarityThreshold: 6,
		Publish: config.PublishPolicy{
			Mode: "auto",
		},
	}
	s.harvestCfg = config.HarvestConfig{
		AssetTimeout:    time.Minute,
		PageRetryBudget: 3,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.source.EXPECT().Key().Return("test-source").AnyTimes()
	s.source.EXPECT().Name().Return("Test Source").AnyTimes()
}

func (s *HarvestTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHarvestTestSuite(t *testing.T) {
	suite.Run(t, new(HarvestTestSuite))
}

func (s *HarvestTestSuite) newEngine() *Engine {
	return New(
		s.source,
		s.catalog,
		s.cursors,
		s.problems,
		s.txManager,
		s.archive,
		s.fingerprints,
		s.assets,
		s.describer,
		s.notifier,
		s.logger,
		s.cfg,
		s.harvestCfg,
	)
}

func (s *HarvestTestSuite) expectTransactions() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func strPtr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func (s *HarvestTestSuite) TestRun_PublishesNewMedia() {
	ctx := context.Background()
	now := time.Now()

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{
		Items: []domain.RawRecord{{ID: "item-1", Date: now, URL: "https://source.test/item-1"}},
	}, nil)

	s.expectTransactions()
	s.catalog.EXPECT().GetByIdentity(gomock.Any(), "test-source", "item-1").Return(nil, nil)

	media := &domain.Media{
		ExternalID:  "item-1",
		Title:       "Launch pad at dawn",
		CreatedDate: timePtr(now),
		Files: []domain.FileMetadata{
			{
				AssetURL:       "https://source.test/item-1.jpg",
				ContentHash:    strPtr("abc123"),
				PerceptualHash: strPtr("f0f0f0f0f0f0f0f0"),
				Size:           2048,
				Extension:      "jpg",
			},
		},
	}
	s.source.EXPECT().FetchDetail(gomock.Any(), "", "item-1").Return(media, nil)
	s.catalog.EXPECT().Upsert(gomock.Any(), media).DoAndReturn(
		func(_ context.Context, m *domain.Media) error {
			m.ID = 1
			return nil
		},
	)
	s.catalog.EXPECT().MarkSeen(gomock.Any(), "test-source", []string{"item-1"}, gomock.Any()).Return(nil)

	s.archive.EXPECT().Search(gomock.Any(), "test-source:item-1").Return(nil, nil)
	s.describer.EXPECT().Build(media, &media.Files[0]).Return(&domain.Description{
		Title: "Launch pad at dawn",
		Body:  "Source: https://source.test/item-1.jpg",
	}, nil)
	s.archive.EXPECT().CreateEntry(gomock.Any(), "Launch pad at dawn", gomock.Any(), "https://source.test/item-1.jpg").Return("F1", nil)
	s.archive.EXPECT().EditMetadata(gomock.Any(), "F1", gomock.Any()).Return(nil)
	s.catalog.EXPECT().UpdateFile(gomock.Any(), &media.Files[0]).Return(nil)

	s.catalog.EXPECT().ListUnpublishedNotSeen(gomock.Any(), "test-source", gomock.Any()).Return(nil, nil)

	var saved *domain.RunCursor
	s.cursors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.RunCursor) error {
			saved = c
			return nil
		},
	)
	s.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(nil)

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(1, summary.Processed)
	s.Equal(1, summary.New)
	s.Equal(1, summary.Published)
	s.Equal(0, summary.Problems)
	s.Require().Len(summary.Items, 1)
	s.Equal([]string{"F1"}, summary.Items[0].ArchiveIDs)

	s.Require().NotNil(saved.Watermark)
	s.WithinDuration(now.Add(-s.cfg.GracePeriod), *saved.Watermark, time.Minute)
}

func (s *HarvestTestSuite) TestRun_WatermarkEarlyExit() {
	ctx := context.Background()
	watermark := time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC)

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{
		SourceID:   "test-source",
		LastRunEnd: watermark,
		Watermark:  &watermark,
	}, nil)

	// Page straddles the watermark: the newer item is processed, the older
	// one skipped, and no further page is requested.
	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{
		Items: []domain.RawRecord{
			{ID: "newer", Date: watermark.AddDate(0, 0, 1)},
			{ID: "older", Date: watermark.AddDate(0, 0, -1)},
		},
		HasMore:   true,
		NextToken: "2",
	}, nil).Times(1)

	s.expectTransactions()
	existing := &domain.Media{
		ID:         7,
		SourceID:   "test-source",
		ExternalID: "newer",
		Files: []domain.FileMetadata{
			{AssetURL: "https://source.test/newer.jpg", ContentHash: strPtr("aa"), PublishedAs: []string{"F1"}},
		},
	}
	s.catalog.EXPECT().GetByIdentity(gomock.Any(), "test-source", "newer").Return(existing, nil)
	s.catalog.EXPECT().MarkSeen(gomock.Any(), "test-source", []string{"newer"}, gomock.Any()).Return(nil)

	var saved *domain.RunCursor
	s.cursors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.RunCursor) error {
			saved = c
			return nil
		},
	)

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(1, summary.Processed)
	s.Equal(1, summary.Skipped)
	s.Equal(0, summary.Published)
	s.Require().NotNil(saved.Watermark)
	s.True(saved.Watermark.After(watermark))
}

func (s *HarvestTestSuite) TestRun_ItemFailureDoesNotAbortRun() {
	ctx := context.Background()
	now := time.Now()

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{
		Items: []domain.RawRecord{
			{ID: "broken", Date: now, URL: "https://source.test/broken"},
			{ID: "good", Date: now},
		},
	}, nil)

	s.expectTransactions()
	s.catalog.EXPECT().GetByIdentity(gomock.Any(), "test-source", "broken").Return(nil, nil)
	s.source.EXPECT().FetchDetail(gomock.Any(), "", "broken").Return(nil, errors.New("detail 500"))

	var problem *domain.Problem
	s.problems.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Problem) error {
			problem = p
			return nil
		},
	)

	ignored := &domain.Media{ID: 2, SourceID: "test-source", ExternalID: "good", Ignored: true}
	s.catalog.EXPECT().GetByIdentity(gomock.Any(), "test-source", "good").Return(ignored, nil)
	s.catalog.EXPECT().MarkSeen(gomock.Any(), "test-source", []string{"broken", "good"}, gomock.Any()).Return(nil)

	s.catalog.EXPECT().ListUnpublishedNotSeen(gomock.Any(), "test-source", gomock.Any()).Return(nil, nil)
	s.cursors.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(1, summary.Processed)
	s.Equal(1, summary.Skipped)
	s.Equal(1, summary.Problems)
	s.Require().NotNil(problem)
	s.Equal("test-source", problem.SourceID)
	s.Equal("https://source.test/broken", problem.URL)
	s.Contains(problem.Message, "detail 500")
}

func (s *HarvestTestSuite) TestRun_PageRetryBudgetKeepsWatermark() {
	ctx := context.Background()
	watermark := time.Now().AddDate(0, 0, -30)

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{
		SourceID:   "test-source",
		LastRunEnd: watermark,
		Watermark:  &watermark,
	}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{}, errors.New("listing 503")).Times(3)
	s.problems.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	var saved *domain.RunCursor
	s.cursors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.RunCursor) error {
			saved = c
			return nil
		},
	)

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(3, summary.Problems)
	s.Require().NotNil(saved.Watermark)
	s.True(saved.Watermark.Equal(watermark), "watermark must not advance past a broken page stream")
}

func (s *HarvestTestSuite) TestRun_EmptyResultSetIsSuspect() {
	ctx := context.Background()

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(false)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{
		SourceID:   "test-source",
		LastRunEnd: time.Now().Add(-time.Hour),
	}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{}, nil)

	var saved *domain.RunCursor
	s.cursors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.RunCursor) error {
			saved = c
			return nil
		},
	)

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(0, summary.Processed)
	s.Nil(saved.Watermark, "a suddenly empty source must not advance the watermark")
}

func (s *HarvestTestSuite) TestRun_FirstRunOnEmptySourceAdvancesWatermark() {
	ctx := context.Background()

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{}, nil)
	s.catalog.EXPECT().ListUnpublishedNotSeen(gomock.Any(), "test-source", gomock.Any()).Return(nil, nil)

	var saved *domain.RunCursor
	s.cursors.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.RunCursor) error {
			saved = c
			return nil
		},
	)

	_, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.NotNil(saved.Watermark)
}

func (s *HarvestTestSuite) TestRun_NilDetailSkippedWithoutProblem() {
	ctx := context.Background()
	now := time.Now()

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{
		Items: []domain.RawRecord{{ID: "ghost", Date: now}},
	}, nil)

	s.expectTransactions()
	s.catalog.EXPECT().GetByIdentity(gomock.Any(), "test-source", "ghost").Return(nil, nil)
	s.source.EXPECT().FetchDetail(gomock.Any(), "", "ghost").Return(nil, nil)
	s.catalog.EXPECT().MarkSeen(gomock.Any(), "test-source", []string{"ghost"}, gomock.Any()).Return(nil)

	s.catalog.EXPECT().ListUnpublishedNotSeen(gomock.Any(), "test-source", gomock.Any()).Return(nil, nil)
	s.cursors.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(0, summary.Processed)
	s.Equal(0, summary.Problems)
}

func (s *HarvestTestSuite) TestRun_ReconcileIgnoresVanishedMedia() {
	ctx := context.Background()
	now := time.Now()

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(false)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{
		Items: []domain.RawRecord{{ID: "present", Date: now}},
	}, nil)

	s.expectTransactions()
	existing := &domain.Media{ID: 5, SourceID: "test-source", ExternalID: "present", Ignored: true}
	s.catalog.EXPECT().GetByIdentity(gomock.Any(), "test-source", "present").Return(existing, nil)
	s.catalog.EXPECT().MarkSeen(gomock.Any(), "test-source", []string{"present"}, gomock.Any()).Return(nil)

	vanished := []domain.Media{{ID: 9, SourceID: "test-source", ExternalID: "gone"}}
	s.catalog.EXPECT().ListUnpublishedNotSeen(gomock.Any(), "test-source", gomock.Any()).Return(vanished, nil)
	s.catalog.EXPECT().MarkIgnored(gomock.Any(), int64(9), "no longer reported by source").Return(nil)

	s.cursors.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	_, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
}

func (s *HarvestTestSuite) TestRun_SubSourceFilter() {
	ctx := context.Background()

	s.source.EXPECT().SubSources().Return([]string{"alpha", "beta"})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{}, nil)

	s.source.EXPECT().NextPage(ctx, "beta", "").Return(domain.Page{}, nil)
	s.catalog.EXPECT().ListUnpublishedNotSeen(gomock.Any(), "test-source", gomock.Any()).Return(nil, nil)
	s.cursors.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	_, err := s.newEngine().Run(ctx, RunOptions{SubSources: []string{"beta"}})

	s.NoError(err)
}

func (s *HarvestTestSuite) TestRun_EnrichComputesMissingHashes() {
	ctx := context.Background()
	now := time.Now()

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{
		Items: []domain.RawRecord{{ID: "raw", Date: now}},
	}, nil)

	s.expectTransactions()
	s.catalog.EXPECT().GetByIdentity(gomock.Any(), "test-source", "raw").Return(nil, nil)

	media := &domain.Media{
		ExternalID:  "raw",
		Title:       "Nebula",
		CreatedDate: timePtr(now),
		Files: []domain.FileMetadata{
			{AssetURL: "https://source.test/raw.png", Extension: "png"},
		},
	}
	s.source.EXPECT().FetchDetail(gomock.Any(), "", "raw").Return(media, nil)
	s.catalog.EXPECT().Upsert(gomock.Any(), media).Return(nil)
	s.catalog.EXPECT().MarkSeen(gomock.Any(), "test-source", []string{"raw"}, gomock.Any()).Return(nil)

	s.assets.EXPECT().Fetch(gomock.Any(), "https://source.test/raw.png").Return([]byte("png-bytes"), nil)
	s.fingerprints.EXPECT().Hash(gomock.Any(), gomock.Any()).Return("abc123", nil)
	s.fingerprints.EXPECT().Fingerprint(gomock.Any(), gomock.Any()).Return("f0f0f0f0f0f0f0f0", nil)
	s.catalog.EXPECT().UpdateFile(gomock.Any(), &media.Files[0]).Return(nil).Times(2)

	s.archive.EXPECT().Search(gomock.Any(), "test-source:raw").Return(nil, nil)
	s.describer.EXPECT().Build(media, &media.Files[0]).Return(&domain.Description{Title: "Nebula"}, nil)
	s.archive.EXPECT().CreateEntry(gomock.Any(), "Nebula", gomock.Any(), "https://source.test/raw.png").Return("F2", nil)
	s.archive.EXPECT().EditMetadata(gomock.Any(), "F2", gomock.Any()).Return(nil)

	s.catalog.EXPECT().ListUnpublishedNotSeen(gomock.Any(), "test-source", gomock.Any()).Return(nil, nil)
	s.cursors.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	s.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(nil)

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(1, summary.Published)
	s.Require().NotNil(media.Files[0].ContentHash)
	s.Equal("abc123", *media.Files[0].ContentHash)
	s.Equal(int64(len("png-bytes")), media.Files[0].Size)
}

func (s *HarvestTestSuite) TestRun_FingerprintFailureRecordsProblem() {
	ctx := context.Background()
	now := time.Now()

	s.source.EXPECT().SubSources().Return([]string{""})
	s.source.EXPECT().OrderedByRecency().Return(true)
	s.cursors.EXPECT().Get(ctx, "test-source").Return(&domain.RunCursor{}, nil)

	s.source.EXPECT().NextPage(ctx, "", "").Return(domain.Page{
		Items: []domain.RawRecord{{ID: "raw", Date: now}},
	}, nil)

	s.expectTransactions()
	s.catalog.EXPECT().GetByIdentity(gomock.Any(), "test-source", "raw").Return(nil, nil)

	media := &domain.Media{
		ExternalID:  "raw",
		Title:       "Nebula",
		CreatedDate: timePtr(now),
		Files: []domain.FileMetadata{
			{AssetURL: "https://source.test/raw.png", Extension: "png"},
		},
	}
	s.source.EXPECT().FetchDetail(gomock.Any(), "", "raw").Return(media, nil)
	s.catalog.EXPECT().Upsert(gomock.Any(), media).Return(nil)
	s.catalog.EXPECT().MarkSeen(gomock.Any(), "test-source", []string{"raw"}, gomock.Any()).Return(nil)

	s.assets.EXPECT().Fetch(gomock.Any(), "https://source.test/raw.png").Return(nil, errors.New("asset 404"))
	s.problems.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	s.catalog.EXPECT().ListUnpublishedNotSeen(gomock.Any(), "test-source", gomock.Any()).Return(nil, nil)
	s.cursors.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.NoError(err)
	s.Equal(1, summary.Processed)
	s.Equal(1, summary.Problems)
	s.Equal(1, summary.Skipped)
	s.Equal(0, summary.Published)
}

func (s *HarvestTestSuite) TestRun_CursorLoadError() {
	ctx := context.Background()

	s.cursors.EXPECT().Get(ctx, "test-source").Return(nil, errors.New("db down"))

	summary, err := s.newEngine().Run(ctx, RunOptions{})

	s.Error(err)
	s.Nil(summary)
	s.Contains(err.Error(), "load run cursor")
}
