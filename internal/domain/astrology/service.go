package astrology

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/yanqian/soulmatch/pkg/errors"
	"github.com/yanqian/soulmatch/pkg/metrics"
	"github.com/yanqian/soulmatch/pkg/util"
)

const maxLabelLength = 80

// Service exposes horoscope and matchmaking capabilities.
type Service interface {
	GenerateBasicHoroscope(ctx context.Context, birth BirthDetails) (HoroscopeData, error)
	AnalyzeCompatibility(ctx context.Context, req CompatibilityRequest) (CompatibilityResult, error)
	RankMatches(ctx context.Context, req RankRequest) (RankResponse, error)
	DailyPrediction(ctx context.Context, req PredictionRequest) (Prediction, error)
	SaveChart(ctx context.Context, ownerID int64, req SaveChartRequest) (ChartRecord, error)
	ListCharts(ctx context.Context, ownerID int64) ([]ChartRecord, error)
	GetChart(ctx context.Context, ownerID int64, id string) (ChartRecord, error)
	DeleteChart(ctx context.Context, ownerID int64, id string) error
	CacheStats() metrics.CacheStats
}

type service struct {
	cfg     Config
	store   Store
	repo    ChartRepository
	archive Archive
	logger  *slog.Logger
	stats   metrics.CacheCounter
	now     func() time.Time
	newID   func() string
}

// NewService wires up the horoscope domain.
func NewService(cfg Config, store Store, repo ChartRepository, archive Archive, logger *slog.Logger) Service {
	if cfg.Ayanamsa != AyanamsaLahiri {
		cfg.Ayanamsa = AyanamsaNone
	}
	if cfg.RankConcurrency <= 0 {
		cfg.RankConcurrency = 1
	}
	return &service{
		cfg:     cfg,
		store:   store,
		repo:    repo,
		archive: archive,
		logger:  logger.With("component", "astrology.service"),
		now:     util.NowUTC,
		newID:   func() string { return uuid.NewString() },
	}
}

func (s *service) GenerateBasicHoroscope(ctx context.Context, birth BirthDetails) (HoroscopeData, error) {
	return s.horoscope(ctx, birth)
}

// horoscope computes a chart, going through the cache when one is wired.
func (s *service) horoscope(ctx context.Context, birth BirthDetails) (HoroscopeData, error) {
	key := s.cacheKey(birth)
	if s.store != nil {
		cached, ok, err := s.store.Get(ctx, key)
		if err != nil {
			s.logger.Warn("horoscope cache lookup failed", "error", err)
		} else if ok {
			s.stats.Hit()
			// the key normalizes place and coordinates; echo the caller's input
			cached.Birth = birth
			return cached, nil
		}
		s.stats.Miss()
	}

	chart, err := Calculate(birth, s.cfg.Ayanamsa)
	if err != nil {
		return HoroscopeData{}, err
	}

	if s.store != nil {
		if err := s.store.Set(ctx, key, chart, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("horoscope cache save failed", "error", err)
		}
	}
	return chart, nil
}

func (s *service) CacheStats() metrics.CacheStats {
	return s.stats.Snapshot()
}

func (s *service) AnalyzeCompatibility(ctx context.Context, req CompatibilityRequest) (CompatibilityResult, error) {
	first, err := s.horoscope(ctx, req.First)
	if err != nil {
		return CompatibilityResult{}, apperrors.InField("first", err)
	}
	second, err := s.horoscope(ctx, req.Second)
	if err != nil {
		return CompatibilityResult{}, apperrors.InField("second", err)
	}
	return ScoreCompatibility(first, second)
}

func (s *service) RankMatches(ctx context.Context, req RankRequest) (RankResponse, error) {
	if len(req.Candidates) == 0 {
		return RankResponse{}, apperrors.Invalidf("candidates cannot be empty")
	}
	if s.cfg.MaxRankCandidates > 0 && len(req.Candidates) > s.cfg.MaxRankCandidates {
		return RankResponse{}, apperrors.Wrap(apperrors.CodeLimitExceeded,
			fmt.Sprintf("at most %d candidates can be ranked per request", s.cfg.MaxRankCandidates), nil)
	}
	role := req.Role
	if role == "" {
		role = RoleGroom
	}
	if role != RoleGroom && role != RoleBride {
		return RankResponse{}, apperrors.Invalidf("role must be groom or bride")
	}

	seeker, err := s.horoscope(ctx, req.Seeker)
	if err != nil {
		return RankResponse{}, apperrors.InField("seeker", err)
	}

	matches := make([]RankedMatch, len(req.Candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.RankConcurrency)
	for i, candidate := range req.Candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			chart, err := s.horoscope(gctx, candidate.Birth)
			if err != nil {
				return apperrors.InField("candidate "+candidate.ID, err)
			}
			groom, bride := seeker, chart
			if role == RoleBride {
				groom, bride = chart, seeker
			}
			result, err := ScoreCompatibility(groom, bride)
			if err != nil {
				return err
			}
			matches[i] = RankedMatch{
				ID:        candidate.ID,
				Score:     result.Score,
				GunaTotal: result.GunaTotal,
				Verdict:   result.Verdict,
				Nakshatra: chart.Nakshatra,
				MoonSign:  chart.MoonSign,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RankResponse{}, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].GunaTotal == matches[j].GunaTotal {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].GunaTotal > matches[j].GunaTotal
	})
	return RankResponse{Seeker: seeker, Matches: matches}, nil
}

func (s *service) DailyPrediction(_ context.Context, req PredictionRequest) (Prediction, error) {
	nak, ok := NakshatraByName(req.Nakshatra)
	if !ok {
		return Prediction{}, apperrors.Invalidf("unknown nakshatra %q", req.Nakshatra)
	}
	day := s.now()
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := util.ParseDate(req.Date)
		if err != nil {
			return Prediction{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD", err)
		}
		day = parsed
	}
	return PredictFor(nak, util.FormatDate(day)), nil
}

func (s *service) SaveChart(ctx context.Context, ownerID int64, req SaveChartRequest) (ChartRecord, error) {
	if ownerID <= 0 {
		return ChartRecord{}, apperrors.Invalidf("owner is required")
	}
	label := strings.TrimSpace(req.Label)
	if label == "" {
		label = strings.TrimSpace(req.Birth.Place)
	}
	if len([]rune(label)) > maxLabelLength {
		return ChartRecord{}, apperrors.Invalidf("label cannot exceed %d characters", maxLabelLength)
	}
	chart, err := s.horoscope(ctx, req.Birth)
	if err != nil {
		return ChartRecord{}, err
	}
	now := s.now()
	record, err := s.repo.Create(ctx, ChartRecord{
		ID:            s.newID(),
		OwnerID:       ownerID,
		Label:         label,
		Birth:         req.Birth,
		Horoscope:     chart,
		EngineVersion: chart.EngineVersion,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return ChartRecord{}, apperrors.Wrap(apperrors.CodeStorage, "failed to save chart", err)
	}
	s.archiveChart(ctx, record)
	s.logger.Info("chart saved", "chart_id", record.ID, "owner_id", ownerID)
	return record, nil
}

func (s *service) ListCharts(ctx context.Context, ownerID int64) ([]ChartRecord, error) {
	records, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "failed to list charts", err)
	}
	if records == nil {
		records = []ChartRecord{}
	}
	return records, nil
}

// GetChart returns a saved chart, recomputing it first when it was built by
// another engine version or zodiac.
func (s *service) GetChart(ctx context.Context, ownerID int64, id string) (ChartRecord, error) {
	record, found, err := s.repo.Get(ctx, ownerID, strings.TrimSpace(id))
	if err != nil {
		return ChartRecord{}, apperrors.Wrap(apperrors.CodeStorage, "failed to load chart", err)
	}
	if !found {
		return ChartRecord{}, apperrors.Wrap(apperrors.CodeNotFound, "chart not found", nil)
	}
	if record.EngineVersion == EngineVersion && record.Horoscope.Zodiac == s.cfg.Ayanamsa {
		return record, nil
	}

	chart, err := s.horoscope(ctx, record.Birth)
	if err != nil {
		return ChartRecord{}, err
	}
	previous := record.EngineVersion
	record.Horoscope = chart
	record.EngineVersion = chart.EngineVersion
	record.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return ChartRecord{}, apperrors.Wrap(apperrors.CodeStorage, "failed to update chart", err)
	}
	s.archiveChart(ctx, updated)
	s.logger.Info("chart recomputed", "chart_id", updated.ID, "from_version", previous, "to_version", updated.EngineVersion)
	return updated, nil
}

func (s *service) DeleteChart(ctx context.Context, ownerID int64, id string) error {
	id = strings.TrimSpace(id)
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrChartNotFound) {
			return apperrors.Wrap(apperrors.CodeNotFound, "chart not found", nil)
		}
		return apperrors.Wrap(apperrors.CodeStorage, "failed to delete chart", err)
	}
	if s.archive != nil {
		if err := s.archive.Delete(ctx, archiveKey(ownerID, id)); err != nil {
			s.logger.Warn("chart archive delete failed", "chart_id", id, "error", err)
		}
	}
	return nil
}

func (s *service) archiveChart(ctx context.Context, record ChartRecord) {
	if s.archive == nil {
		return
	}
	payload, err := json.Marshal(record)
	if err != nil {
		s.logger.Warn("chart archive encode failed", "chart_id", record.ID, "error", err)
		return
	}
	if err := s.archive.Put(ctx, archiveKey(record.OwnerID, record.ID), payload); err != nil {
		s.logger.Warn("chart archive put failed", "chart_id", record.ID, "error", err)
	}
}

func (s *service) cacheKey(birth BirthDetails) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(canonicalBirth(birth)))
	return fmt.Sprintf("%s:%s:%016x", EngineVersion, s.cfg.Ayanamsa, h.Sum64())
}

func archiveKey(ownerID int64, id string) string {
	return fmt.Sprintf("charts/%d/%s.json", ownerID, id)
}

// prefixInput names which chart an input error belongs to.
