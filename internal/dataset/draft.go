package dataset

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"

	"pickarb/internal/canonical"
	"pickarb/internal/errors"
)

var draftValidate = validator.New()

// LoadDraftPicks reads the draft CSV (season_end, pick, team, player_name,
// player_slug) for draft classes inside [startYear, endYear]. Picks outside
// 1..60 are invalid input and dropped with a warning.
func LoadDraftPicks(path string, startYear, endYear int, logger *slog.Logger) ([]DraftPick, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t, err := readTable(path)
	if err != nil {
		return nil, err
	}

	seasonCol := t.col("season_end", "season", "draft_year")
	pickCol := t.col("pick", "pick_overall")
	teamCol := t.col("team", "team_id")
	nameCol := t.col("player_name", "player")
	slugCol := t.col("player_slug", "player_id")
	if seasonCol < 0 || pickCol < 0 || nameCol < 0 {
		return nil, errors.NewParsingError(
			fmt.Sprintf("%s missing required columns (season_end, pick, player_name)", path), nil)
	}

	var picks []DraftPick
	dropped := 0
	for i, row := range t.rows {
		season, err := strconv.Atoi(field(row, seasonCol))
		if err != nil {
			logger.Warn("dropping draft row with unparseable season",
				slog.Int("row", i+1),
				slog.String("season", field(row, seasonCol)))
			dropped++
			continue
		}
		if season < startYear || season > endYear {
			continue
		}

		pickNum, err := strconv.Atoi(field(row, pickCol))
		if err != nil {
			logger.Warn("dropping draft row with unparseable pick number",
				slog.Int("row", i+1),
				slog.String("pick", field(row, pickCol)))
			dropped++
			continue
		}

		name := field(row, nameCol)
		pick := DraftPick{
			SeasonEnd:     season,
			Pick:          pickNum,
			Team:          field(row, teamCol),
			PlayerName:    name,
			Slug:          field(row, slugCol),
			CanonicalName: canonical.Name(name),
		}

		if err := draftValidate.Struct(pick); err != nil {
			logger.Warn("dropping invalid draft pick",
				slog.Int("row", i+1),
				slog.String("player", name),
				slog.Int("pick", pickNum),
				slog.String("error", err.Error()))
			dropped++
			continue
		}

		picks = append(picks, pick)
	}

	if len(picks) == 0 {
		return nil, errors.NewEmptyStageError("draft load")
	}

	logger.Info("loaded draft picks",
		slog.String("path", path),
		slog.Int("picks", len(picks)),
		slog.Int("dropped", dropped),
		slog.Int("start_year", startYear),
		slog.Int("end_year", endYear))

	return picks, nil
}
