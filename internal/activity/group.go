package activity

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/utils"

	log "github.com/sirupsen/logrus"
)

// Key identifies logs that are displayed together: same exercise, same magnitude
// and the same set of resistance values.
type Key struct {
	ExerciseID int64
	Magnitude  int
	Signature  string // Sorted "resistanceID:value" pairs, comma separated.
}

type ResolvedResistance struct {
	Entry      models.ActivityResistance
	Resistance *models.Resistance // nil when the id is not in the catalog.
}

type LogEntry struct {
	Log         models.ExerciseLog
	Resistances []ResolvedResistance
}

// Group is every log of one day sharing a Key, in the order they were read.
type Group struct {
	Key       Key
	Exercise  models.Exercise
	Magnitude *models.Magnitude // nil when the exercise points at an unknown magnitude.
	Logs      []LogEntry
}

func KeyOf(row models.ActivityRow) Key {
	return Key{
		ExerciseID: row.Exercise.ID,
		Magnitude:  row.Log.Magnitude,
		Signature:  signature(row.Resistances),
	}
}

func signature(entries []models.ActivityResistance) string {
	if len(entries) == 0 {
		return ""
	}

	pairs := make([]models.ActivityResistance, len(entries))
	copy(pairs, entries)
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].ResistanceID != pairs[j].ResistanceID {
			return pairs[i].ResistanceID < pairs[j].ResistanceID
		}
		return pairs[i].Value < pairs[j].Value
	})

	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(p.ResistanceID, 10))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(p.Value))
	}
	return sb.String()
}

// GroupRows partitions rows by Key, keeping first-seen key order and the input
// order inside each group. Catalog misses leave the affected field nil.
func GroupRows(rows []models.ActivityRow, magnitudes []models.Magnitude, resistances []models.Resistance) []Group {
	magnitudeByID := make(map[int64]models.Magnitude, len(magnitudes))
	for _, m := range magnitudes {
		magnitudeByID[m.ID] = m
	}
	resistanceByID := make(map[int64]models.Resistance, len(resistances))
	for _, r := range resistances {
		resistanceByID[r.ID] = r
	}

	groups := make([]Group, 0)
	key2index := make(map[Key]int)
	for _, row := range rows {
		key := KeyOf(row)
		idx, ok := key2index[key]
		if !ok {
			g := Group{
				Key:      key,
				Exercise: row.Exercise,
			}
			if m, found := magnitudeByID[row.Exercise.MagnitudeID]; found {
				g.Magnitude = &m
			} else {
				log.Debugf("activity: exercise %d references unknown magnitude %d", row.Exercise.ID, row.Exercise.MagnitudeID)
			}
			groups = append(groups, g)
			idx = len(groups) - 1
			key2index[key] = idx
		}

		entry := LogEntry{
			Log:         row.Log,
			Resistances: make([]ResolvedResistance, 0, len(row.Resistances)),
		}
		for _, ar := range row.Resistances {
			rr := ResolvedResistance{Entry: ar}
			if r, found := resistanceByID[ar.ResistanceID]; found {
				rr.Resistance = &r
			} else {
				log.Debugf("activity: log %d references unknown resistance %d", row.Log.ID, ar.ResistanceID)
			}
			entry.Resistances = append(entry.Resistances, rr)
		}
		groups[idx].Logs = append(groups[idx].Logs, entry)
	}

	return groups
}

// Sets is the number of logs in the group.
func (g Group) Sets() int {
	return len(g.Logs)
}

func (g Group) MagnitudeLabel() string {
	if g.Magnitude == nil {
		return fmt.Sprintf("%d ?", g.Key.Magnitude)
	}
	return fmt.Sprintf("%d %s", g.Key.Magnitude, g.Magnitude.Unit)
}

// ResistanceLabel describes the resistance values shared by the group.
func (g Group) ResistanceLabel() string {
	if len(g.Logs) == 0 || len(g.Logs[0].Resistances) == 0 {
		return ""
	}

	parts := make([]string, 0, len(g.Logs[0].Resistances))
	for _, rr := range g.Logs[0].Resistances {
		if rr.Resistance == nil {
			parts = append(parts, fmt.Sprintf("%d (#%d)", rr.Entry.Value, rr.Entry.ResistanceID))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d %s", rr.Resistance.Name, rr.Entry.Value, rr.Resistance.Unit))
	}
	return strings.Join(parts, ", ")
}

// EstimatedOneRM is the Epley estimate for weighted repetition groups.
func (g Group) EstimatedOneRM() (float64, bool) {
	if g.Magnitude == nil || g.Magnitude.Unit != "reps" || len(g.Logs) == 0 {
		return 0, false
	}
	for _, rr := range g.Logs[0].Resistances {
		if rr.Resistance != nil && rr.Resistance.Unit == "kg" {
			return utils.CalculateEpley1RM(float64(rr.Entry.Value), g.Key.Magnitude), true
		}
	}
	return 0, false
}
