package stats

import (
	"strconv"
	"strings"

	"github.com/gamepulse/api/internal/model"
)

// The four fixed age buckets. Unparseable ages are counted in totalPlayers
// but left out of every bucket, so the bucket sum can undershoot the total.
const (
	ageUnder18 = "<18"
	age18to25  = "18-25"
	age26to35  = "26-35"
	age36plus  = "36+"
)

type demographicsResult struct {
	demographics Demographics
	totalPlayers int
	// side maps consumed by the session pass and presentation shaping
	experience map[string]string
	names      map[string]string
}

func aggregateDemographics(players []model.Player) demographicsResult {
	res := demographicsResult{
		demographics: Demographics{
			Gender: map[string]int{},
			AgeGroups: map[string]int{
				ageUnder18: 0,
				age18to25:  0,
				age26to35:  0,
				age36plus:  0,
			},
		},
		totalPlayers: len(players),
		experience:   make(map[string]string, len(players)),
		names:        make(map[string]string, len(players)),
	}

	for _, p := range players {
		gender := p.Gender
		if gender == "" {
			gender = model.GenderUnspecified
		}
		res.demographics.Gender[gender]++

		if age, err := strconv.Atoi(strings.TrimSpace(p.Age)); err == nil {
			switch {
			case age < 18:
				res.demographics.AgeGroups[ageUnder18]++
			case age <= 25:
				res.demographics.AgeGroups[age18to25]++
			case age <= 35:
				res.demographics.AgeGroups[age26to35]++
			default:
				res.demographics.AgeGroups[age36plus]++
			}
		}

		exp := p.GameExperience
		if exp == "" {
			exp = model.ExperienceBeginner
		}
		res.experience[p.PlayerID] = exp
		res.names[p.PlayerID] = p.Name
	}

	return res
}

// nameOrAnonymous resolves a player label for leaderboard and feedback rows.
func nameOrAnonymous(names map[string]string, playerID string) string {
	if name := names[playerID]; name != "" {
		return name
	}
	return model.NameAnonymous
}
