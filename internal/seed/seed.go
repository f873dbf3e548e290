// Package seed generates correlated demo data: for each fake player a
// registration, a pre-survey, a scored session and a post-survey, all
// sharing one session identifier so the pairing pipeline has matches to
// chew on. Used by cmd/seed and the admin seed endpoint.
package seed

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/gamepulse/api/internal/id"
	"github.com/gamepulse/api/internal/model"
	"github.com/gamepulse/api/internal/store"
)

const DefaultCount = 15

var (
	firstNames = []string{
		"Alex", "Bell", "Casey", "Dana", "Eli", "Finn", "Gray", "Hana",
		"Iris", "Jo", "Kim", "Lee", "Mika", "Noa", "Ola", "Pat",
		"Quinn", "Rio", "Sam", "Tess",
	}
	lastNames = []string{
		"Brooks", "Carter", "Diaz", "Evans", "Flores", "Grant", "Hayes",
		"Kim", "Lopez", "Morgan", "Nguyen", "Park", "Reyes", "Silva", "West",
	}
	genders     = []string{"male", "female", "male", "female", model.GenderUnspecified}
	experiences = []string{"beginner", "beginner", "intermediate", "intermediate", "expert", "never played"}
	moods       = []string{
		"fresh and ready", "pumped to play", "a little excited", "feeling normal",
		"tired but curious", "slightly nervous",
	}
	favorites = []string{
		"the shooting mechanics", "the environment", "the music", "the challenge",
		"the graphics", "the scoring system", "the pacing",
	}
	comments = []string{
		"Really fun, want to play again", "Good challenge, liked the shooting",
		"First time playing, pretty good", "Would love more levels",
		"Great soundtrack and atmosphere", "A bit hard but fun",
		"Nice game, pretty graphics", "Loved it, could play for hours",
		"", "", "",
	}
)

type preValues struct {
	stress, happiness, energy, motivation, anxiety, expectation int
}

type postValues struct {
	stress, happiness, energy, fun, satisfaction, difficulty, overall int
	willPlayAgain                                                     string
}

// Run seeds count fake players with their full survey/session chains.
// Returns how many players were created.
func Run(st *store.Store, count int) (int, error) {
	if count <= 0 {
		count = DefaultCount
	}

	created := 0
	now := time.Now()

	for i := 0; i < count; i++ {
		playerID := id.NewPlayerID()
		sessionID := id.NewSessionID()

		// spread activity over the past two weeks
		regTime := now.
			Add(-time.Duration(randInt(0, 14)) * 24 * time.Hour).
			Add(-time.Duration(randInt(0, 23)) * time.Hour)
		preTime := regTime.Add(time.Duration(randInt(5, 30)) * time.Minute)
		sessionStart := preTime.Add(time.Duration(randInt(2, 10)) * time.Minute)
		playMinutes := randInt(10, 45)
		sessionEnd := sessionStart.Add(time.Duration(playMinutes) * time.Minute)
		postTime := sessionEnd.Add(time.Duration(randInt(1, 5)) * time.Minute)

		player := model.Player{
			PlayerID:       playerID,
			Name:           randomName(),
			Age:            strconv.Itoa(randomAge()),
			Gender:         pick(genders),
			GameExperience: pick(experiences),
			RegisteredAt:   regTime,
			LastActive:     regTime,
		}
		if err := st.CreatePlayer(&player); err != nil {
			return created, err
		}

		pre := generatePreValues()
		preSurvey := model.PreSurvey{
			SurveyID:         id.NewPreSurveyID(),
			PlayerID:         playerID,
			SessionID:        sessionID,
			Timestamp:        preTime,
			StressLevel:      pre.stress,
			HappinessLevel:   pre.happiness,
			EnergyLevel:      pre.energy,
			MotivationLevel:  pre.motivation,
			AnxietyLevel:     pre.anxiety,
			MoodDescription:  pick(moods),
			ExpectationScore: pre.expectation,
		}
		if err := st.CreatePreSurvey(&preSurvey); err != nil {
			return created, err
		}

		post := generatePostValues(pre)
		score := generateScore(post)
		session := model.GameSession{
			SessionID: sessionID,
			PlayerID:  playerID,
			StartTime: sessionStart,
			EndTime:   &sessionEnd,
			Duration:  fmt.Sprintf("%d min", playMinutes),
			GameLevel: strconv.Itoa(randInt(1, 5)),
			Score:     strconv.Itoa(score),
			Completed: true,
			Notes:     "Seeded demo data",
		}
		if err := st.CreateSession(&session); err != nil {
			return created, err
		}

		postSurvey := model.PostSurvey{
			SurveyID:          id.NewPostSurveyID(),
			PlayerID:          playerID,
			SessionID:         sessionID,
			Timestamp:         postTime,
			StressLevel:       post.stress,
			HappinessLevel:    post.happiness,
			FunLevel:          post.fun,
			SatisfactionLevel: post.satisfaction,
			EnergyLevel:       post.energy,
			DifficultyRating:  post.difficulty,
			WillPlayAgain:     post.willPlayAgain,
			FavoriteAspect:    pick(favorites),
			OverallRating:     post.overall,
			Comments:          pick(comments),
		}
		if err := st.CreatePostSurvey(&postSurvey); err != nil {
			return created, err
		}

		created++
	}

	return created, nil
}

func randInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

func randFloat(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// clamp110 rounds to an int and pins it into the 1-10 rating range.
func clamp110(v float64) int {
	r := int(math.Round(v))
	if r < 1 {
		return 1
	}
	if r > 10 {
		return 10
	}
	return r
}

func pick(options []string) string {
	return options[rand.Intn(len(options))]
}

func randomName() string {
	return pick(firstNames) + " " + pick(lastNames)
}

// randomAge is weighted toward the 18-25 study demographic.
func randomAge() int {
	r := rand.Float64()
	switch {
	case r < 0.10:
		return randInt(15, 17)
	case r < 0.60:
		return randInt(18, 25)
	case r < 0.85:
		return randInt(26, 35)
	default:
		return randInt(36, 50)
	}
}

// generatePreValues: stress runs high before play, happiness and energy
// middling.
func generatePreValues() preValues {
	return preValues{
		stress:      clamp110(randFloat(4.0, 8.5)),
		happiness:   clamp110(randFloat(3.0, 7.0)),
		energy:      clamp110(randFloat(3.5, 7.5)),
		motivation:  clamp110(randFloat(4.0, 9.0)),
		anxiety:     clamp110(randFloat(3.5, 8.0)),
		expectation: clamp110(randFloat(5.0, 9.0)),
	}
}

// generatePostValues nudges each metric net-positive: roughly 80% of the
// time it improves, otherwise it holds or dips slightly.
func generatePostValues(pre preValues) postValues {
	improve := func(val int, minD, maxD float64, lowerIsBetter bool) int {
		var d float64
		if rand.Float64() < 0.80 {
			d = randFloat(minD, maxD) + randFloat(-0.5, 0.5)
		} else {
			d = -randFloat(0, 1.5) + randFloat(-0.3, 0.3)
		}
		if lowerIsBetter {
			return clamp110(float64(val) - math.Abs(d))
		}
		return clamp110(float64(val) + d)
	}

	will := "yes"
	if rand.Float64() >= 0.75 {
		will = "not sure"
	}

	return postValues{
		stress:        improve(pre.stress, 1.0, 3.5, true),
		happiness:     improve(pre.happiness, 0.5, 3.5, false),
		energy:        improve(pre.energy, 0.5, 2.5, false),
		fun:           clamp110(randFloat(5.5, 9.5)),
		satisfaction:  clamp110(randFloat(5.0, 9.0)),
		difficulty:    clamp110(randFloat(3.5, 8.5)),
		overall:       clamp110(randFloat(6.0, 9.5)),
		willPlayAgain: will,
	}
}

// generateScore yields 500-2000 with a small mood bonus for happy players.
func generateScore(post postValues) int {
	base := randInt(500, 2000)
	bonus := int(math.Round(float64(post.happiness-post.stress) * randFloat(0, 25)))
	score := base + bonus
	if score < 500 {
		return 500
	}
	if score > 2000 {
		return 2000
	}
	return score
}
